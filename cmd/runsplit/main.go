package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ar90n/runsplit"
	"github.com/ar90n/runsplit/pipeline"
	"github.com/urfave/cli/v2"
)

func createSplitter(mode string, data []byte, delim byte) (*runsplit.Splitter[byte], error) {
	matcher := func(v *byte) bool { return *v == delim }
	switch mode {
	case "before":
		return runsplit.SplitBefore(data, matcher), nil
	case "after":
		return runsplit.SplitAfter(data, matcher), nil
	default:
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}
}

func readInput(inputName string) ([]byte, error) {
	if inputName == "" || inputName == "-" {
		return io.ReadAll(os.Stdin)
	}

	file, err := os.Open(inputName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func splitAction(c *cli.Context) error {
	mode := c.String("mode")
	inputName := c.String("input")
	delim := c.Uint("delim")
	maxRuns := c.Uint("max-runs")
	quote := c.Bool("quote")

	if 255 < delim {
		return fmt.Errorf("delim out of range: %d", delim)
	}

	data, err := readInput(inputName)
	if err != nil {
		return err
	}

	splitter, err := createSplitter(mode, data, byte(delim))
	if err != nil {
		return err
	}

	ctx := context.Background()
	runs := pipeline.Stream(ctx, splitter)
	if 0 < maxRuns {
		runs = pipeline.Take(ctx, maxRuns, runs)
	}

	wtr := bufio.NewWriter(os.Stdout)
	defer wtr.Flush()
	for run := range pipeline.OrDone(ctx, runs) {
		if quote {
			fmt.Fprintln(wtr, strconv.Quote(string(run)))
		} else {
			wtr.Write(run)
			wtr.WriteByte('\n')
		}
	}

	return nil
}

func main() {
	app := &cli.App{
		Name:     "runsplit",
		HelpName: "runsplit",
		Usage:    "split a byte stream into runs delimited by a byte value",
		Action:   splitAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mode",
				Value: "before",
				Usage: "where the delimiter lands: before or after",
			},
			&cli.UintFlag{
				Name:  "delim",
				Value: '\n',
				Usage: "byte value to split on",
			},
			&cli.StringFlag{
				Name:  "input",
				Value: "-",
				Usage: "input file, - for stdin",
			},
			&cli.UintFlag{
				Name:  "max-runs",
				Value: 0,
				Usage: "stop after this many runs, 0 for all",
			},
			&cli.BoolFlag{
				Name:  "quote",
				Value: false,
				Usage: "print runs as quoted strings",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
