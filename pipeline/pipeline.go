package pipeline

import (
	"context"

	"github.com/ar90n/runsplit"
)

const streamBufferSize = 8

// Stream pulls runs from s and forwards them on the returned channel. The
// channel is closed once s is exhausted or ctx is canceled. s must not be
// driven by anyone else while the stream is live.
func Stream[T any](ctx context.Context, s *runsplit.Splitter[T]) <-chan []T {
	outputStream := make(chan []T, streamBufferSize)
	go func() {
		defer close(outputStream)

		for {
			run, ok := s.Next()
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case outputStream <- run:
			}
		}
	}()

	return outputStream
}

func Take[T any](ctx context.Context, n uint, inputStream <-chan T) <-chan T {
	outputStream := make(chan T, streamBufferSize)
	go func() {
		defer close(outputStream)

		i := uint(0)
		for {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-inputStream:
				if !ok {
					return
				}
				outputStream <- item
				i++
				if n <= i {
					return
				}
			}
		}
	}()

	return outputStream
}

func ToSlice[T any](ctx context.Context, inputStream <-chan T) []T {
	output := make([]T, 0)
	for item := range inputStream {
		output = append(output, item)
	}

	return output
}

func OrDone[T any](ctx context.Context, inputStream <-chan T) <-chan T {
	outputStream := make(chan T, streamBufferSize)
	go func() {
		defer close(outputStream)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-inputStream:
				if !ok {
					return
				}

				select {
				case <-ctx.Done():
				case outputStream <- v:
				}
			}
		}
	}()

	return outputStream
}
