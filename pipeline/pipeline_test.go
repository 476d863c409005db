package pipeline

import (
	"context"
	"testing"

	"github.com/ar90n/runsplit"
	"github.com/stretchr/testify/assert"
)

func Test_Stream(t *testing.T) {
	data := []byte("aa\nbbb\nc")
	s := runsplit.SplitAfter(data, func(v *byte) bool { return *v == '\n' })

	ctx := context.Background()
	runs := ToSlice(ctx, Stream(ctx, s))

	want := [][]byte{[]byte("aa\n"), []byte("bbb\n"), []byte("c")}
	assert.Equal(t, want, runs)
}

func Test_Stream_EmptySource(t *testing.T) {
	s := runsplit.SplitBefore([]byte{}, func(v *byte) bool { return true })

	ctx := context.Background()
	runs := ToSlice(ctx, Stream(ctx, s))
	assert.Empty(t, runs)
}

func Test_Take(t *testing.T) {
	data := []byte("a\nb\nc\nd")
	s := runsplit.SplitAfter(data, func(v *byte) bool { return *v == '\n' })

	ctx := context.Background()
	runs := ToSlice(ctx, Take(ctx, 2, Stream(ctx, s)))

	want := [][]byte{[]byte("a\n"), []byte("b\n")}
	assert.Equal(t, want, runs)
}

func Test_Stream_Cancel(t *testing.T) {
	data := make([]byte, 64)
	s := runsplit.SplitAfter(data, func(v *byte) bool { return true })

	ctx, cancel := context.WithCancel(context.Background())
	runs := Stream(ctx, s)

	<-runs
	<-runs
	cancel()

	n := 2
	for range runs {
		n++
	}
	if 64 <= n {
		t.Errorf("stream produced all %d runs after cancel", n)
	}
}

func Test_OrDone(t *testing.T) {
	ctx := context.Background()

	inputStream := make(chan []byte, 3)
	inputStream <- []byte{0}
	inputStream <- []byte{1}
	close(inputStream)

	runs := ToSlice(ctx, OrDone(ctx, inputStream))
	assert.Equal(t, [][]byte{{0}, {1}}, runs)
}
