// Package runsplit splits a slice into contiguous runs delimited by a
// predicate. Runs are produced lazily, one pull at a time, as sub-slices of
// the source; the source is never copied or mutated.
package runsplit

type mode int

const (
	before mode = iota
	after
)

// Splitter produces the runs of a single source slice in order. Each run is
// a non-empty sub-slice sharing the source's backing array, and the runs
// concatenate back to the source exactly.
//
// A Splitter is driven by one consumer from one goroutine. The matcher may
// keep state of its own; it is called at most once per element, in element
// order.
type Splitter[T any] struct {
	index   int
	data    []T
	matcher func(*T) bool
	mode    mode
}

// SplitBefore returns a Splitter that places each matched element at the
// start of the following run. A match at the very start of a run is absorbed
// into that run rather than producing an empty one, so a matcher that hits
// the first element of data does not split there.
func SplitBefore[T any](data []T, matcher func(*T) bool) *Splitter[T] {
	return &Splitter[T]{data: data, matcher: matcher, mode: before}
}

// SplitAfter returns a Splitter that places each matched element at the end
// of the current run.
func SplitAfter[T any](data []T, matcher func(*T) bool) *Splitter[T] {
	return &Splitter[T]{data: data, matcher: matcher, mode: after}
}

// Next returns the next run, or nil and false once the source is exhausted.
// After that it keeps returning nil and false.
func (s *Splitter[T]) Next() ([]T, bool) {
	switch s.mode {
	case before:
		return s.nextBefore()
	default:
		return s.nextAfter()
	}
}

func (s *Splitter[T]) nextBefore() ([]T, bool) {
	if s.index == len(s.data) {
		return nil, false
	}

	start := s.index
	for i := start; i < len(s.data); i++ {
		if s.matcher(&s.data[i]) {
			// A match at the cursor cannot end a run before itself.
			// Keep scanning unless it is also the final element.
			if i == start && i < len(s.data)-1 {
				continue
			}
			if i == start {
				s.index = len(s.data)
				return s.data[start:], true
			}

			// The matched element is held back to open the next run.
			s.index = i
			return s.data[start:i], true
		}

		if i == len(s.data)-1 {
			s.index = len(s.data)
			return s.data[start:], true
		}
	}

	return nil, false
}

func (s *Splitter[T]) nextAfter() ([]T, bool) {
	if s.index == len(s.data) {
		return nil, false
	}

	start := s.index
	for i := start; i < len(s.data); i++ {
		if s.matcher(&s.data[i]) {
			s.index = i + 1
			return s.data[start : i+1], true
		}

		if i == len(s.data)-1 {
			s.index = len(s.data)
			return s.data[start:], true
		}
	}

	return nil, false
}

// Collect drains the Splitter and returns the remaining runs in order.
func (s *Splitter[T]) Collect() [][]T {
	runs := [][]T{}
	for run, ok := s.Next(); ok; run, ok = s.Next() {
		runs = append(runs, run)
	}

	return runs
}
