package chopper

import "iter"

// WindowBound selects how many start positions are enumerated per length.
type WindowBound int

const (
	// ReferenceBound yields L-K windows for a sequence of length L, leaving
	// out the final window of every length class. Default, matching the
	// digests produced by earlier Chopper releases.
	ReferenceBound WindowBound = iota
	// FullBound yields all L-K+1 windows.
	FullBound
)

func (b WindowBound) String() string {
	if b == FullBound {
		return "full"
	}
	return "reference"
}

// WindowCount is the number of windows of length k produced for a
// sequence of length l.
func WindowCount(l, k int, bound WindowBound) int {
	if k <= 0 {
		return 0
	}
	n := l - k
	if bound == FullBound {
		n++
	}
	if n < 0 {
		return 0
	}
	return n
}

// Windows yields every window of length k of seq in ascending start
// order. Yielded slices alias seq.
func Windows(seq []byte, k int, bound WindowBound) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		n := WindowCount(len(seq), k, bound)
		for i := 0; i < n; i++ {
			if !yield(seq[i : i+k : i+k]) {
				return
			}
		}
	}
}

// Enumerate yields (k, window) for every length k in [minLen, maxLen],
// ascending by length and then by start position. Lengths beyond len(seq)
// cannot produce a window and are never visited.
func Enumerate(seq []byte, minLen, maxLen int, bound WindowBound) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		upper := min(maxLen, len(seq))
		for k := minLen; k <= upper; k++ {
			for w := range Windows(seq, k, bound) {
				if !yield(k, w) {
					return
				}
			}
		}
	}
}
