// Package bytesview provides a borrowed, bounds-checked view over a
// contiguous byte region with cheap sub-ranging.
//
// A View never copies. It exists so that window-based code (substring
// windows, space-split sub-queries) can carry a region plus its offset in
// the underlying buffer without re-slicing arithmetic at every call site.
// All inner loops operate on the raw slice obtained via Bytes.
package bytesview

// View is a read-only window into a byte buffer. The zero value is an empty
// view. Off is the offset of the window within the buffer the view was
// created from; it survives sub-ranging so positions found inside a window
// can be mapped back to the original buffer.
type View struct {
	b   []byte
	off int
}

// Of returns a view covering all of b with offset 0.
func Of(b []byte) View {
	return View{b: b}
}

// Len returns the window length in bytes.
func (v View) Len() int { return len(v.b) }

// Off returns the window's offset in the buffer it was created from.
func (v View) Off() int { return v.off }

// Bytes returns the underlying window. The slice is borrowed; callers must
// not mutate it.
func (v View) Bytes() []byte { return v.b }

// At returns the byte at position i within the window.
func (v View) At(i int) byte { return v.b[i] }

// Sub returns the sub-window [lo, hi). It panics if the range is not within
// the window, same as slicing.
func (v View) Sub(lo, hi int) View {
	return View{b: v.b[lo:hi], off: v.off + lo}
}

// Abs maps a position inside the window to a position in the buffer the
// view chain started from.
func (v View) Abs(i int) int { return v.off + i }
