package rle

import "io"

// A Writer compresses the bytes written to it and writes the compressed
// stream to Dest. It buffers at most one pending segment, so Close must
// be called to flush the last segment after the final Write. Close does
// not close the destination.
//
// Write errors from the destination are returned wrapped in
// *OutputError and are sticky: once a write has failed, every later
// call returns the same error.
type Writer struct {
	dest io.Writer

	// buf holds the bytes of the segment being accumulated: up to a
	// full literal plus the one byte of lookahead that decides how the
	// segment ends.
	buf   [maxLiteral + 1]byte
	n     int
	inRun bool

	scratch [maxLiteral + 2]byte // wire image of one segment
	err     error
}

// NewWriter returns a Writer that writes the compressed form of its
// input to dst.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{dest: dst}
}

// Reset discards any pending state and makes the Writer start a new
// compressed stream to dst.
func (w *Writer) Reset(dst io.Writer) {
	w.dest = dst
	w.n = 0
	w.inRun = false
	w.err = nil
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	for i, c := range p {
		w.buf[w.n] = c
		w.n++
		if err := w.step(false); err != nil {
			w.err = err
			return i, err
		}
	}
	return len(p), nil
}

// Close flushes whatever is still buffered as the final segment. It is
// a no-op if nothing is pending, so closing twice is harmless.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if err := w.step(true); err != nil {
		w.err = err
	}
	return w.err
}

// step decides, after one byte has been buffered (or at end of input),
// whether a segment is now complete, and flushes it if so. At most one
// segment can complete per byte.
func (w *Writer) step(eof bool) error {
	if w.inRun {
		// Every buffered byte except possibly the last equals the run
		// byte.
		switch {
		case w.buf[w.n-1] != w.buf[0]:
			// The new byte broke the run; it stays behind as the start
			// of the next segment.
			return w.flushRun(w.n - 1)
		case w.n == maxRun || eof:
			return w.flushRun(w.n)
		}
		return nil
	}
	switch {
	case w.n >= 2 && w.buf[w.n-2] == w.buf[w.n-1]:
		// Two equal bytes start a run. Whatever precedes them is a
		// finished literal (possibly empty).
		w.inRun = true
		return w.flushLiteral(w.n - 2)
	case w.n == maxLiteral+1:
		return w.flushLiteral(maxLiteral)
	case eof:
		return w.flushLiteral(w.n)
	}
	return nil
}

func (w *Writer) flushRun(count int) error {
	w.scratch[0] = byte(count)
	w.scratch[1] = w.buf[0]
	if _, err := w.dest.Write(w.scratch[:2]); err != nil {
		return &OutputError{err}
	}
	w.shift(count)
	w.inRun = false
	return nil
}

func (w *Writer) flushLiteral(count int) error {
	if count == 0 {
		return nil
	}
	w.scratch[0] = byte(256 - count)
	copy(w.scratch[1:], w.buf[:count])
	if _, err := w.dest.Write(w.scratch[:count+1]); err != nil {
		return &OutputError{err}
	}
	w.shift(count)
	return nil
}

func (w *Writer) shift(count int) {
	copy(w.buf[:], w.buf[count:w.n])
	w.n -= count
}

// Encode reads uncompressed bytes from src until EOF and writes the
// compressed stream to dst. Errors reading src are returned wrapped in
// *InputError, errors writing dst in *OutputError.
func Encode(dst io.Writer, src io.Reader) error {
	w := NewWriter(dst)
	buf := make([]byte, 32768)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return w.Close()
		}
		if err != nil {
			return &InputError{err}
		}
	}
}
