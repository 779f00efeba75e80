package rle

import (
	"bufio"
	"io"
)

// A Reader decompresses the stream read from its source. It alternates
// between two states: expecting a control byte, and replaying the
// segment the last control byte described.
//
// Reaching end of input between segments is normal termination, as is
// a zero control byte; reaching end of input in the middle of a segment
// yields ErrTruncated. Other errors from the source are returned
// wrapped in *InputError.
type Reader struct {
	src *bufio.Reader

	remaining int  // bytes of the current segment not yet produced
	run       bool // current segment is a run
	b         byte // the run byte
	err       error
}

// NewReader returns a Reader that reads a compressed stream from src
// and yields the decompressed bytes.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: bufio.NewReader(src)}
}

// Reset makes the Reader start decoding a new compressed stream from
// src.
func (r *Reader) Reset(src io.Reader) {
	r.src.Reset(src)
	r.remaining = 0
	r.run = false
	r.err = nil
}

func (r *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && r.err == nil {
		if r.remaining == 0 {
			r.nextSegment()
			continue
		}
		k := r.remaining
		if k > len(p)-n {
			k = len(p) - n
		}
		if r.run {
			for i := 0; i < k; i++ {
				p[n+i] = r.b
			}
			n += k
			r.remaining -= k
			continue
		}
		m, err := io.ReadFull(r.src, p[n:n+k])
		n += m
		r.remaining -= m
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				err = ErrTruncated
			} else {
				err = &InputError{err}
			}
			r.err = err
		}
	}
	if n > 0 {
		return n, nil
	}
	return 0, r.err
}

// nextSegment reads the next control byte and, for a run, the byte to
// repeat.
func (r *Reader) nextSegment() {
	ctrl, err := r.src.ReadByte()
	if err == io.EOF || (err == nil && ctrl == 0) {
		r.err = io.EOF
		return
	}
	if err != nil {
		r.err = &InputError{err}
		return
	}
	if ctrl <= maxRun {
		b, err := r.src.ReadByte()
		if err == io.EOF {
			r.err = ErrTruncated
			return
		}
		if err != nil {
			r.err = &InputError{err}
			return
		}
		r.run = true
		r.b = b
		r.remaining = int(ctrl)
		return
	}
	r.run = false
	r.remaining = 256 - int(ctrl)
}

// Decode reads a compressed stream from src until it ends and writes
// the decompressed bytes to dst. Errors reading src come back wrapped
// in *InputError (or as ErrTruncated if the stream stops mid-segment);
// errors writing dst come back wrapped in *OutputError.
func Decode(dst io.Writer, src io.Reader) error {
	r := NewReader(src)
	buf := make([]byte, 32768)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return &OutputError{werr}
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
