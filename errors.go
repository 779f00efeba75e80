package rle

import "errors"

// ErrTruncated is returned when a compressed stream ends in the middle
// of a segment: a control byte promised more data bytes than the stream
// contained.
var ErrTruncated = errors.New("rle: unexpected end of stream")

// An InputError wraps an error reading the source stream, so that a
// caller can tell a failing source apart from a failing destination.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return "rle: reading input: " + e.Err.Error() }

func (e *InputError) Unwrap() error { return e.Err }

// An OutputError wraps an error writing to the destination stream.
type OutputError struct {
	Err error
}

func (e *OutputError) Error() string { return "rle: writing output: " + e.Err.Error() }

func (e *OutputError) Unwrap() error { return e.Err }
