package io

import (
	"io"
	"iter"
)

// Tape provides streaming I/O over a byte source and sink. It wraps an
// io.Reader for input and an io.Writer for output; bytes sent to the
// channel are written out immediately.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive returns an iterator that yields bytes from the input stream
// until end of input.
func (tc *Tape) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		for {
			var one [1]byte
			n, err := tc.Input.Read(one[:])
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			if !yield(one[0]) {
				return
			}
		}
	}
}

// Send writes one byte to the output stream.
func (tc *Tape) Send(value byte) (err error) {
	_, err = tc.Output.Write([]byte{value})
	return
}
