package io

import (
	"io"
	"iter"
)

// Delay accumulates bytes sent to it instead of forwarding them, so that
// trace lines and program output on separate streams never interleave.
// The batch is written out in one piece by Flush.
type Delay struct {
	Data []byte
}

var _ Channel = (*Delay)(nil)

// Rewind empties the batch.
func (dc *Delay) Rewind() {
	dc.Data = dc.Data[:0]
}

// Receive returns an iterator that yields the accumulated bytes without
// consuming them.
func (dc *Delay) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		for _, value := range dc.Data {
			if !yield(value) {
				return
			}
		}
	}
}

// Send appends one byte to the batch.
func (dc *Delay) Send(value byte) (err error) {
	dc.Data = append(dc.Data, value)
	return
}

// Len returns the batch size in bytes.
func (dc *Delay) Len() int {
	return len(dc.Data)
}

// Flush writes the whole batch to w and drops the written part. A
// short or failed write keeps the unwritten tail batched for the next
// flush. An empty batch writes nothing.
func (dc *Delay) Flush(w io.Writer) (err error) {
	if len(dc.Data) == 0 {
		return
	}

	n, err := w.Write(dc.Data)
	dc.Data = dc.Data[:copy(dc.Data, dc.Data[n:])]
	return
}
