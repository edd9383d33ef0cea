// Package io provides the byte channels the BFG interpreter talks to.
// It includes streaming standard I/O (Tape), an accumulating output sink
// used in trace mode (Delay), and prompted line-by-line interactive input
// (Line).
package io

import (
	"iter"
)

// Channel defines the interface for all interpreter I/O channels.
// Channels operate at the byte level: a program consumes input through
// Receive and emits output through Send.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields bytes from the channel.
	Receive() iter.Seq[byte]
	// Send writes a single byte to the channel.
	Send(value byte) error
}
