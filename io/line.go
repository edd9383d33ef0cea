package io

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// Line reads interactive input one line at a time, prompting on Out
// before each read and serving the line back byte by byte. The line
// terminator is never delivered to the program; an empty line prompts
// again.
type Line struct {
	Prompt string
	In     *bufio.Reader
	Out    io.Writer

	remain []byte
}

var _ Channel = (*Line)(nil)

// Rewind drops any unread remainder of the current line.
func (lc *Line) Rewind() {
	lc.remain = nil
}

// Receive returns an iterator that yields the bytes of successive input
// lines, prompting whenever a fresh line is needed. The iterator ends at
// end of input.
func (lc *Line) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		for {
			for len(lc.remain) == 0 {
				if lc.Out != nil && len(lc.Prompt) > 0 {
					io.WriteString(lc.Out, lc.Prompt)
				}
				text, err := lc.In.ReadString('\n')
				text = strings.TrimRight(text, "\r\n")
				if len(text) == 0 && err != nil {
					return
				}
				lc.remain = []byte(text)
			}
			value := lc.remain[0]
			lc.remain = lc.remain[1:]
			if !yield(value) {
				return
			}
		}
	}
}

// Send is not possible on a line input.
func (lc *Line) Send(value byte) error {
	return ErrChannelReadOnly
}
