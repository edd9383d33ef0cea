package io

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine_Receive(t *testing.T) {
	assert := assert.New(t)

	prompts := &bytes.Buffer{}
	line := &Line{
		Prompt: "?> ",
		In:     bufio.NewReader(strings.NewReader("ab\ncd\n")),
		Out:    prompts,
	}

	got := []byte{}
	for value := range line.Receive() {
		got = append(got, value)
	}

	// Line terminators are never delivered.
	assert.Equal([]byte("abcd"), got)
	// One prompt per line read, plus the final read that hit end of input.
	assert.Equal("?> ?> ?> ", prompts.String())
}

func TestLine_Receive_OneByteAtATime(t *testing.T) {
	assert := assert.New(t)

	line := &Line{
		In: bufio.NewReader(strings.NewReader("xy\n")),
	}

	var got byte
	for value := range line.Receive() {
		got = value
		break
	}
	assert.Equal(byte('x'), got)

	// The remainder of the line survives for the next pull.
	for value := range line.Receive() {
		got = value
		break
	}
	assert.Equal(byte('y'), got)
}

func TestLine_Receive_SkipsEmptyLines(t *testing.T) {
	assert := assert.New(t)

	line := &Line{
		In: bufio.NewReader(strings.NewReader("\n\nz\n")),
	}

	got := []byte{}
	for value := range line.Receive() {
		got = append(got, value)
	}

	assert.Equal([]byte("z"), got)
}

func TestLine_Receive_NoTrailingNewline(t *testing.T) {
	assert := assert.New(t)

	line := &Line{
		In: bufio.NewReader(strings.NewReader("end")),
	}

	got := []byte{}
	for value := range line.Receive() {
		got = append(got, value)
	}

	assert.Equal([]byte("end"), got)
}

func TestLine_Rewind(t *testing.T) {
	assert := assert.New(t)

	line := &Line{
		In: bufio.NewReader(strings.NewReader("abc\ndef\n")),
	}

	for range line.Receive() {
		break
	}
	line.Rewind()

	got := []byte{}
	for value := range line.Receive() {
		got = append(got, value)
	}

	// The rest of the first line was dropped by Rewind.
	assert.Equal([]byte("def"), got)
}

func TestLine_Send(t *testing.T) {
	assert := assert.New(t)

	line := &Line{}
	err := line.Send('x')
	assert.ErrorIs(err, ErrChannelReadOnly)
}
