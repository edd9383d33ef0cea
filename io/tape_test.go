package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("abc")}

	got := []byte{}
	for value := range tape.Receive() {
		got = append(got, value)
	}

	assert.Equal([]byte("abc"), got)
}

func TestTape_Receive_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("abc")}

	count := 0
	for range tape.Receive() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(2, count)
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tape := &Tape{Output: out}

	err := tape.Send('h')
	assert.NoError(err)
	err = tape.Send('i')
	assert.NoError(err)

	assert.Equal("hi", out.String())
}

func TestTape_Receive_Resumes(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("xy")}

	var first byte
	for value := range tape.Receive() {
		first = value
		break
	}
	assert.Equal(byte('x'), first)

	// A fresh iterator picks up where the reader stopped.
	var second byte
	for value := range tape.Receive() {
		second = value
		break
	}
	assert.Equal(byte('y'), second)
}
