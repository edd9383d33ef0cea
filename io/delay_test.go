package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelay_Send(t *testing.T) {
	assert := assert.New(t)

	delay := &Delay{}
	assert.Equal(0, delay.Len())

	err := delay.Send('o')
	assert.NoError(err)
	err = delay.Send('k')
	assert.NoError(err)

	assert.Equal(2, delay.Len())
	assert.Equal([]byte("ok"), delay.Data)
}

func TestDelay_Receive(t *testing.T) {
	assert := assert.New(t)

	delay := &Delay{}
	delay.Send('a')
	delay.Send('b')

	got := []byte{}
	for value := range delay.Receive() {
		got = append(got, value)
	}
	assert.Equal([]byte("ab"), got)

	// Receive does not consume the batch.
	assert.Equal(2, delay.Len())
}

func TestDelay_Flush(t *testing.T) {
	assert := assert.New(t)

	delay := &Delay{}
	delay.Send('h')
	delay.Send('i')

	out := &bytes.Buffer{}
	err := delay.Flush(out)
	assert.NoError(err)
	assert.Equal("hi", out.String())
	assert.Equal(0, delay.Len())

	// Flushing an empty batch writes nothing.
	err = delay.Flush(out)
	assert.NoError(err)
	assert.Equal("hi", out.String())
}

// cappedWriter accepts bytes until full, then fails the write.
type cappedWriter struct {
	Limit int
	Data  []byte
}

func (w *cappedWriter) Write(p []byte) (n int, err error) {
	n = min(len(p), w.Limit-len(w.Data))
	w.Data = append(w.Data, p[:n]...)
	if n < len(p) {
		err = errors.New("writer full")
	}
	return
}

func TestDelay_Flush_Short(t *testing.T) {
	assert := assert.New(t)

	delay := &Delay{}
	for _, value := range []byte("hello") {
		delay.Send(value)
	}

	out := &cappedWriter{Limit: 2}
	err := delay.Flush(out)
	assert.Error(err)
	assert.Equal([]byte("he"), out.Data)

	// The unwritten tail stays batched.
	assert.Equal(3, delay.Len())
	assert.Equal([]byte("llo"), delay.Data)

	// A writer taking nothing keeps the whole batch.
	err = delay.Flush(out)
	assert.Error(err)
	assert.Equal(3, delay.Len())

	// A later flush delivers the tail.
	buf := &bytes.Buffer{}
	assert.NoError(delay.Flush(buf))
	assert.Equal("llo", buf.String())
	assert.Equal(0, delay.Len())
}

func TestDelay_Rewind(t *testing.T) {
	assert := assert.New(t)

	delay := &Delay{}
	delay.Send('x')
	delay.Rewind()
	assert.Equal(0, delay.Len())
}
