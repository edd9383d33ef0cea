package machine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceWriter(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tw := &TraceWriter{Out: out}

	tw.Trace(0, OP_INC, 0, 1)
	tw.Trace(12, OP_OUTPUT, 7, 104)
	tw.Trace(123, OP_LEFT, 42, 255)

	expected := []string{
		"PC:   0 ('+'), PTR: *( 0) =   1",
		"PC:  12 ('.'), PTR: *( 7) = 104",
		"PC: 123 ('<'), PTR: *(42) = 255",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), out.String())
}

func TestTraceWriter_Run(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse(strings.NewReader("+>."))
	assert.NoError(err)

	out := &bytes.Buffer{}
	m := NewMachine()
	m.Tracer = &TraceWriter{Out: out}
	m.Reset()

	assert.NoError(m.Run(prog))

	expected := []string{
		"PC:   0 ('+'), PTR: *( 0) =   1",
		"PC:   1 ('>'), PTR: *( 1) =   0",
		"PC:   2 ('.'), PTR: *( 1) =   0",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), out.String())
}
