package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	codes := Tokenize("><+-.,[]")

	expected := []Op{OP_RIGHT, OP_LEFT, OP_INC, OP_DEC, OP_OUTPUT, OP_INPUT, OP_OPEN, OP_CLOSE}
	assert.Equal(len(expected), len(codes))
	for n, code := range codes {
		assert.Equal(expected[n], code.Op)
		assert.Equal(n, code.Pos)
	}
}

func TestTokenize_Empty(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, len(Tokenize("")))
	assert.Equal(0, len(Tokenize("\n\n\n")))
	assert.Equal(0, len(Tokenize("# nothing\n# but comments\n")))
}

func TestTokenize_Comment(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"# a comment-only line",
		"+++ # the rest is dropped: ><",
		"## another",
		">#<",
	}

	codes := Tokenize(strings.Join(program, "\n"))
	assert.Equal(4, len(codes))
	assert.Equal(OP_INC, codes[0].Op)
	assert.Equal(OP_RIGHT, codes[3].Op)
	assert.Equal(3, codes[3].Pos)
}

func TestTokenize_Noise(t *testing.T) {
	assert := assert.New(t)

	// Anything that is not an instruction is a comment.
	codes := Tokenize("to be, or not to be.")
	assert.Equal(2, len(codes))
	assert.Equal(OP_INPUT, codes[0].Op)
	assert.Equal(OP_OUTPUT, codes[1].Op)
}

func TestTokenize_Positions(t *testing.T) {
	assert := assert.New(t)

	// Positions index the instruction sequence, not the source text.
	codes := Tokenize("a+b[c]d")
	assert.Equal([]Code{{OP_INC, 0}, {OP_OPEN, 1}, {OP_CLOSE, 2}}, codes)
}

func TestTokenize_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	source := "+[>>>->-[>->----<<<]>>]"

	var text strings.Builder
	for _, code := range Tokenize(source) {
		text.WriteString(code.Op.String())
	}

	assert.Equal(source, text.String())
	assert.Equal(Tokenize(source), Tokenize(text.String()))
}
