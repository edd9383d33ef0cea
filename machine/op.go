package machine

// Op is a single instruction symbol of the language.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_RIGHT  = Op(0) // >
	OP_LEFT   = Op(1) // <
	OP_INC    = Op(2) // +
	OP_DEC    = Op(3) // -
	OP_OUTPUT = Op(4) // .
	OP_INPUT  = Op(5) // ,
	OP_OPEN   = Op(6) // [
	OP_CLOSE  = Op(7) // ]
)

const OP_COUNT = 8 // Number of instruction symbols.

// opMap maps source symbols to instructions. Characters outside this
// map are not instructions.
var opMap = map[rune]Op{
	'>': OP_RIGHT,
	'<': OP_LEFT,
	'+': OP_INC,
	'-': OP_DEC,
	'.': OP_OUTPUT,
	',': OP_INPUT,
	'[': OP_OPEN,
	']': OP_CLOSE,
}

// Code is one decoded instruction with its position in the program.
type Code struct {
	Op  Op
	Pos int
}
