package machine

import (
	"io"
)

// Program is one loaded fragment: the instruction sequence plus the
// jump map pairing its loop brackets. The jump map is bidirectional;
// for every pair it holds both the opening and the closing position as
// keys, each mapping to the other.
type Program struct {
	Codes []Code
	Jumps map[int]int
}

// Parse loads a program fragment from a source text stream. The text
// is tokenized and its loop brackets resolved; an unbalanced program
// is rejected here and never reaches execution.
func Parse(input io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	codes := Tokenize(string(text))
	jumps, err := link(codes)
	if err != nil {
		return
	}

	prog = &Program{Codes: codes, Jumps: jumps}
	return
}

// link pairs the jump instructions in a single left to right pass,
// holding the positions of pending opening brackets on a stack. A
// closing bracket on an empty stack and an opening bracket left over
// at the end of the pass are both load errors carrying the offending
// position.
func link(codes []Code) (jumps map[int]int, err error) {
	jumps = map[int]int{}
	pending := &Stack{}

	for _, code := range codes {
		switch code.Op {
		case OP_OPEN:
			pending.Push(code.Pos)
		case OP_CLOSE:
			open, ok := pending.Pop()
			if !ok {
				err = &ErrProgram{Pos: code.Pos, Err: ErrDanglingClose}
				return
			}
			jumps[open] = code.Pos
			jumps[code.Pos] = open
		}
	}

	open, ok := pending.Pop()
	if ok {
		err = &ErrProgram{Pos: open, Err: ErrDanglingOpen}
		return
	}

	return
}

// Len returns the instruction count.
func (prog *Program) Len() int {
	return len(prog.Codes)
}
