// Copyright 2023, Alexandre Martos <contact@amartos.fr>

package arena

import (
	"fmt"
	"iter"
	"maps"
)

const (
	STRICT_LIMIT = 30 * 1000 // Cell count of the fixed tape in strict mode.
	CELL_MAX     = 0xff      // Largest value a single cell can hold.
)

var _arena_defines = map[string]string{
	"STRICT_LIMIT": fmt.Sprintf("%v", STRICT_LIMIT),
	"CELL_MAX":     fmt.Sprintf("%v", CELL_MAX),
}

// Arena is the byte memory a program works on. Cells are unsigned 8-bit
// values, all zero at the start. With Limit zero the arena extends itself
// with zero cells whenever an index at or past the current end is touched;
// with Limit set, touching an index at or past the limit is an ErrLimit
// fault instead.
type Arena struct {
	Limit int // Maximum cell count. Zero grows the arena on demand.
	Cell  []byte
}

// Defines for the arena.
func (a *Arena) Defines() iter.Seq2[string, string] {
	return maps.All(_arena_defines)
}

// Reset restores the initial memory state. A limited arena is allocated
// at its full fixed size up front; an unlimited one starts from a single
// zero cell.
func (a *Arena) Reset() {
	if a.Limit > 0 {
		a.Cell = make([]byte, a.Limit)
		return
	}

	a.Cell = make([]byte, 1)
}

// Size returns the current cell count.
func (a *Arena) Size() int {
	return len(a.Cell)
}

// Touch applies the growth or bound policy for an index. On an unlimited
// arena any index past the end extends the memory with zero cells through
// that index. On a limited arena an index at or past the limit is a fault.
// A negative index is always a fault.
func (a *Arena) Touch(ptr int) (err error) {
	if ptr < 0 {
		err = ErrNegative
		return
	}

	if ptr < len(a.Cell) {
		return
	}

	if a.Limit > 0 && ptr >= a.Limit {
		err = ErrLimit
		return
	}

	a.Cell = append(a.Cell, make([]byte, ptr+1-len(a.Cell))...)

	return
}

// Read returns the value of the cell at ptr.
func (a *Arena) Read(ptr int) (value byte, err error) {
	err = a.Touch(ptr)
	if err != nil {
		return
	}

	value = a.Cell[ptr]
	return
}

// Write sets the value of the cell at ptr.
func (a *Arena) Write(ptr int, value byte) (err error) {
	err = a.Touch(ptr)
	if err != nil {
		return
	}

	a.Cell[ptr] = value
	return
}

// Inc increments the cell at ptr, wrapping CELL_MAX+1 to zero, and
// returns the new value.
func (a *Arena) Inc(ptr int) (value byte, err error) {
	err = a.Touch(ptr)
	if err != nil {
		return
	}

	a.Cell[ptr]++
	value = a.Cell[ptr]
	return
}

// Dec decrements the cell at ptr, wrapping zero to CELL_MAX, and returns
// the new value.
func (a *Arena) Dec(ptr int) (value byte, err error) {
	err = a.Touch(ptr)
	if err != nil {
		return
	}

	a.Cell[ptr]--
	value = a.Cell[ptr]
	return
}
