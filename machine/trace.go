package machine

import (
	"fmt"
	"io"
)

// Tracer observes executed instructions.
type Tracer interface {
	// Trace is called after the effect of an instruction is applied,
	// with the position of the instruction, its symbol, the data
	// pointer, and the value of the cell at the pointer.
	Trace(pc int, op Op, ptr int, value byte)
}

// TraceWriter is a Tracer printing one execution record per line, in
// the form:
//
//	PC:   0 ('+'), PTR: *( 0) =   1
type TraceWriter struct {
	Out io.Writer
}

// Trace prints the execution record of a single instruction.
func (t *TraceWriter) Trace(pc int, op Op, ptr int, value byte) {
	fmt.Fprintf(t.Out, "PC: %3d ('%v'), PTR: *(%2d) = %3d\n", pc, op, ptr, value)
}
