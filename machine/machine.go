package machine

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/amartos/BFG/arena"
	"github.com/amartos/BFG/io"
)

// Channel is a byte I/O channel interface.
type Channel io.Channel

// State is the execution state of a Machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	RUNNING = State(0) // running
	HALTED  = State(1) // halted
	FAULTED = State(2) // faulted
)

var _machine_defines = map[string]string{
	"OP_COUNT": fmt.Sprintf("%v", OP_COUNT),
}

// Machine is the fetch-decode-execute engine. It runs one program
// fragment at a time against an arena of byte cells and a single data
// pointer, pulling input bytes and sending output bytes over the
// attached channels. Pointer and arena survive across fragments when
// the caller restarts instead of resetting the machine.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Arena *arena.Arena // Byte memory the program works on.

	Pc       int   // Current program counter, local to the fragment.
	Ptr      int   // Current data pointer.
	State    State // Current execution state.
	Executed int   // Instructions executed since the last restart.
	Steps    int   // Steps elapsed since the last restart.

	Tracer Tracer // Optional per-instruction observer.

	input  Channel
	output Channel

	pull func() (byte, bool)
	stop func()
}

// NewMachine creates a new machine with an unlimited arena.
func NewMachine() (m *Machine) {
	m = &Machine{
		Arena: &arena.Arena{},
	}

	return
}

// Defines for the machine.
func (m *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// SetInput attaches the channel the input instruction pulls bytes
// from. Any partially consumed input sequence is released.
func (m *Machine) SetInput(ch Channel) {
	m.Close()
	m.input = ch
}

// SetOutput attaches the channel the output instruction sends bytes
// to.
func (m *Machine) SetOutput(ch Channel) {
	m.output = ch
}

// Close releases the input pull, if one is open.
func (m *Machine) Close() (err error) {
	if m.stop != nil {
		m.stop()
	}
	m.pull = nil
	m.stop = nil

	return
}

// Reset restores the initial machine state: pointer at zero, a fresh
// arena, counters cleared. The attached channels are kept, but any
// partially consumed input sequence is released.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	m.Restart()
	m.Ptr = 0
	m.Arena.Reset()
	m.Close()
}

// Restart rewinds the machine for the next program fragment without
// touching the pointer, the arena, or the input: the program counter
// and both counters restart, and the machine is running again.
func (m *Machine) Restart() {
	m.Pc = 0
	m.State = RUNNING
	m.Executed = 0
	m.Steps = 0
}

// Tick executes the single instruction at the program counter. It
// reports done once the counter passes the last instruction; the
// machine is then halted. A fault stops the machine immediately and
// carries the position context; the instruction that faulted is not
// counted, and output already sent stays sent.
func (m *Machine) Tick(prog *Program) (done bool, err error) {
	if m.State != RUNNING {
		done = true
		return
	}

	if m.Pc >= prog.Len() {
		m.State = HALTED
		done = true
		return
	}

	code := prog.Codes[m.Pc]

	defer func() {
		if err != nil {
			m.State = FAULTED
			err = &ErrRuntime{Pc: code.Pos, Op: code.Op, Ptr: m.Ptr, Err: err}
		}
	}()

	if m.Verbose {
		log.Printf("machine: #%3d %v", code.Pos, code.Op)
	}

	next := m.Pc + 1

	switch code.Op {
	case OP_RIGHT:
		err = m.movePtr(1)
	case OP_LEFT:
		err = m.movePtr(-1)
	case OP_INC:
		_, err = m.Arena.Inc(m.Ptr)
	case OP_DEC:
		_, err = m.Arena.Dec(m.Ptr)
	case OP_OUTPUT:
		err = m.writeOutput()
	case OP_INPUT:
		err = m.readInput()
	case OP_OPEN:
		var value byte
		value, err = m.Arena.Read(m.Ptr)
		if err == nil && value == 0 {
			next = prog.Jumps[code.Pos]
		}
	case OP_CLOSE:
		var value byte
		value, err = m.Arena.Read(m.Ptr)
		if err == nil && value != 0 {
			next = prog.Jumps[code.Pos]
		}
	}
	if err != nil {
		return
	}

	m.Pc = next
	m.Executed += 1
	m.Steps += 1

	if m.Tracer != nil {
		value, _ := m.Arena.Read(m.Ptr)
		m.Tracer.Trace(code.Pos, code.Op, m.Ptr, value)
	}

	return
}

// Run executes prog from the current program counter until the
// machine halts or faults.
func (m *Machine) Run(prog *Program) (err error) {
	for done := false; !done; {
		done, err = m.Tick(prog)
		if err != nil {
			return
		}
	}

	return
}

// movePtr shifts the data pointer and applies the policies for the new
// position: a negative position is a fault, and a position past the
// arena runs its growth or bound check. The pointer keeps the new
// position even when it faults, so the fault context reports where the
// program actually pointed.
func (m *Machine) movePtr(delta int) (err error) {
	m.Ptr += delta

	if m.Ptr < 0 {
		err = ErrPointer
		return
	}

	err = m.Arena.Touch(m.Ptr)
	return
}

// writeOutput sends the cell at the pointer to the output channel, as
// a single byte. Without an output channel the byte is discarded.
func (m *Machine) writeOutput() (err error) {
	value, err := m.Arena.Read(m.Ptr)
	if err != nil {
		return
	}

	if m.output == nil {
		return
	}

	err = m.output.Send(value)
	return
}

// readInput pulls the next input byte into the cell at the pointer. At
// end of input the cell is left unchanged and execution continues; the
// same applies when no input channel is attached.
func (m *Machine) readInput() (err error) {
	if m.pull == nil {
		if m.input == nil {
			return
		}
		m.pull, m.stop = iter.Pull(m.input.Receive())
	}

	value, ok := m.pull()
	if !ok {
		return
	}

	err = m.Arena.Write(m.Ptr, value)
	return
}
