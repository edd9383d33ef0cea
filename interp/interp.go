// Copyright 2023, Alexandre Martos <contact@amartos.fr>

// Package interp drives program fragments through a machine and its
// channels, applying the session policies: strict or growable memory,
// persistent or isolated fragments, and delayed output while tracing.
package interp

import (
	"iter"
	"maps"
	"strings"

	"github.com/amartos/BFG/arena"
	"github.com/amartos/BFG/internal"
	"github.com/amartos/BFG/io"
	"github.com/amartos/BFG/machine"
	"github.com/amartos/BFG/translate"
)

var f = translate.From

const VERSION = "0.1.0"

var _interp_defines = map[string]string{
	"VERSION": VERSION,
}

// Interp state. Machine + memory + IO channels.
type Interp struct {
	Verbose bool // If set, enables verbose logging.

	Strict     bool // Limit the memory to the fixed tape size.
	Persistent bool // Keep memory and pointer between fragments.
	Trace      bool // Delay program output while tracing runs.

	*machine.Machine // Reference to the execution machine.

	Tape  io.Tape  // Streaming IO channel.
	Delay io.Delay // Delayed output channel, used while tracing.
}

// NewInterp creates a new interpreter with streaming channels
// attached.
func NewInterp() (ip *Interp) {
	ip = &Interp{
		Machine: machine.NewMachine(),
	}

	ip.Machine.SetInput(&ip.Tape)
	ip.Machine.SetOutput(&ip.Tape)

	return
}

// Defines returns an iterator over all of the defines
func (ip *Interp) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_interp_defines),
		ip.Machine.Defines(),
		ip.Machine.Arena.Defines(),
	)
}

// Close the interpreter
func (ip *Interp) Close() (err error) {
	ip.Machine.Close()

	return
}

// Reset restores the initial session state and applies the session
// policies to the machine: the memory bound in strict mode, and the
// output channel, delayed while tracing so that trace lines and
// program output never interleave.
func (ip *Interp) Reset() {
	ip.Machine.Verbose = ip.Verbose

	ip.Machine.Arena.Limit = 0
	if ip.Strict {
		ip.Machine.Arena.Limit = arena.STRICT_LIMIT
	}

	if ip.Trace {
		ip.Machine.SetOutput(&ip.Delay)
	} else {
		ip.Machine.SetOutput(&ip.Tape)
	}

	ip.Machine.Reset()
}

// Load parses source text into a runnable program.
func (ip *Interp) Load(source string) (prog *machine.Program, err error) {
	return machine.Parse(strings.NewReader(source))
}

// Run executes one program fragment. Between fragments the session
// either persists, keeping memory, pointer and pending input, or
// starts over from a fresh state.
func (ip *Interp) Run(prog *machine.Program) (err error) {
	if ip.Persistent {
		ip.Machine.Restart()
	} else {
		ip.Reset()
	}

	err = ip.Machine.Run(prog)
	return
}

// Summary returns the execution report for the last run of prog.
func (ip *Interp) Summary(prog *machine.Program) string {
	return f("Done with: %v instructions, %v steps, %v bytes",
		prog.Len(), ip.Machine.Steps, ip.Machine.Arena.Size())
}
