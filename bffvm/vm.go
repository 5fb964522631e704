// Package bffvm executes programs in a two-head brainfuck variant: one
// shared tape, two independent heads, and . , redefined as tape-to-tape
// copies between the heads. There is no console I/O in the language.
package bffvm

import (
	"encoding/gob"
	"io"
	"log/slog"
)

// VM is the complete machine state: the read-only program plus the mutable
// (PC, Head0, Head1, Tape) tuple. The state fully determines all future
// behavior; running the same program from the same state twice yields the
// same result. A VM is owned by exactly one goroutine for the duration of a
// run.
type VM struct {
	Program *Program
	Tape    *Tape
	PC      int
	Head0   int
	Head1   int

	// Steps counts executed instructions. MaxSteps caps it when non-zero.
	Steps    int64
	MaxSteps int64

	// Trace makes Run yield a Step after every executed instruction.
	Trace bool

	logger *slog.Logger
}

func NewVM(program *Program) *VM {
	return &VM{
		Program: program,
		Tape:    NewGrowableTape(),
	}
}

func (v *VM) SetLogger(logger *slog.Logger) {
	v.logger = logger
}

// Halted reports whether the program counter has passed the end of the
// program, the only terminal state.
func (v *VM) Halted() bool {
	return v.PC >= len(v.Program.Ops)
}

// Snapshot writes the full machine state.
func (v *VM) Snapshot(w io.Writer) error {
	return gob.NewEncoder(w).Encode(v)
}

// Restore replaces the machine state with a previously written snapshot.
func (v *VM) Restore(r io.Reader) error {
	return gob.NewDecoder(r).Decode(v)
}
