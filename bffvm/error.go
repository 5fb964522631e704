package bffvm

import (
	"errors"
	"fmt"
)

// ErrStepBudget is returned by Step when the configured instruction budget
// runs out before the program halts.
var ErrStepBudget = errors.New("step budget exhausted")

// UnbalancedBracketsError reports a [ or ] without a match. Index is the
// position in the compiled instruction sequence, Offset the byte position in
// the source text.
type UnbalancedBracketsError struct {
	Index  int
	Offset int
}

func (e *UnbalancedBracketsError) Error() string {
	return fmt.Sprintf("unbalanced bracket at instruction %d (source offset %d)", e.Index, e.Offset)
}

// InvalidInstructionError reports a non-instruction, non-whitespace byte in
// strict compilation mode.
type InvalidInstructionError struct {
	Offset int
	Symbol byte
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction %q at source offset %d", e.Symbol, e.Offset)
}

// TapeOutOfBoundsError reports a cell access outside a fixed-size tape.
// Head is 0 or 1.
type TapeOutOfBoundsError struct {
	Head  int
	Index int
}

func (e *TapeOutOfBoundsError) Error() string {
	return fmt.Sprintf("head%d out of tape bounds at cell %d", e.Head, e.Index)
}
