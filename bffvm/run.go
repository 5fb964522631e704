package bffvm

// Step records one executed instruction: the position and symbol, the head
// positions after the transition, the affected cell value, and whether a
// bracket took its jump.
type Step struct {
	PC    int
	Op    Op
	Head0 int
	Head1 int
	Cell  byte
	Taken bool
}

// Run drives the machine until it halts or fails. It is usable as a
// range-over-func iterator:
//
//	for step, err := range vm.Run { ... }
//
// With Trace set, every executed instruction yields its Step; otherwise only
// a fatal error is yielded. Stopping the iteration leaves the machine state
// intact, so a run can be resumed.
func (v *VM) Run(yield func(*Step, error) bool) {
	for !v.Halted() {
		step, err := v.Step()
		if err != nil {
			yield(nil, err)
			return
		}
		if v.Trace {
			if !yield(&step, nil) {
				return
			}
		}
	}
	if v.logger != nil {
		v.logger.Debug("machine halted",
			"steps", v.Steps,
			"head0", v.Head0,
			"head1", v.Head1,
		)
	}
}

// Step executes exactly one instruction as an atomic state transition. The
// caller must ensure the machine has not halted.
func (v *VM) Step() (Step, error) {
	if v.MaxSteps > 0 && v.Steps >= v.MaxSteps {
		return Step{}, ErrStepBudget
	}

	op := v.Program.Ops[v.PC]
	step := Step{
		PC: v.PC,
		Op: op,
	}

	switch op {

	case OpHead0Left:
		v.Head0--

	case OpHead0Right:
		v.Head0++

	case OpHead1Left:
		v.Head1--

	case OpHead1Right:
		v.Head1++

	case OpDec:
		val, ok := v.Tape.At(v.Head0)
		if !ok {
			return step, &TapeOutOfBoundsError{Head: 0, Index: v.Head0}
		}
		val--
		v.Tape.Set(v.Head0, val)
		step.Cell = val

	case OpInc:
		val, ok := v.Tape.At(v.Head0)
		if !ok {
			return step, &TapeOutOfBoundsError{Head: 0, Index: v.Head0}
		}
		val++
		v.Tape.Set(v.Head0, val)
		step.Cell = val

	case OpCopyOut:
		val, ok := v.Tape.At(v.Head0)
		if !ok {
			return step, &TapeOutOfBoundsError{Head: 0, Index: v.Head0}
		}
		if !v.Tape.Set(v.Head1, val) {
			return step, &TapeOutOfBoundsError{Head: 1, Index: v.Head1}
		}
		step.Cell = val

	case OpCopyIn:
		val, ok := v.Tape.At(v.Head1)
		if !ok {
			return step, &TapeOutOfBoundsError{Head: 1, Index: v.Head1}
		}
		if !v.Tape.Set(v.Head0, val) {
			return step, &TapeOutOfBoundsError{Head: 0, Index: v.Head0}
		}
		step.Cell = val

	case OpLoopOpen:
		val, ok := v.Tape.At(v.Head0)
		if !ok {
			return step, &TapeOutOfBoundsError{Head: 0, Index: v.Head0}
		}
		step.Cell = val
		if val == 0 {
			v.PC = v.Program.Jumps[v.PC]
			step.Taken = true
		}

	case OpLoopClose:
		val, ok := v.Tape.At(v.Head0)
		if !ok {
			return step, &TapeOutOfBoundsError{Head: 0, Index: v.Head0}
		}
		step.Cell = val
		if val != 0 {
			v.PC = v.Program.Jumps[v.PC]
			step.Taken = true
		}
	}

	// Landing on a bracket does not re-trigger its test: the jump sets PC to
	// the matching bracket and this advance moves past it.
	v.PC++
	v.Steps++

	step.Head0 = v.Head0
	step.Head1 = v.Head1
	return step, nil
}
