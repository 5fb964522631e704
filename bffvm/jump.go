package bffvm

// matchBrackets resolves every [ to its matching ] and back, in one
// left-to-right scan over the instruction sequence. The stack holds the
// program indices of currently open brackets, so transient space is bounded
// by the nesting depth. Non-bracket positions get -1.
func (p *Program) matchBrackets() error {
	jumps := make([]int, len(p.Ops))
	for i := range jumps {
		jumps[i] = -1
	}

	var stack []int
	for i, op := range p.Ops {
		switch op {
		case OpLoopOpen:
			stack = append(stack, i)
		case OpLoopClose:
			if len(stack) == 0 {
				return &UnbalancedBracketsError{
					Index:  i,
					Offset: p.Offsets[i],
				}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}

	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return &UnbalancedBracketsError{
			Index:  open,
			Offset: p.Offsets[open],
		}
	}

	p.Jumps = jumps
	return nil
}
