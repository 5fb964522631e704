package bffvm

import "unicode"

// Program is the compiled, read-only form of a source text: the instruction
// sequence, the source byte offset of each instruction, and the bracket jump
// table. Built once by Compile, never mutated afterwards.
type Program struct {
	Ops     []Op
	Offsets []int
	Jumps   []int
}

// Compile filters the source text down to the instruction sequence and
// resolves the bracket jump table. Non-instruction bytes are treated as
// comments and skipped; with strict set they are rejected instead, except
// for whitespace which is always skippable.
func Compile(src []byte, strict bool) (*Program, error) {
	program := &Program{
		Ops:     make([]Op, 0, len(src)),
		Offsets: make([]int, 0, len(src)),
	}

	for offset, b := range src {
		if IsOp(b) {
			program.Ops = append(program.Ops, Op(b))
			program.Offsets = append(program.Offsets, offset)
			continue
		}
		if strict && !unicode.IsSpace(rune(b)) {
			return nil, &InvalidInstructionError{
				Offset: offset,
				Symbol: b,
			}
		}
	}

	if err := program.matchBrackets(); err != nil {
		return nil, err
	}

	return program, nil
}
