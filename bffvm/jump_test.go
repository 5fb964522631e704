package bffvm

import (
	"errors"
	"testing"
)

func TestJumpTableSymmetry(t *testing.T) {
	for _, src := range []string{
		"[]",
		"[-]",
		"+[>[-]<[]]",
		"[[[]]][][[]]",
		"+++[>+++[>+<-]<-]",
	} {
		program, err := Compile([]byte(src), false)
		if err != nil {
			t.Fatal(err)
		}
		for i, op := range program.Ops {
			switch op {
			case OpLoopOpen, OpLoopClose:
				j := program.Jumps[i]
				if j < 0 {
					t.Fatalf("%s: bracket %d has no match", src, i)
				}
				if program.Jumps[j] != i {
					t.Fatalf("%s: jumps[jumps[%d]] == %d", src, i, program.Jumps[j])
				}
			default:
				if program.Jumps[i] != -1 {
					t.Fatalf("%s: non-bracket %d has jump", src, i)
				}
			}
		}
	}
}

func TestUnmatchedClose(t *testing.T) {
	_, err := Compile([]byte("+]"), false)
	var unbalanced *UnbalancedBracketsError
	if !errors.As(err, &unbalanced) {
		t.Fatalf("got %v", err)
	}
	if unbalanced.Index != 1 || unbalanced.Offset != 1 {
		t.Fatalf("got %+v", unbalanced)
	}
}

func TestUnmatchedOpen(t *testing.T) {
	_, err := Compile([]byte("[[]"), false)
	var unbalanced *UnbalancedBracketsError
	if !errors.As(err, &unbalanced) {
		t.Fatalf("got %v", err)
	}
	if unbalanced.Index != 0 {
		t.Fatalf("got %+v", unbalanced)
	}
}

func TestUnbalancedFailsBeforeExecution(t *testing.T) {
	// compilation is the only way to obtain a program, so no machine exists
	// and no tape cell can have been touched when matching fails
	program, err := Compile([]byte("+++]"), false)
	if program != nil || err == nil {
		t.Fatal("should not produce a runnable program")
	}
}
