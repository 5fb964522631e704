package bffvm

import (
	"errors"
	"testing"
)

func TestCompile(t *testing.T) {
	program, err := Compile([]byte("+++ move right > then loop [-]"), false)
	if err != nil {
		t.Fatal(err)
	}
	want := "+++>[-]"
	if len(program.Ops) != len(want) {
		t.Fatalf("got %d instructions", len(program.Ops))
	}
	for i := range want {
		if program.Ops[i] != Op(want[i]) {
			t.Fatalf("instruction %d: got %s", i, program.Ops[i])
		}
	}
}

func TestCompileOffsets(t *testing.T) {
	program, err := Compile([]byte("a+b-"), false)
	if err != nil {
		t.Fatal(err)
	}
	if program.Offsets[0] != 1 {
		t.Fatalf("got %d", program.Offsets[0])
	}
	if program.Offsets[1] != 3 {
		t.Fatalf("got %d", program.Offsets[1])
	}
}

func TestCompileStrict(t *testing.T) {
	// whitespace is always skippable
	if _, err := Compile([]byte("+ -\n\t<"), true); err != nil {
		t.Fatal(err)
	}

	_, err := Compile([]byte("++x--"), true)
	var invalid *InvalidInstructionError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v", err)
	}
	if invalid.Offset != 2 || invalid.Symbol != 'x' {
		t.Fatalf("got %+v", invalid)
	}
}

func TestCompileEmpty(t *testing.T) {
	program, err := Compile(nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(program.Ops) != 0 {
		t.Fatal()
	}

	vm := NewVM(program)
	if !vm.Halted() {
		t.Fatal("empty program should halt immediately")
	}
	for _, err := range vm.Run {
		t.Fatal(err)
	}
	if vm.Steps != 0 {
		t.Fatal()
	}
	if _, _, ok := vm.Tape.Extent(); ok {
		t.Fatal("tape should be untouched")
	}
}
