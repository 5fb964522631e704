package bffvm

import "testing"

func BenchmarkDispatch(b *testing.B) {
	program, err := Compile([]byte("[-]"), false)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for range b.N {
		vm := NewVM(program)
		vm.Tape.Set(0, 255)
		for _, err := range vm.Run {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkStep(b *testing.B) {
	program, err := Compile([]byte("+[]"), false)
	if err != nil {
		b.Fatal(err)
	}
	vm := NewVM(program)

	b.ResetTimer()
	for range b.N {
		if _, err := vm.Step(); err != nil {
			b.Fatal(err)
		}
	}
}
