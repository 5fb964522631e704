package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		t *testing.T,
		mode Mode,
	) {
		if t != nil {
			t.Fatal()
		}
		if mode != ModeProduction {
			panic("wrong mode")
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		t *testing.T,
		mode Mode,
	) {
		if t == nil {
			panic("no T")
		}
		if mode != ModeDevelopment {
			t.Fatal()
		}
	})
}
