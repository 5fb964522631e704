package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "Yes", "y", "1"} {
		if !StrToBool(str) {
			t.Fatalf("%q should be true", str)
		}
	}
	for _, str := range []string{"false", "F", "no", "N", "0", "whatever"} {
		if StrToBool(str) {
			t.Fatalf("%q should be false", str)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero(0, 0, 3, 4); v != 3 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero("", "a"); v != "a" {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero[int](); v != 0 {
		t.Fatalf("got %v", v)
	}
}
