package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "2",
	}); err != nil {
		t.Fatal(err)
	}
	if bar != 1 {
		t.Fatal()
	}
	if baz != 2 {
		t.Fatal()
	}
}

func TestOptionalArg(t *testing.T) {
	executor := NewExecutor()
	var got string
	executor.Define("greet", Func(func(name *string) {
		if name == nil || *name == "" {
			got = "hello"
		} else {
			got = "hello " + *name
		}
	}))

	if err := executor.Execute([]string{"greet"}); err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Fatalf("got %q", got)
	}

	if err := executor.Execute([]string{"greet", "world"}); err != nil {
		t.Fatal(err)
	}
	if got != "hello world" {
		t.Fatalf("got %q", got)
	}
}

func TestErrorReturn(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return errFail
	}))
	if err := executor.Execute([]string{"fail"}); err != errFail {
		t.Fatalf("got %v", err)
	}
}

var errFail = &testError{}

type testError struct{}

func (*testError) Error() string { return "fail" }
