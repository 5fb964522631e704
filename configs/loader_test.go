package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
machine?: {
	tapeSize?: int & >=0
	maxSteps?: int & >=0
}
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	path := writeConfig(t, `
str: "bar"
list: [1, 2, 3]
`)
	loader := NewLoader([]string{path}, testSchema)

	var str string
	if err := loader.AssignFirst("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	if err := loader.AssignFirst("list", &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0] != 1 || list[2] != 3 {
		t.Fatalf("got %v", list)
	}

	err := loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderSchemaViolation(t *testing.T) {
	path := writeConfig(t, `
machine: tapeSize: -1
`)
	loader := NewLoader([]string{path}, testSchema)
	var v int
	if err := loader.AssignFirst("machine.tapeSize", &v); err == nil {
		t.Fatal("should fail validation")
	}
}

func TestFirst(t *testing.T) {
	path := writeConfig(t, `
machine: {
	tapeSize: 2048
	maxSteps: 100
}
`)
	loader := NewLoader([]string{path}, testSchema)

	machine := First[Machine](loader, "machine")
	if machine.TapeSize != 2048 {
		t.Fatalf("got %+v", machine)
	}
	if machine.MaxSteps != 100 {
		t.Fatalf("got %+v", machine)
	}

	// absent path decodes to zero value
	missing := First[Machine](NewLoader(nil, testSchema), "machine")
	if missing.TapeSize != 0 {
		t.Fatalf("got %+v", missing)
	}
}

func TestAll(t *testing.T) {
	path1 := writeConfig(t, `str: "a"`)
	path2 := writeConfig(t, `str: "b"`)
	loader := NewLoader([]string{path1, path2}, testSchema)

	var got []string
	for v := range All[string](loader, "str") {
		got = append(got, v)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v", got)
	}
}
