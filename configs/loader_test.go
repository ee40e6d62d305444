package configs

import (
	"errors"
	"testing"
)

var testSchema = `
log_file?: string
ride?: "eco" | "aggressive"
stop?: "normal" | "emergency"
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var str string
	err := loader.AssignFirst("log_file", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bike.log" {
		t.Fatalf("got %q", str)
	}

	err = loader.AssignFirst("stop", &str)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderPrecedence(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	if str := First[string](loader, "log_file"); str != "bike.log" {
		t.Fatalf("got %q", str)
	}
	// only defined in the second file
	if str := First[string](loader, "stop"); str != "emergency" {
		t.Fatalf("got %q", str)
	}
	if str := First[string](loader, "not"); str != "" {
		t.Fatalf("got %q", str)
	}
	if paths := loader.Paths(); len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	if err := loader.Check(); err == nil {
		t.Fatal("should error")
	}
	var str string
	err := loader.AssignFirst("log_file", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestSchemaRejectsValue(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/wrong_type.cue",
	}, testSchema)
	if err := loader.Check(); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/missing.cue",
	}, testSchema)
	if err := loader.Check(); err == nil {
		t.Fatal("should error")
	}
}

func TestZeroLoader(t *testing.T) {
	var loader Loader
	if err := loader.Check(); err != nil {
		t.Fatal(err)
	}
	if str := First[string](loader, "log_file"); str != "" {
		t.Fatalf("got %q", str)
	}
}
