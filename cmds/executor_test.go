package cmds

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewEmptyExecutor(io.Discard)

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
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}

}

func TestArity(t *testing.T) {
	executor := NewEmptyExecutor(io.Discard)
	executor.Define("start", Func(func() {}))
	executor.Define("change", Func(func(style *string) {}).Alias("style"))

	if !executor.Has("style") {
		t.Fatal("alias should be defined")
	}
	if executor.Has("fly") {
		t.Fatal("should not be defined")
	}
	if n := executor.Arity("start"); n != 0 {
		t.Fatalf("got %v", n)
	}
	if n := executor.Arity("change"); n != 1 {
		t.Fatalf("got %v", n)
	}
	if n := executor.Arity("fly"); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewEmptyExecutor(io.Discard)
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestCommandError(t *testing.T) {
	executor := NewEmptyExecutor(io.Discard)
	stop := errors.New("stop")
	var ran []string
	executor.Define("start", Func(func() error {
		ran = append(ran, "start")
		return nil
	}))
	executor.Define("quit", Func(func() error {
		ran = append(ran, "quit")
		return stop
	}))

	err := executor.Execute([]string{"start", "quit", "start"})
	if !errors.Is(err, stop) {
		t.Fatalf("got %v", err)
	}
	if str := strings.Join(ran, " "); str != "start quit" {
		t.Fatalf("got %s", str)
	}
}

func TestMissingArgument(t *testing.T) {
	executor := NewEmptyExecutor(io.Discard)
	executor.Define("mode", Func(func(name string) {}))
	err := executor.Execute([]string{"mode"})
	if err == nil || !strings.Contains(err.Error(), "mode: expecting argument") {
		t.Fatalf("got %v", err)
	}
}
