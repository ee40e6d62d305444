package cmds

import (
	"slices"
	"testing"
)

type logFile string

func TestVar(t *testing.T) {
	start := Var[string]("-start", "initial start behavior")
	logPath := Var[logFile]("-log-file")
	GlobalExecutor.MustExecute([]string{
		"-start", "silent",
		"-log-file", "ride.log",
	})
	if *start != "silent" {
		t.Fatalf("got %q", *start)
	}
	if *logPath != "ride.log" {
		t.Fatalf("got %q", *logPath)
	}
	if desc := GlobalExecutor.commands["-start"].Description; desc != "initial start behavior" {
		t.Fatalf("got %q", desc)
	}
	if !GlobalExecutor.commands["-start."].Hidden {
		t.Fatal("reset should be hidden")
	}

	GlobalExecutor.MustExecute([]string{"-start."})
	if *start != "" {
		t.Fatalf("got %q", *start)
	}
	if *logPath != "ride.log" {
		t.Fatalf("got %q", *logPath)
	}
}

func TestSwitch(t *testing.T) {
	plain := Switch("-plain")
	GlobalExecutor.MustExecute([]string{"-plain"})
	if !*plain {
		t.Fatal("should be enabled")
	}
	GlobalExecutor.MustExecute([]string{"!-plain"})
	if *plain {
		t.Fatal("should be disabled")
	}
}

func TestCollect(t *testing.T) {
	configs := Collect[string]("-config")
	GlobalExecutor.MustExecute([]string{
		"-config", "sport.cue",
		"-config", "touring.cue",
	})
	if !slices.Equal(*configs, []string{"sport.cue", "touring.cue"}) {
		t.Fatalf("got %v", *configs)
	}
	GlobalExecutor.MustExecute([]string{"-config."})
	if len(*configs) != 0 {
		t.Fatalf("got %v", *configs)
	}
}
