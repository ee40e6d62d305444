package scripts

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/motorbike/consoles"
	"github.com/reusee/motorbike/modes"
	"github.com/reusee/motorbike/records"
	"github.com/reusee/motorbike/vehicles"
)

func newTestConsole(t *testing.T) (*consoles.Console, *bytes.Buffer, string) {
	path := filepath.Join(t.TempDir(), "motorcycle_log.txt")
	out := new(bytes.Buffer)
	v := vehicles.New(
		out,
		records.NewRecorder(path, nil),
		vehicles.WithSpeedSource(func(min, max int) int {
			return 64
		}),
	)
	return consoles.New(v, out, slog.New(slog.DiscardHandler), nil, path), out, path
}

func messages(t *testing.T, path string) []string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var ret []string
	for _, line := range strings.Split(strings.TrimSuffix(string(content), "\n"), "\n") {
		_, msg, ok := strings.Cut(line, "] ")
		if !ok {
			t.Fatalf("bad record %q", line)
		}
		ret = append(ret, msg)
	}
	return ret
}

func TestExec(t *testing.T) {
	console, out, path := newTestConsole(t)
	err := Exec(context.Background(), console, "ride.star", []byte(`
start()
ride()
speed()
stop()
quit()
start()
`))
	if err != nil {
		t.Fatal(err)
	}

	got := strings.Join(messages(t, path), "|")
	if got != "Motorcycle started|Riding at 64 km/h|Motorcycle stopped|Game ended by user." {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "📏 Current speed: 64 km/h") {
		t.Fatalf("got %q", out.String())
	}
	if console.Vehicle().Running() {
		t.Fatal("commands after quit must not run")
	}
}

func TestChangeAndStatus(t *testing.T) {
	console, out, _ := newTestConsole(t)
	err := Exec(context.Background(), console, "status.star", []byte(`
change("aggressive")
start_mode("silent")
stop_mode("emergency")
command("start")
command("ride")
s = status()
print("running", s["Running"], s["Speed"], s["Ride"])
for i in range(2):
    stop()
`))
	if err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, line := range []string{
		"✅ Riding style set to: Aggressive.",
		"🔇 The motorcycle starts silently.",
		"🏍️ Zooming ahead at 64 km/h!",
		"running True 64 aggressive",
		"⚠️ Emergency braking!",
		"⚠️ The motorcycle is already stopped.",
	} {
		if !strings.Contains(s, line) {
			t.Fatalf("%q not in %q", line, s)
		}
	}
}

func TestCommandTakesOneLine(t *testing.T) {
	console, out, _ := newTestConsole(t)
	err := Exec(context.Background(), console, "line.star", []byte(`command("start ride")`))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), consoles.MsgUnknownCommand) {
		t.Fatalf("got %q", out.String())
	}
	if console.Vehicle().Running() {
		t.Fatal("should stay stopped")
	}
}

func TestInterrupt(t *testing.T) {
	console, out, _ := newTestConsole(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Exec(ctx, console, "loop.star", []byte(`
start()
while True:
    pass
`))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), consoles.MsgInterrupted+"\n") {
		t.Fatalf("got %q", out.String())
	}
}

func TestBadArguments(t *testing.T) {
	console, _, _ := newTestConsole(t)
	err := Exec(context.Background(), console, "bad.star", []byte(`start(1)`))
	if err == nil {
		t.Fatal("should fail")
	}
	if !strings.Contains(err.Error(), "start") {
		t.Fatalf("got %v", err)
	}
	if console.Vehicle().Running() {
		t.Fatal("should not start")
	}

	err = Exec(context.Background(), console, "bad.star", []byte(`change()`))
	if err == nil {
		t.Fatal("should fail")
	}
}

func TestRunScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "session.star")
	if err := os.WriteFile(script, []byte("start()\nquit()\n"), 0644); err != nil {
		t.Fatal(err)
	}
	console, _, path := newTestConsole(t)

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		runScript RunScript,
		scriptPath ScriptPath,
	) {
		if scriptPath != "" {
			t.Fatalf("got %q", scriptPath)
		}
		if err := runScript(t.Context(), console, script); err != nil {
			t.Fatal(err)
		}
		if err := runScript(t.Context(), console, filepath.Join(dir, "missing.star")); !os.IsNotExist(err) {
			t.Fatalf("got %v", err)
		}
	})

	got := strings.Join(messages(t, path), "|")
	if got != "Motorcycle started|Game ended by user." {
		t.Fatalf("got %q", got)
	}
}
