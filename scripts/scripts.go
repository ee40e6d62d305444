// Package scripts drives a console from a Starlark file instead of a terminal.
package scripts

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/motorbike/cmds"
	"github.com/reusee/motorbike/consoles"
	"github.com/reusee/motorbike/debugs"
	"github.com/reusee/motorbike/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

var scriptFlag = cmds.Var[string]("-script", "run commands from a Starlark file instead of the terminal")

// ScriptPath is the script to run, empty for an interactive session.
type ScriptPath string

func (Module) ScriptPath() ScriptPath {
	return ScriptPath(*scriptFlag)
}

// RunScript executes the file at path against console.
type RunScript func(ctx context.Context, console *consoles.Console, path string) error

func (Module) RunScript(
	logger logs.Logger,
) RunScript {
	return func(ctx context.Context, console *consoles.Console, path string) error {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "run script", "path", path)
		return Exec(ctx, console, path, src)
	}
}

// Exec runs src. The script stops early, without error, when it quits or ctx is done.
func Exec(ctx context.Context, console *consoles.Console, filename string, src []byte) error {
	quitted := false

	command := func(line string) {
		if quitted {
			return
		}
		if console.Exec(ctx, line) {
			quitted = true
		}
	}

	simple := func(name string) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			command(name)
			return starlark.None, nil
		})
	}

	withArg := func(name string, prefix string, param string) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var arg string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, param, &arg); err != nil {
				return nil, err
			}
			command(prefix + arg)
			return starlark.None, nil
		})
	}

	predeclared := starlark.StringDict{
		"start":      simple("start"),
		"ride":       simple("ride"),
		"speed":      simple("speed"),
		"stop":       simple("stop"),
		"quit":       simple("quit"),
		"change":     withArg("change", "change ", "style"),
		"start_mode": withArg("start_mode", "start-mode ", "mode"),
		"stop_mode":  withArg("stop_mode", "stop-mode ", "mode"),
		"command":    withArg("command", "", "line"),
		"status": starlark.NewBuiltin("status", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return debugs.ToStarlarkValue(console.Vehicle().Snapshot()), nil
		}),
	}

	thread := &starlark.Thread{
		Name: "script " + filename,
		Print: func(thread *starlark.Thread, msg string) {
			fmt.Fprintln(console.Output(), msg)
		},
	}

	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(ctx.Err().Error())
	})
	defer stop()

	_, err := starlark.ExecFileOptions(&syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
	}, thread, filename, src, predeclared)
	if err != nil && ctx.Err() != nil {
		fmt.Fprintln(console.Output(), consoles.MsgInterrupted)
		return nil
	}
	return err
}
