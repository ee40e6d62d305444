// Package consoles is the interactive command loop driving a motorcycle.
package consoles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/reusee/motorbike/cmds"
	"github.com/reusee/motorbike/debugs"
	"github.com/reusee/motorbike/vehicles"
)

var errQuit = errors.New("quit")

type Console struct {
	vehicle  *vehicles.Vehicle
	out      io.Writer
	logger   *slog.Logger
	executor *cmds.Executor
	tap      debugs.Tap
	logFile  string

	// set by commands needing a second line of input
	pending *question
	ctx     context.Context
}

type question struct {
	prompt string
	answer func(choice string)
}

func New(
	vehicle *vehicles.Vehicle,
	out io.Writer,
	logger *slog.Logger,
	tap debugs.Tap,
	logFile string,
) *Console {
	c := &Console{
		vehicle: vehicle,
		out:     out,
		logger:  logger,
		tap:     tap,
		logFile: logFile,
		ctx:     context.Background(),
	}
	c.executor = cmds.NewEmptyExecutor(out)
	c.defineCommands()
	return c
}

func (c *Console) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) Vehicle() *vehicles.Vehicle {
	return c.vehicle
}

// Exec runs one input line. A pending question is answered with an empty
// choice, since there is no one to ask. It reports whether the line quit.
func (c *Console) Exec(ctx context.Context, line string) (quit bool) {
	quit = c.exec(ctx, line)
	if q := c.pending; q != nil {
		c.pending = nil
		q.answer("")
	}
	return quit
}

func (c *Console) exec(ctx context.Context, line string) (quit bool) {
	line = strings.ToLower(strings.TrimSpace(line))
	c.ctx = ctx
	c.logger.DebugContext(ctx, "command", "line", line)

	defer func() {
		if p := recover(); p != nil {
			c.logger.ErrorContext(ctx, "command panicked", "line", line, "panic", p)
			c.printf(MsgUnexpected, p)
			c.pending = nil
			quit = false
		}
	}()

	args := strings.Fields(line)
	// one command per line, followed by at most its own arguments
	if len(args) == 0 || !c.executor.Has(args[0]) || len(args)-1 > c.executor.Arity(args[0]) {
		c.logger.DebugContext(ctx, "unknown command", "line", line)
		c.println(MsgUnknownCommand)
		return false
	}

	err := c.executor.Execute(args)
	switch {
	case err == nil:
	case errors.Is(err, errQuit):
		return true
	default:
		c.logger.WarnContext(ctx, "command failed", "line", line, "error", err)
		c.printf(MsgUnexpected, err)
	}
	return false
}

// report prints what the player needs to know about res beyond what the behavior printed.
func (c *Console) report(res vehicles.Result) {
	switch res.Outcome {
	case vehicles.Rejected:
		switch res.Op {
		case vehicles.OpRide:
			c.println(MsgNeedStart)
		case vehicles.OpStop:
			c.println(MsgAlreadyStopped)
		}
	case vehicles.BehaviorFailed:
		switch res.Op {
		case vehicles.OpStart:
			c.printf(MsgErrStarting, res.Err)
		case vehicles.OpRide:
			c.printf(MsgErrRiding, res.Err)
		case vehicles.OpStop:
			c.printf(MsgErrStopping, res.Err)
		default:
			c.printf(MsgUnexpected, res.Err)
		}
	}
	if res.LogErr != nil {
		c.printf(MsgLogFailed, res.LogErr)
	}
}

func (c *Console) Output() io.Writer {
	return c.out
}
