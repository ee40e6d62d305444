package consoles

import (
	"strings"

	"github.com/reusee/motorbike/behaviors"
	"github.com/reusee/motorbike/cmds"
)

func (c *Console) defineCommands() {
	e := c.executor

	e.Define("start", cmds.Func(func() {
		c.report(c.vehicle.Start())
	}).Desc("start the engine"))

	e.Define("ride", cmds.Func(func() {
		c.report(c.vehicle.Ride())
	}).Desc("ride at a random speed"))

	e.Define("speed", cmds.Func(func() {
		res := c.vehicle.MeasureSpeed()
		if res.Running {
			c.printf(MsgSpeed, res.Speed)
		} else {
			c.println(MsgOff)
		}
	}).Desc("show the current speed"))

	e.Define("stop", cmds.Func(func() {
		c.report(c.vehicle.Stop())
	}).Desc("stop the engine"))

	e.Define("change", cmds.Func(func(style *string) {
		c.println(MsgChangeHeader)
		c.ask(*style, PromptStyle, c.changeStyle)
	}).Desc("change riding style: eco, aggressive"))

	e.Define("start-mode", cmds.Func(func(mode *string) {
		c.ask(*mode, PromptStartMode, c.changeStartMode)
	}).Desc("change start mode: " + strings.Join(behaviors.StartNames(), ", ")))

	e.Define("stop-mode", cmds.Func(func(mode *string) {
		c.ask(*mode, PromptStopMode, c.changeStopMode)
	}).Desc("change stop mode: " + strings.Join(behaviors.StopNames(), ", ")))

	e.Define("status", cmds.Func(func() {
		s := c.vehicle.Snapshot()
		engine := "off"
		if s.Running {
			engine = "on"
		}
		c.printf(MsgStatus, engine, s.Speed, s.Start, s.Ride, s.Stop)
	}).Desc("show engine state and fitted behaviors"))

	e.Define("help", cmds.Func(func() {
		e.PrintUsage()
	}).Desc("list commands"))

	e.Define("tap", cmds.Func(func() {
		if c.tap == nil {
			c.println(MsgUnknownCommand)
			return
		}
		s := c.vehicle.Snapshot()
		c.tap(c.ctx, "console", map[string]any{
			"vehicle":  s,
			"running":  s.Running,
			"speed":    s.Speed,
			"log_file": c.logFile,
		})
	}).Hide())

	e.Define("quit", cmds.Func(func() error {
		c.println(MsgQuit)
		c.report(c.vehicle.Record(RecordQuit))
		return errQuit
	}).Desc("record the end of the game and exit"))
}

// ask answers with choice when given on the command line, or defers to a prompt.
func (c *Console) ask(choice string, prompt string, answer func(string)) {
	if choice != "" {
		answer(choice)
		return
	}
	c.pending = &question{
		prompt: prompt,
		answer: answer,
	}
}

func (c *Console) changeStyle(choice string) {
	choice = strings.ToLower(strings.TrimSpace(choice))
	ride, err := behaviors.ParseRide(choice)
	// aliases are not offered at this prompt
	if err != nil || ride.String() != choice {
		c.println(MsgUnknownStyle)
		return
	}
	res := c.vehicle.SetRideBehavior(ride)
	c.printf(MsgStyleSet, ride.Label())
	c.report(res)
}

func (c *Console) changeStartMode(choice string) {
	start, err := behaviors.ParseStart(choice)
	if err != nil {
		c.println(MsgUnknownMode)
		return
	}
	res := c.vehicle.SetStartBehavior(start)
	c.printf(MsgStartModeSet, start.Label())
	c.report(res)
}

func (c *Console) changeStopMode(choice string) {
	stop, err := behaviors.ParseStop(choice)
	if err != nil {
		c.println(MsgUnknownMode)
		return
	}
	res := c.vehicle.SetStopBehavior(stop)
	c.printf(MsgStopModeSet, stop.Label())
	c.report(res)
}

