package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/motorbike/cmds"
	"github.com/reusee/motorbike/configs"
	"github.com/reusee/motorbike/consoles"
	"github.com/reusee/motorbike/logs"
	"github.com/reusee/motorbike/modes"
	"github.com/reusee/motorbike/scripts"
	"github.com/reusee/motorbike/vehicles"
)

func ce(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	// settings are read lazily by providers, surface file errors before any of them run
	scope.Call(func(
		loader configs.Loader,
	) {
		ce(loader.Check())
	})

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newVehicle vehicles.NewVehicle,
		newConsole consoles.NewConsole,
		openTerminal consoles.OpenTerminal,
		scriptPath scripts.ScriptPath,
		runScript scripts.RunScript,
	) {
		// Ctrl-C on piped input or during a script arrives as a signal
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		ctx, _ = newSpan(ctx, "")

		vehicle, err := newVehicle()
		ce(err)
		console := newConsole(vehicle)

		if scriptPath != "" {
			ce(logs.WrapSpan(ctx, runScript(ctx, console, string(scriptPath))))
			return
		}

		reader, err := openTerminal(ctx)
		ce(err)

		logger.DebugContext(ctx, "session start")
		err = console.Run(ctx, reader)
		// restores the terminal, before any exit
		reader.Close()
		ce(logs.WrapSpan(ctx, err))
		logger.DebugContext(ctx, "session end")
	})
}
