package consoles

import (
	"github.com/reusee/dscope"
	"github.com/reusee/motorbike/debugs"
	"github.com/reusee/motorbike/logs"
	"github.com/reusee/motorbike/motoconfigs"
	"github.com/reusee/motorbike/vehicles"
)

type Module struct {
	dscope.Module
	Logs     logs.Module
	Vehicles vehicles.Module
	Debugs   debugs.Module
}

type NewConsole func(vehicle *vehicles.Vehicle) *Console

func (Module) NewConsole(
	out vehicles.Output,
	logger logs.Logger,
	tap debugs.Tap,
	logFile motoconfigs.LogFile,
) NewConsole {
	return func(vehicle *vehicles.Vehicle) *Console {
		return New(
			vehicle,
			out,
			logger.With("component", "console"),
			tap,
			string(logFile),
		)
	}
}
