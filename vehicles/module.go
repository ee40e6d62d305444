package vehicles

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/motorbike/logs"
	"github.com/reusee/motorbike/motoconfigs"
	"github.com/reusee/motorbike/records"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs motoconfigs.Module
	Records records.Module
}

// Output is where behaviors and the console print for the player.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

// NewVehicle builds the motorcycle with configured initial behaviors.
type NewVehicle func(options ...Option) (*Vehicle, error)

func (Module) NewVehicle(
	out Output,
	recorder *records.Recorder,
	getBehaviors motoconfigs.GetBehaviors,
	logger logs.Logger,
) NewVehicle {
	return func(options ...Option) (*Vehicle, error) {
		b, err := getBehaviors()
		if err != nil {
			return nil, err
		}
		options = append([]Option{
			WithBehaviors(b.Start, b.Ride, b.Stop),
			WithLogger(logger.With("component", "vehicle")),
		}, options...)
		return New(out, recorder, options...), nil
	}
}
