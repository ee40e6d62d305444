package motoconfigs

import (
	"fmt"

	"github.com/reusee/motorbike/behaviors"
	"github.com/reusee/motorbike/cmds"
	"github.com/reusee/motorbike/configs"
	"github.com/reusee/motorbike/logs"
	"github.com/reusee/motorbike/vars"
)

// Behaviors is the set a motorcycle is fitted with at startup.
type Behaviors struct {
	Start behaviors.Start
	Ride  behaviors.Ride
	Stop  behaviors.Stop
}

var DefaultBehaviors = Behaviors{
	Start: behaviors.StartKey,
	Ride:  behaviors.RideEco,
	Stop:  behaviors.StopNormal,
}

var (
	startFlag = cmds.Var[string]("-start", "initial start behavior: key, silent")
	rideFlag  = cmds.Var[string]("-ride", "initial ride behavior: eco, aggressive")
	stopFlag  = cmds.Var[string]("-stop", "initial stop behavior: normal, emergency")
)

// GetBehaviors resolves initial behaviors: process arguments, then config files, then defaults.
type GetBehaviors func() (Behaviors, error)

func (Module) GetBehaviors(
	loader configs.Loader,
	logger logs.Logger,
) GetBehaviors {
	return func() (ret Behaviors, err error) {
		ret = DefaultBehaviors
		if err := loader.Check(); err != nil {
			return ret, err
		}
		defer func() {
			if err == nil {
				logger.Debug("behaviors",
					"start", ret.Start.String(),
					"ride", ret.Ride.String(),
					"stop", ret.Stop.String(),
				)
			}
		}()

		if name := vars.FirstNonZero(*startFlag, configs.First[string](loader, "start")); name != "" {
			ret.Start, err = behaviors.ParseStart(name)
			if err != nil {
				return ret, fmt.Errorf("start behavior: %w", err)
			}
		}

		if name := vars.FirstNonZero(*rideFlag, configs.First[string](loader, "ride")); name != "" {
			ret.Ride, err = behaviors.ParseRide(name)
			if err != nil {
				return ret, fmt.Errorf("ride behavior: %w", err)
			}
		}

		if name := vars.FirstNonZero(*stopFlag, configs.First[string](loader, "stop")); name != "" {
			ret.Stop, err = behaviors.ParseStop(name)
			if err != nil {
				return ret, fmt.Errorf("stop behavior: %w", err)
			}
		}

		return ret, nil
	}
}
