// Package vehicles implements the motorcycle: a two state machine (stopped,
// running) whose start, ride and stop actions are swappable behaviors.
package vehicles

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/reusee/motorbike/behaviors"
)

const (
	MinRideSpeed = 20
	MaxRideSpeed = 120
)

type Recorder interface {
	Record(message string) error
}

// SpeedSource returns an integer in [min, max].
type SpeedSource func(min, max int) int

func UniformSpeed(min, max int) int {
	return min + rand.IntN(max-min+1)
}

type Vehicle struct {
	running bool
	speed   int

	start behaviors.Start
	ride  behaviors.Ride
	stop  behaviors.Stop

	out         io.Writer
	recorder    Recorder
	speedSource SpeedSource
	logger      *slog.Logger
}

type Option func(*Vehicle)

func WithBehaviors(start behaviors.Start, ride behaviors.Ride, stop behaviors.Stop) Option {
	return func(v *Vehicle) {
		v.start = start
		v.ride = ride
		v.stop = stop
	}
}

func WithSpeedSource(source SpeedSource) Option {
	return func(v *Vehicle) {
		v.speedSource = source
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(v *Vehicle) {
		v.logger = logger
	}
}

// New returns a stopped vehicle fitted with key start, eco ride and normal stop
// unless options say otherwise. Behaviors print to out.
func New(out io.Writer, recorder Recorder, options ...Option) *Vehicle {
	v := &Vehicle{
		start:       behaviors.StartKey,
		ride:        behaviors.RideEco,
		stop:        behaviors.StopNormal,
		out:         out,
		recorder:    recorder,
		speedSource: UniformSpeed,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(v)
	}
	return v
}

func (v *Vehicle) Running() bool {
	return v.running
}

func (v *Vehicle) Speed() int {
	return v.speed
}

func (v *Vehicle) result(op Op, outcome Outcome) Result {
	return Result{
		Op:      op,
		Outcome: outcome,
		Running: v.running,
		Speed:   v.speed,
	}
}

// guard turns a panic inside an operation into a failed result, putting back
// the running flag and speed the operation started from.
func (v *Vehicle) guard(res *Result, running bool, speed int) {
	p := recover()
	if p == nil {
		return
	}
	v.running = running
	v.speed = speed
	err, ok := p.(error)
	if !ok {
		err = fmt.Errorf("%v", p)
	}
	v.logger.Error("operation panicked", "op", res.Op, "error", err)
	*res = v.result(res.Op, BehaviorFailed)
	res.Err = err
}

func (v *Vehicle) failed(op Op, err error) Result {
	v.logger.Warn("behavior failed", "op", op, "error", err)
	res := v.result(op, BehaviorFailed)
	res.Err = err
	return res
}

func (v *Vehicle) record(res *Result, message string) {
	if err := v.recorder.Record(message); err != nil {
		v.logger.Warn("record failed", "op", res.Op, "error", err)
		res.LogErr = err
	}
}

// Start runs the start behavior and, if it succeeds, puts the vehicle in the
// running state at speed 0. Valid in any state.
func (v *Vehicle) Start() (res Result) {
	res.Op = OpStart
	defer v.guard(&res, v.running, v.speed)

	if err := v.start.Run(v.out); err != nil {
		return v.failed(OpStart, err)
	}
	v.running = true
	v.speed = 0

	res = v.result(OpStart, Done)
	v.record(&res, "Motorcycle started")
	return res
}

// Ride draws a speed in [MinRideSpeed, MaxRideSpeed] and rides at it. Rejected when stopped.
func (v *Vehicle) Ride() (res Result) {
	res.Op = OpRide
	defer v.guard(&res, v.running, v.speed)

	if !v.running {
		return v.result(OpRide, Rejected)
	}

	speed := v.speedSource(MinRideSpeed, MaxRideSpeed)
	if speed < MinRideSpeed || speed > MaxRideSpeed {
		return v.failed(OpRide, fmt.Errorf("speed %d out of range [%d, %d]", speed, MinRideSpeed, MaxRideSpeed))
	}
	if err := v.ride.Run(v.out, speed); err != nil {
		return v.failed(OpRide, err)
	}
	v.speed = speed

	res = v.result(OpRide, Done)
	v.record(&res, fmt.Sprintf("Riding at %d km/h", speed))
	return res
}

// Stop runs the stop behavior and brings the vehicle to the stopped state. Rejected when stopped.
func (v *Vehicle) Stop() (res Result) {
	res.Op = OpStop
	defer v.guard(&res, v.running, v.speed)

	if !v.running {
		return v.result(OpStop, Rejected)
	}

	if err := v.stop.Run(v.out); err != nil {
		return v.failed(OpStop, err)
	}
	var logErr error
	if err := v.recorder.Record("Motorcycle stopped"); err != nil {
		v.logger.Warn("record failed", "op", OpStop, "error", err)
		logErr = err
	}
	v.running = false
	v.speed = 0

	res = v.result(OpStop, Done)
	res.LogErr = logErr
	return res
}

// MeasureSpeed reports the current speed, 0 when stopped. It changes nothing.
func (v *Vehicle) MeasureSpeed() Result {
	res := v.result(OpMeasureSpeed, Done)
	if !v.running {
		res.Speed = 0
	}
	return res
}

func (v *Vehicle) SetStartBehavior(b behaviors.Start) Result {
	v.start = b
	res := v.result(OpSetStart, Done)
	v.record(&res, "Changed start behavior")
	return res
}

func (v *Vehicle) SetRideBehavior(b behaviors.Ride) Result {
	v.ride = b
	res := v.result(OpSetRide, Done)
	v.record(&res, "Changed ride behavior")
	return res
}

func (v *Vehicle) SetStopBehavior(b behaviors.Stop) Result {
	v.stop = b
	res := v.result(OpSetStop, Done)
	v.record(&res, "Changed stop behavior")
	return res
}

// Record appends message to the action log without touching state.
func (v *Vehicle) Record(message string) Result {
	res := v.result(OpRecord, Done)
	v.record(&res, message)
	return res
}

type Snapshot struct {
	Running bool
	Speed   int
	Start   string
	Ride    string
	Stop    string
}

func (v *Vehicle) Snapshot() Snapshot {
	return Snapshot{
		Running: v.running,
		Speed:   v.speed,
		Start:   v.start.String(),
		Ride:    v.ride.String(),
		Stop:    v.stop.String(),
	}
}

func (v *Vehicle) Behaviors() (behaviors.Start, behaviors.Ride, behaviors.Stop) {
	return v.start, v.ride, v.stop
}
