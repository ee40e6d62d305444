// Package behaviors holds the closed sets of start, ride and stop actions a
// motorcycle can be fitted with. Every action only writes a line to its writer.
package behaviors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrUnknownBehavior = errors.New("unknown behavior")

type Start int

const (
	StartKey Start = iota
	StartSilent
)

type Ride int

const (
	RideEco Ride = iota
	RideAggressive
)

type Stop int

const (
	StopNormal Stop = iota
	StopEmergency
)

type variant struct {
	name    string
	aliases []string
	label   string
}

var startVariants = map[Start]variant{
	StartKey:    {name: "key", aliases: []string{"default"}, label: "Key"},
	StartSilent: {name: "silent", label: "Silent"},
}

var rideVariants = map[Ride]variant{
	RideEco:        {name: "eco", aliases: []string{"economical"}, label: "Eco"},
	RideAggressive: {name: "aggressive", label: "Aggressive"},
}

var stopVariants = map[Stop]variant{
	StopNormal:    {name: "normal", label: "Normal"},
	StopEmergency: {name: "emergency", label: "Emergency"},
}

func (s Start) Run(w io.Writer) error {
	var err error
	switch s {
	case StartKey:
		_, err = fmt.Fprintln(w, "🔑 The motorcycle starts with a key.")
	case StartSilent:
		_, err = fmt.Fprintln(w, "🔇 The motorcycle starts silently.")
	default:
		return fmt.Errorf("%w: start %d", ErrUnknownBehavior, int(s))
	}
	return err
}

func (r Ride) Run(w io.Writer, speed int) error {
	var err error
	switch r {
	case RideEco:
		_, err = fmt.Fprintf(w, "🛵 Riding economically at %d km/h.\n", speed)
	case RideAggressive:
		_, err = fmt.Fprintf(w, "🏍️ Zooming ahead at %d km/h!\n", speed)
	default:
		return fmt.Errorf("%w: ride %d", ErrUnknownBehavior, int(r))
	}
	return err
}

func (s Stop) Run(w io.Writer) error {
	var err error
	switch s {
	case StopNormal:
		_, err = fmt.Fprintln(w, "🛑 The motorcycle comes to a smooth stop.")
	case StopEmergency:
		_, err = fmt.Fprintln(w, "⚠️ Emergency braking!")
	default:
		return fmt.Errorf("%w: stop %d", ErrUnknownBehavior, int(s))
	}
	return err
}

func (s Start) String() string { return nameOf(startVariants, s, "start") }
func (r Ride) String() string  { return nameOf(rideVariants, r, "ride") }
func (s Stop) String() string  { return nameOf(stopVariants, s, "stop") }

func (s Start) Label() string { return startVariants[s].label }
func (r Ride) Label() string  { return rideVariants[r].label }
func (s Stop) Label() string  { return stopVariants[s].label }

func ParseStart(name string) (Start, error) { return parse(startVariants, "start", name) }
func ParseRide(name string) (Ride, error)   { return parse(rideVariants, "ride", name) }
func ParseStop(name string) (Stop, error)   { return parse(stopVariants, "stop", name) }

// StartNames, RideNames and StopNames list canonical names in declaration order.
func StartNames() []string { return names(startVariants) }
func RideNames() []string  { return names(rideVariants) }
func StopNames() []string  { return names(stopVariants) }

func nameOf[T ~int](variants map[T]variant, v T, phase string) string {
	if info, ok := variants[v]; ok {
		return info.name
	}
	return fmt.Sprintf("%s(%d)", phase, int(v))
}

func parse[T ~int](variants map[T]variant, phase string, name string) (T, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, info := range variants {
		if info.name == name {
			return v, nil
		}
		for _, alias := range info.aliases {
			if alias == name {
				return v, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownBehavior, phase, name)
}

func names[T ~int](variants map[T]variant) []string {
	ret := make([]string, len(variants))
	for v, info := range variants {
		ret[v] = info.name
	}
	return ret
}
