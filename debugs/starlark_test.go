package debugs

import (
	"errors"
	"testing"
	"time"

	"github.com/reusee/motorbike/behaviors"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type snapshot struct {
		Running bool
		Speed   int
		Ride    behaviors.Ride
		hidden  int
	}

	ptr := &snapshot{
		Running: true,
		Speed:   42,
		Ride:    behaviors.RideAggressive,
		hidden:  1,
	}

	snapshotDict := func() starlark.Value {
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("Running"), starlark.True)
		d.SetKey(starlark.String("Speed"), starlark.MakeInt(42))
		d.SetKey(starlark.String("Ride"), starlark.String("aggressive"))
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "motorcycle_log.txt", starlark.String("motorcycle_log.txt")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(42), starlark.MakeInt64(42)},
		{"uint8", uint8(42), starlark.MakeUint(42)},
		{"float64", 3.5, starlark.Float(3.5)},
		{"stringer", behaviors.StopEmergency, starlark.String("emergency")},
		{"error", errors.New("disk full"), starlark.String("disk full")},
		{"time", time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC), starlark.String("2024-03-09 07:05:01")},
		{"starlark value", starlark.MakeInt(7), starlark.MakeInt(7)},
		{"[]any", []any{1, "a", true}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a"), starlark.True})},
		{"[]int", []int{20, 120}, starlark.NewList([]starlark.Value{starlark.MakeInt(20), starlark.MakeInt(120)})},
		{"map[string]any", map[string]any{"speed": 0}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("speed"), starlark.MakeInt(0))
			return d
		}()},
		{"map[int]bool", map[int]bool{1: true}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.MakeInt(1), starlark.True)
			return d
		}()},
		{"struct", *ptr, snapshotDict()},
		{"pointer to struct", ptr, snapshotDict()},
		{"pointer to pointer", &ptr, snapshotDict()},
		{"nil pointer", (*snapshot)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := ToStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("ToStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		v := ToStarlarkValue(func() {})
		if _, ok := v.(starlark.Callable); !ok {
			t.Fatalf("got %T", v)
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("ToStarlarkValue did not panic on unsupported type")
			}
		}()
		ToStarlarkValue(make(chan bool))
	})
}
