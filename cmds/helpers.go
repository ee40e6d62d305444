package cmds

import "fmt"

// Var defines `name value` to set and `name.` to reset a process argument.
func Var[T any](name string, desc ...string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(description(desc, fmt.Sprintf("set %s", name))))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Hide())

	return &value
}

// Switch defines `name` to enable and `!name` to disable a process argument.
func Switch(name string, desc ...string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(description(desc, fmt.Sprintf("enable %s", name))))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Hide())

	return &value
}

// Collect defines `name value`, repeatable, and `name.` to clear the list.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T

	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(description(desc, fmt.Sprintf("add to %s", name))))

	// clear
	Define(name+".", Func(func() {
		value = nil
	}).Hide())

	return &value
}

func description(desc []string, fallback string) string {
	if len(desc) > 0 {
		return desc[0]
	}
	return fallback
}
