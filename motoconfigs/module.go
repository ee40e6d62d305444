package motoconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/motorbike/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
