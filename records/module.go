package records

import (
	"github.com/reusee/dscope"
	"github.com/reusee/motorbike/logs"
	"github.com/reusee/motorbike/motoconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs motoconfigs.Module
}

func (Module) Recorder(
	path motoconfigs.LogFile,
	logger logs.Logger,
) *Recorder {
	return NewRecorder(string(path), logger)
}
