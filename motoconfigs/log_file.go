package motoconfigs

import (
	"github.com/reusee/motorbike/cmds"
	"github.com/reusee/motorbike/configs"
	"github.com/reusee/motorbike/vars"
)

// LogFile is the path of the action log.
type LogFile string

const DefaultLogFile = "motorcycle_log.txt"

var logFileFlag = cmds.Var[string]("-log-file", "append action records to this file")

func (Module) LogFile(
	loader configs.Loader,
) LogFile {
	return LogFile(vars.FirstNonZero(
		*logFileFlag,
		configs.First[string](loader, "log_file"),
		DefaultLogFile,
	))
}
