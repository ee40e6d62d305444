package motoconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/motorbike/cmds"
	"github.com/reusee/motorbike/configs"
	"github.com/reusee/motorbike/logs"
)

//go:embed schema.cue
var schema string

var configFlags = cmds.Collect[string]("-config", "read settings from this CUE file first, repeatable, earlier wins")

// SearchPaths lists config files in precedence order: explicit files, working
// directory, user config dir, /etc.
type SearchPaths []string

var filenames = []string{
	"motorbike.cue",
	".motorbike.cue",
}

func (Module) SearchPaths() SearchPaths {
	var paths []string

	paths = append(paths, *configFlags...)

	exists := func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			if exists(path) {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, filename)
			if exists(path) {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if exists(path) {
			paths = append(paths, path)
		}
	}

	return paths
}

func (Module) ConfigsLoader(
	paths SearchPaths,
	logger logs.Logger,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}
