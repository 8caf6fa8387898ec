package lexconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tailex/cmds"
	"github.com/reusee/tailex/configs"
	"github.com/reusee/tailex/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Var[string]("config", "config file path")

var configFileNames = []string{
	"tailex.cue",
	".tailex.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	if *configFlag != "" {
		logger.Info("config file", "paths", []string{*configFlag})
		return configs.NewLoader([]string{*configFlag}, schema)
	}

	paths := findConfigFiles(searchDirs())
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}

// searchDirs lists config directories, most specific first.
func searchDirs() (ret []string) {
	if dir, err := os.Getwd(); err == nil {
		ret = append(ret, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, dir)
	}
	ret = append(ret, "/etc")
	return
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range configFileNames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
