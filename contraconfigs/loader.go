package contraconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/contra/cmds"
	"github.com/reusee/contra/configs"
	"github.com/reusee/contra/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config", "use the cue config file; may be repeated, earlier files take precedence")

var filenames = []string{
	"contra.cue",
	".contra.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	paths := append([]string(nil), *configFlag...)

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		paths = append(paths, existing(workingDir)...)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, existing(filepath.Join(configDir, "contra"))...)
	}

	// system wide dir
	paths = append(paths, existing("/etc")...)

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func existing(dir string) (ret []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}

// Schema returns the cue schema config files are validated against.
func Schema() string {
	return schema
}
