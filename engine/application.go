package engine

import (
	"errors"
	"os"

	"github.com/spaghettifunk/anima-ffp/engine/config"
	"github.com/spaghettifunk/anima-ffp/engine/core"
)

// DefaultConfigPath is read when no other path is given.
const DefaultConfigPath = "anima.toml"

// LoadApplicationConfig reads the configuration at path. A missing default
// file is not an error: the built-in defaults are used instead.
func LoadApplicationConfig(path string) (*config.Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && path == DefaultConfigPath {
		core.LogInfo("no %s found, using the default configuration", path)
		return config.Default(), nil
	}
	return config.Load(path)
}
