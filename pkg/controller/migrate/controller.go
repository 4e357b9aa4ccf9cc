// Package migrate rewrites a configuration file to schema version 1.
// Keys written with the names of the Danger pep8 plugin (path) or of the
// --flake8-config flag (flake8_config) are renamed, and version is set.
// Comments and the order of keys are kept.
package migrate

import (
	"github.com/spf13/afero"
)

type Controller struct {
	fs        afero.Fs
	param     *Param
	cfgFinder ConfigFinder
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type Param struct {
	ConfigFilePath string
}

func New(fs afero.Fs, cfgFinder ConfigFinder, param *Param) *Controller {
	return &Controller{
		param:     param,
		fs:        fs,
		cfgFinder: cfgFinder,
	}
}
