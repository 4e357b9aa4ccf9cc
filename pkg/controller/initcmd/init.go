package initcmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	DefaultConfigFilePath = ".pep8-review.yaml"

	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/pep8-review/refs/heads/main/json-schema/pep8-review.json
# pep8-review - https://github.com/suzuki-shunsuke/pep8-review
version: 1
# Directory scanned by flake8
base_dir: .
# flake8 configuration file. If this is empty, flake8 finds its own configuration
# config_file: setup.cfg
# Issues are reported only if the number of issues is greater than threshold
threshold: 0
# timeout: 5m
# linter:
#   command: flake8
#   install: [pip, install, --user, flake8]
#   skip_install: false
#   min_version: 6.0.0
# count:
#   fail: false
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file if it doesn't exist.
func (c *Controller) Init(logE *logrus.Entry, configFilePath string) error {
	if configFilePath == "" {
		configFilePath = DefaultConfigFilePath
	}
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		logE.WithField("config", configFilePath).Info("the configuration file already exists")
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	logE.WithField("config", configFilePath).Info("created a configuration file")
	return nil
}
