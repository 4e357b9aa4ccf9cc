package migrate

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pep8-review/pkg/config"
	"gopkg.in/yaml.v3"
)

type versionOnly struct {
	Version int `yaml:"version"`
}

func (c *Controller) Migrate(logE *logrus.Entry) error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	if p == "" {
		logE.Warn("no configuration file is found")
		return nil
	}
	c.param.ConfigFilePath = p
	logE = logE.WithField("config", p)

	content, err := afero.ReadFile(c.fs, p)
	if err != nil {
		return fmt.Errorf("read a file: %w", err)
	}

	v := &versionOnly{}
	if err := yaml.Unmarshal(content, v); err != nil {
		return fmt.Errorf("parse a config file: %w", err)
	}
	if v.Version > config.SchemaVersion {
		return fmt.Errorf("unsupported version: %d", v.Version)
	}

	s, changed, err := parseConfigAST(content)
	if err != nil {
		return err
	}
	if !changed {
		logE.Info("configuration file isn't changed")
		return nil
	}
	if err := c.edit(p, s); err != nil {
		return fmt.Errorf("edit the configuration file: %w", err)
	}
	logE.Info("migrated the configuration file")
	return nil
}

func (c *Controller) edit(file, content string) error {
	stat, err := c.fs.Stat(file)
	if err != nil {
		return fmt.Errorf("get configuration file stat: %w", err)
	}
	if err := afero.WriteFile(c.fs, file, []byte(content), stat.Mode()); err != nil {
		return fmt.Errorf("write the configuration file: %w", err)
	}
	return nil
}
