// Package config reads and validates the pep8-review configuration file.
// The file is optional. When it isn't passed explicitly it is searched at
// fixed paths relative to the current directory, and any missing value falls
// back to a default so that a bare `pep8-review run` lints the current directory.
package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-version"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	SchemaVersion  = 1
	DefaultBaseDir = "."
	DefaultCommand = "flake8"
	DefaultTimeout = "5m"
)

// DefaultInstall is the command run once when the linter isn't found in PATH.
func DefaultInstall() []string {
	return []string{"pip", "install", "--user", "flake8"}
}

type Config struct {
	Version    int    `json:"version,omitempty" jsonschema:"enum=1"`
	BaseDir    string `json:"base_dir,omitempty" yaml:"base_dir" jsonschema:"description=Directory scanned by flake8. The default is the current directory"`
	ConfigFile string `json:"config_file,omitempty" yaml:"config_file" jsonschema:"description=flake8 configuration file. If this is empty, flake8 discovers its own configuration"`
	Threshold  int    `json:"threshold,omitempty" jsonschema:"minimum=0,description=Issues are reported only if the number of issues is greater than this value"`
	Timeout    string `json:"timeout,omitempty" jsonschema:"description=Timeout of a flake8 run as a Go duration string. The default is 5m"`
	Linter     Linter `json:"linter,omitempty"`
	Count      Count  `json:"count,omitempty"`
	timeout    time.Duration
}

type Linter struct {
	Command     string   `json:"command,omitempty" jsonschema:"description=flake8 executable. The default is flake8"`
	Install     []string `json:"install,omitempty" jsonschema:"description=Command to install flake8 if it isn't found. The default is pip install --user flake8"`
	SkipInstall bool     `json:"skip_install,omitempty" yaml:"skip_install" jsonschema:"description=Don't install flake8 even if it isn't found"`
	MinVersion  string   `json:"min_version,omitempty" yaml:"min_version" jsonschema:"description=A warning is reported if flake8 is older than this version"`
}

type Count struct {
	Fail bool `json:"fail,omitempty" jsonschema:"description=Report the number of issues as a failure instead of a warning"`
}

// Default returns a Config whose values are all defaults.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Init(); err != nil {
		panic(err)
	}
	return cfg
}

// Init fills defaults and validates the configuration.
// It must be called before the configuration is used, and again after a
// caller changes Timeout.
func (c *Config) Init() error {
	if c.Version != 0 && c.Version != SchemaVersion {
		return fmt.Errorf("unsupported version: %d", c.Version)
	}
	if c.Threshold < 0 {
		return errors.New("threshold must not be negative")
	}
	if c.BaseDir == "" {
		c.BaseDir = DefaultBaseDir
	}
	if c.Timeout == "" {
		c.Timeout = DefaultTimeout
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("parse timeout as a duration: %w", err)
	}
	if d <= 0 {
		return errors.New("timeout must be positive")
	}
	c.timeout = d
	if err := c.Linter.Init(); err != nil {
		return fmt.Errorf("initialize linter: %w", err)
	}
	return nil
}

// TimeoutDuration returns the parsed Timeout.
func (c *Config) TimeoutDuration() time.Duration {
	return c.timeout
}

func (l *Linter) Init() error {
	if l.Command == "" {
		l.Command = DefaultCommand
	}
	if l.Install == nil && !l.SkipInstall {
		l.Install = DefaultInstall()
	}
	if l.SkipInstall {
		l.Install = nil
	}
	if l.MinVersion != "" {
		if _, err := version.NewVersion(l.MinVersion); err != nil {
			return fmt.Errorf("parse min_version: %w", err)
		}
	}
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".pep8-review.yaml", ".github/pep8-review.yaml", ".pep8-review.yml", ".github/pep8-review.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns configFilePath if it isn't empty.
// Otherwise it returns the first existing default path, or an empty string.
func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read decodes the configuration file into cfg and initializes it.
// If configFilePath is empty, cfg is only initialized.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return cfg.Init()
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.Init(); err != nil {
		return fmt.Errorf("initialize the configuration: %w", err)
	}
	return nil
}
