package linter

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pep8-review/pkg/config"
)

type fakeRunner struct {
	outputs map[string]*Output
	errs    map[string]error
	calls   []string
}

func (r *fakeRunner) Run(_ context.Context, cmd *Command) (*Output, error) {
	s := cmd.String()
	r.calls = append(r.calls, s)
	if err, ok := r.errs[cmd.Name]; ok {
		return &Output{}, err
	}
	if out, ok := r.outputs[s]; ok {
		return out, nil
	}
	return &Output{}, nil
}

func newLogE() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func TestInvoker_Run(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name     string
		cfg      *config.Config
		mode     Mode
		runner   *fakeRunner
		exp      []string
		expErr   error
		expCalls []string
	}{
		{
			name: "issues found",
			cfg:  &config.Config{BaseDir: "."},
			mode: ModeNormal,
			runner: &fakeRunner{
				outputs: map[string]*Output{
					"flake8 .": {Stdout: "a.py:1:1: E1 x\nb.py:2:3: W2 y\n", ExitCode: 1},
				},
			},
			exp:      []string{"a.py:1:1: E1 x", "b.py:2:3: W2 y"},
			expCalls: []string{"flake8 ."},
		},
		{
			name: "no issue",
			cfg:  &config.Config{BaseDir: "src", ConfigFile: "setup.cfg"},
			mode: ModeNormal,
			runner: &fakeRunner{
				outputs: map[string]*Output{},
			},
			exp:      []string{},
			expCalls: []string{"flake8 src --config setup.cfg"},
		},
		{
			name: "count only",
			cfg:  &config.Config{BaseDir: ".", Linter: config.Linter{Command: "/opt/flake8"}},
			mode: ModeCountOnly,
			runner: &fakeRunner{
				outputs: map[string]*Output{
					"/opt/flake8 . --quiet --quiet --count": {Stdout: "15\n", ExitCode: 1},
				},
			},
			exp:      []string{"15"},
			expCalls: []string{"/opt/flake8 . --quiet --quiet --count"},
		},
		{
			name: "non-zero exit without output",
			cfg:  &config.Config{BaseDir: "."},
			mode: ModeNormal,
			runner: &fakeRunner{
				outputs: map[string]*Output{
					"flake8 .": {Stderr: "There was a critical error during execution of Flake8\n", ExitCode: 1},
				},
			},
			expErr:   ErrLinterFailed,
			expCalls: []string{"flake8 ."},
		},
		{
			name: "not found",
			cfg:  &config.Config{BaseDir: "."},
			mode: ModeNormal,
			runner: &fakeRunner{
				errs: map[string]error{
					"flake8": &LinterError{Command: "flake8", Err: ErrLinterNotFound},
				},
			},
			expErr:   ErrLinterNotFound,
			expCalls: []string{"flake8 ."},
		},
		{
			name: "timeout",
			cfg:  &config.Config{BaseDir: "."},
			mode: ModeNormal,
			runner: &fakeRunner{
				errs: map[string]error{
					"flake8": &LinterError{Command: "flake8", Err: ErrLinterTimeout},
				},
			},
			expErr:   ErrLinterTimeout,
			expCalls: []string{"flake8 ."},
		},
	}
	logE := newLogE()
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			iv := New(d.runner, nil, d.cfg)
			lines, err := iv.Run(t.Context(), logE, d.mode)
			if d.expErr != nil {
				if !errors.Is(err, d.expErr) {
					t.Fatalf("wanted %v, got %v", d.expErr, err)
				}
			} else {
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(d.exp, lines); diff != "" {
					t.Fatal(diff)
				}
			}
			if diff := cmp.Diff(d.expCalls, d.runner.calls); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestInvoker_Run_reflectsConfigChanges(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{BaseDir: "."}
	runner := &fakeRunner{}
	iv := New(runner, nil, cfg)
	logE := newLogE()
	if _, err := iv.Run(t.Context(), logE, ModeNormal); err != nil {
		t.Fatal(err)
	}
	cfg.BaseDir = "pkg"
	cfg.ConfigFile = "tox.ini"
	if _, err := iv.Run(t.Context(), logE, ModeNormal); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"flake8 .", "flake8 pkg --config tox.ini"}, runner.calls); diff != "" {
		t.Fatal(diff)
	}
}

func TestInvoker_Version(t *testing.T) {
	t.Parallel()
	runner := &fakeRunner{
		outputs: map[string]*Output{
			"flake8 --version": {Stdout: "7.1.1 (mccabe: 0.7.0, pycodestyle: 2.12.1, pyflakes: 3.2.0) CPython 3.12.4 on Linux\n"},
		},
	}
	iv := New(runner, nil, &config.Config{})
	v, err := iv.Version(t.Context(), newLogE())
	if err != nil {
		t.Fatal(err)
	}
	if s := v.String(); s != "7.1.1" {
		t.Fatalf("wanted 7.1.1, got %s", s)
	}
}

func TestCheckVersion(t *testing.T) {
	t.Parallel()
	data := []struct {
		name       string
		version    string
		minVersion string
		exp        bool
		isErr      bool
	}{
		{
			name:    "no requirement",
			version: "3.0.0",
		},
		{
			name:       "older",
			version:    "5.0.4",
			minVersion: "6.0.0",
			exp:        true,
		},
		{
			name:       "same",
			version:    "6.0.0",
			minVersion: "6.0.0",
		},
		{
			name:       "newer",
			version:    "7.1.1",
			minVersion: "6.0.0",
		},
		{
			name:       "invalid requirement",
			version:    "7.1.1",
			minVersion: "latest",
			isErr:      true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			v, err := ParseVersion(d.version)
			if err != nil {
				t.Fatal(err)
			}
			older, err := CheckVersion(v, d.minVersion)
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if older != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, older)
			}
		})
	}
}

func TestParseVersion_notFound(t *testing.T) {
	t.Parallel()
	if _, err := ParseVersion("flake8: command not found"); !errors.Is(err, errVersionNotFound) {
		t.Fatalf("wanted errVersionNotFound, got %v", err)
	}
}

func TestCommandInstaller_EnsureInstalled(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name     string
		found    bool
		install  []string
		runner   *fakeRunner
		expErr   error
		expCalls []string
	}{
		{
			name:    "already installed",
			found:   true,
			install: config.DefaultInstall(),
			runner:  &fakeRunner{},
		},
		{
			name:     "install",
			install:  config.DefaultInstall(),
			runner:   &fakeRunner{},
			expCalls: []string{"pip install --user flake8"},
		},
		{
			name:   "installation is disabled",
			runner: &fakeRunner{},
			expErr: ErrLinterNotFound,
		},
		{
			name:    "install command fails",
			install: config.DefaultInstall(),
			runner: &fakeRunner{
				outputs: map[string]*Output{
					"pip install --user flake8": {Stderr: "ERROR: network is unreachable", ExitCode: 1},
				},
			},
			expErr:   ErrLinterFailed,
			expCalls: []string{"pip install --user flake8"},
		},
	}
	logE := newLogE()
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			installer := NewInstaller(d.runner, "flake8", d.install)
			installer.lookPath = func(string) (string, error) {
				if d.found {
					return "/usr/bin/flake8", nil
				}
				return "", errors.New("not found")
			}
			for range 2 {
				err := installer.EnsureInstalled(t.Context(), logE)
				if d.expErr == nil {
					if err != nil {
						t.Fatal(err)
					}
				} else if !errors.Is(err, d.expErr) {
					t.Fatalf("wanted %v, got %v", d.expErr, err)
				}
			}
			if diff := cmp.Diff(d.expCalls, d.runner.calls); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestExecRunner_Run_notFound(t *testing.T) {
	t.Parallel()
	_, err := NewExecRunner().Run(t.Context(), &Command{
		Name:    "pep8-review-command-that-does-not-exist",
		Timeout: time.Minute,
	})
	if !errors.Is(err, ErrLinterNotFound) {
		t.Fatalf("wanted ErrLinterNotFound, got %v", err)
	}
}

func TestExecRunner_Run_timeoutWithChildProcess(t *testing.T) {
	t.Parallel()
	if _, err := exec.LookPath("sh"); err != nil || runtime.GOOS == "windows" {
		t.Skip("sh isn't available")
	}
	start := time.Now()
	_, err := NewExecRunner().Run(t.Context(), &Command{
		Name:    "sh",
		Args:    []string{"-c", "sleep 4 & sleep 4"},
		Timeout: 200 * time.Millisecond,
	})
	elapsed := time.Since(start)
	if !errors.Is(err, ErrLinterTimeout) {
		t.Fatalf("wanted ErrLinterTimeout, got %v", err)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("Run must return shortly after the timeout, took %s", elapsed)
	}
}

func TestLinterError_Error(t *testing.T) {
	t.Parallel()
	err := &LinterError{
		Command: "flake8",
		Stderr:  "\nTraceback (most recent call last):\n  File ...\n",
		Err:     ErrLinterFailed,
	}
	if s := err.Error(); s != "flake8: linter failed: Traceback (most recent call last):" {
		t.Fatalf("got %q", s)
	}
}
