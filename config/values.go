package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/darkhz/celldata/internal/logging"
	"github.com/darkhz/celldata/native"
)

// DefaultTimeout is the reply timeout used when none is configured.
const DefaultTimeout = 30 * time.Second

// Values describes the possible configuration values that a user can
// modify and supply to the application.
type Values struct {
	Backend    string `koanf:"backend"`
	SocketPath string `koanf:"socket-path"`
	StateFile  string `koanf:"state-file"`
	Timeout    int    `koanf:"timeout"`
	LogLevel   string `koanf:"log-level"`
	JSON       bool   `koanf:"json"`
	NoColor    bool   `koanf:"no-color"`

	SelectedBackend native.Backend
	ReplyTimeout    time.Duration
	Level           zerolog.Level
}

// NativeOptions returns the options to open the selected backend with.
func (v *Values) NativeOptions() native.Options {
	return native.Options{
		Backend:    v.SelectedBackend,
		SocketPath: v.SocketPath,
		StateFile:  v.StateFile,
		Timeout:    v.ReplyTimeout,
	}
}

// LoggingConfig returns the logger configuration.
func (v *Values) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = v.Level
	cfg.NoColor = v.NoColor

	return cfg
}

// validateValues validates all configuration values.
func (v *Values) validateValues() error {
	for _, validate := range []func() error{
		v.validateBackend,
		v.validateTimeout,
		v.validateStateFile,
		v.validateLogLevel,
	} {
		if err := validate(); err != nil {
			return err
		}
	}

	return nil
}

// validateBackend validates the name of the native backend.
func (v *Values) validateBackend() error {
	if v.Backend == "" {
		v.SelectedBackend = native.BackendSimulator
		return nil
	}

	backend := native.Backend(strings.ToLower(v.Backend))
	if !slices.Contains(native.Backends, backend) {
		names := make([]string, 0, len(native.Backends))
		for _, b := range native.Backends {
			names = append(names, string(b))
		}

		return fmt.Errorf(
			"provided backend '%s' is incorrect.\nValid backends are '%s'",
			v.Backend, strings.Join(names, ", "),
		)
	}

	v.SelectedBackend = backend

	return nil
}

// validateTimeout validates the reply timeout, in seconds.
func (v *Values) validateTimeout() error {
	switch {
	case v.Timeout < 0:
		return fmt.Errorf("timeout %d is incorrect, it must not be negative", v.Timeout)

	case v.Timeout == 0:
		v.ReplyTimeout = DefaultTimeout

	default:
		v.ReplyTimeout = time.Duration(v.Timeout) * time.Second
	}

	return nil
}

// validateStateFile validates the path to the simulator state file.
func (v *Values) validateStateFile() error {
	if v.StateFile == "" {
		return nil
	}

	if v.SelectedBackend != native.BackendSimulator {
		return fmt.Errorf("a state file can only be used with the %s backend", native.BackendSimulator)
	}

	if statpath, err := os.Stat(v.StateFile); err != nil || statpath.IsDir() {
		return fmt.Errorf("%s: File is not accessible", v.StateFile)
	}

	return nil
}

// validateLogLevel validates the logging level.
func (v *Values) validateLogLevel() error {
	if v.LogLevel == "" {
		v.Level = logging.DefaultConfig().Level
		return nil
	}

	level, ok := logging.ParseLevel(v.LogLevel)
	if !ok {
		return fmt.Errorf(
			"provided log level '%s' is incorrect.\nValid levels are '%s'",
			v.LogLevel, strings.Join(logging.Levels, ", "),
		)
	}

	v.Level = level

	return nil
}
