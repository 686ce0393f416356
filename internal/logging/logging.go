package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// The environment variables that override the logging configuration.
const (
	EnvLogLevel   = "CELLDATA_LOG_LEVEL"
	EnvLogNoColor = "CELLDATA_LOG_NOCOLOR"
)

// Levels lists the level names accepted by ParseLevel.
var Levels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// Config describes the logging configuration.
type Config struct {
	Level   zerolog.Level
	NoColor bool
	Out     io.Writer
}

// DefaultConfig returns the default logging configuration,
// which only reports warnings and errors to stderr.
func DefaultConfig() Config {
	return Config{
		Level: zerolog.WarnLevel,
		Out:   os.Stderr,
	}
}

// New returns a new logger, after applying any environment overrides to cfg.
func New(cfg Config) zerolog.Logger {
	applyEnvOverrides(&cfg)

	if cfg.Out == nil {
		cfg.Out = os.Stderr
	}

	output := zerolog.ConsoleWriter{
		Out:        cfg.Out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).Level(cfg.Level).With().Timestamp().Logger()
}

// ParseLevel parses a level name.
// It returns false if the name is empty or unknown.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.WarnLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.WarnLevel, false
	}
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}

	if v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvLogNoColor))); err == nil {
		cfg.NoColor = v
	}
}
