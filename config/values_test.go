package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkhz/celldata/native"
)

func TestValidateDefaults(t *testing.T) {
	var v Values
	require.NoError(t, v.validateValues())

	assert.Equal(t, native.BackendSimulator, v.SelectedBackend)
	assert.Equal(t, DefaultTimeout, v.ReplyTimeout)
	assert.Equal(t, zerolog.WarnLevel, v.Level)
}

func TestValidateBackend(t *testing.T) {
	v := Values{Backend: "NetworkManager"}
	require.NoError(t, v.validateBackend())
	assert.Equal(t, native.BackendNetworkManager, v.SelectedBackend)

	v = Values{Backend: "ofono"}
	assert.ErrorContains(t, v.validateBackend(), "Valid backends are 'simulator, shim, networkmanager'")
}

func TestValidateTimeout(t *testing.T) {
	v := Values{Timeout: 3}
	require.NoError(t, v.validateTimeout())
	assert.Equal(t, 3*time.Second, v.ReplyTimeout)

	v = Values{Timeout: -1}
	assert.Error(t, v.validateTimeout())
}

func TestValidateStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.hjson")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	v := Values{StateFile: path, SelectedBackend: native.BackendSimulator}
	assert.NoError(t, v.validateStateFile())

	v = Values{StateFile: path, SelectedBackend: native.BackendShim}
	assert.Error(t, v.validateStateFile())

	v = Values{StateFile: filepath.Dir(path), SelectedBackend: native.BackendSimulator}
	assert.ErrorContains(t, v.validateStateFile(), "File is not accessible")
}

func TestValidateLogLevel(t *testing.T) {
	v := Values{LogLevel: "trace"}
	require.NoError(t, v.validateLogLevel())
	assert.Equal(t, zerolog.TraceLevel, v.Level)

	v = Values{LogLevel: "loud"}
	assert.ErrorContains(t, v.validateLogLevel(), "Valid levels are")
}

func TestLoggingConfig(t *testing.T) {
	v := Values{NoColor: true, Level: zerolog.ErrorLevel}

	cfg := v.LoggingConfig()
	assert.True(t, cfg.NoColor)
	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.NotNil(t, cfg.Out)
}
