// Package native selects the telephony subsystem that backs the cellular data operations.
package native

import (
	"context"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fctx"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/rs/zerolog"

	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/api/errorkinds"
	"github.com/darkhz/celldata/native/shim"
	"github.com/darkhz/celldata/native/simulator"
)

// Backend describes the name of a native backend.
type Backend string

// The native backends.
const (
	BackendSimulator      Backend = "simulator"
	BackendShim           Backend = "shim"
	BackendNetworkManager Backend = "networkmanager"
)

// Backends lists every known backend.
var Backends = []Backend{BackendSimulator, BackendShim, BackendNetworkManager}

// Options describes the backend to open and its settings.
type Options struct {
	Backend    Backend
	SocketPath string
	StateFile  string
	Timeout    time.Duration
}

// CloseFunc releases the resources held by a backend.
type CloseFunc func() error

// Open opens the backend described by opts.
func Open(opts Options, logger zerolog.Logger) (cellular.Native, CloseFunc, error) {
	logger = logger.With().Str("backend", string(opts.Backend)).Logger()

	switch opts.Backend {
	case BackendSimulator, "":
		state := simulator.DefaultState()
		if opts.StateFile != "" {
			var err error

			state, err = simulator.LoadState(opts.StateFile)
			if err != nil {
				return nil, nil, err
			}
		}

		return simulator.New(state, logger), func() error { return nil }, nil

	case BackendShim:
		session := shim.NewSession(logger)
		if err := session.Start(shim.Options{SocketPath: opts.SocketPath, Timeout: opts.Timeout}); err != nil {
			return nil, nil, err
		}

		return session, session.Stop, nil

	case BackendNetworkManager:
		return openNetworkManager(logger)
	}

	return nil, nil, fault.Wrap(errorkinds.ErrNotSupported,
		fctx.With(context.Background(), "error_at", "backend-open", "backend", string(opts.Backend)),
		ftag.With(ftag.InvalidArgument),
		fmsg.With("Unknown backend"),
	)
}
