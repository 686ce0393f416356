//go:build !linux

package native

import (
	"context"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fctx"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/rs/zerolog"

	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/api/errorkinds"
)

// openNetworkManager reports that NetworkManager is only available on Linux.
func openNetworkManager(zerolog.Logger) (cellular.Native, CloseFunc, error) {
	return nil, nil, fault.Wrap(errorkinds.ErrNotSupported,
		fctx.With(context.Background(), "error_at", "backend-open", "backend", string(BackendNetworkManager)),
		ftag.With(ftag.Internal),
		fmsg.With("NetworkManager is only available on Linux"),
	)
}
