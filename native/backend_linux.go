//go:build linux

package native

import (
	"github.com/rs/zerolog"

	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/native/networkmanager"
)

// openNetworkManager returns the NetworkManager backend.
func openNetworkManager(logger zerolog.Logger) (cellular.Native, CloseFunc, error) {
	backend, err := networkmanager.New(logger)
	if err != nil {
		return nil, nil, err
	}

	return backend, backend.Close, nil
}
