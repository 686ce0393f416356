package marshal

import (
	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/api/errorkinds"
)

// Translate converts an error sentinel into a failure.
// It returns nil if the sentinel reports success, otherwise a NativeFailure
// holding the native code and message unchanged.
func Translate(sentinel cellular.ErrorSentinel) error {
	if failure := translate(sentinel); failure != nil {
		return failure
	}

	return nil
}

// translate returns the typed failure for a sentinel, or nil on success.
func translate(sentinel cellular.ErrorSentinel) *errorkinds.NativeFailure {
	if !sentinel.IsError() {
		return nil
	}

	return &errorkinds.NativeFailure{
		Code:    sentinel.Code,
		Message: sentinel.Message,
	}
}
