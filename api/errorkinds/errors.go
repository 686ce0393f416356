package errorkinds

import (
	"errors"
	"strconv"
	"strings"
)

// The different general error types.
var (
	ErrSessionStart    = errors.New("cannot start session")
	ErrSessionStop     = errors.New("cannot stop session")
	ErrSessionNotExist = errors.New("session does not exist")
	ErrMethodTimeout   = errors.New("timeout on method response")

	ErrDuplicateEntry  = errors.New("entry point is already registered")
	ErrInvalidEntry    = errors.New("entry point is invalid")
	ErrArityMismatch   = errors.New("handler arity does not match the declared parameters")
	ErrKindMismatch    = errors.New("handler type does not match the declared kind")
	ErrEmptyEntryTable = errors.New("entry point table is empty")

	ErrUnknownOperation = errors.New("operation is not registered")
	ErrArgumentCount    = errors.New("wrong number of arguments")
	ErrArgumentType     = errors.New("wrong argument type")

	ErrStateDataParse = errors.New("error parsing state data")

	ErrNotSupported = errors.New("this functionality is not supported")
)

// NativeFailure represents a failure reported by the native subsystem.
// The code and message are carried verbatim from the native call.
type NativeFailure struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// Error returns the formatted failure as string.
func (n *NativeFailure) Error() string {
	sb := strings.Builder{}

	sb.WriteString("native failure ")
	sb.WriteString(strconv.FormatInt(int64(n.Code), 10))
	if n.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(n.Message)
	}

	return sb.String()
}

// Is reports whether target is a NativeFailure with the same code and message.
func (n *NativeFailure) Is(target error) bool {
	t, ok := target.(*NativeFailure)
	if !ok {
		return false
	}

	return t.Code == n.Code && t.Message == n.Message
}

// AsNativeFailure returns the NativeFailure within err, if any.
func AsNativeFailure(err error) (*NativeFailure, bool) {
	var failure *NativeFailure
	if errors.As(err, &failure) {
		return failure, true
	}

	return nil, false
}
