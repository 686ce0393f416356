package entrypoint_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/api/errorkinds"
	ep "github.com/darkhz/celldata/entrypoint"
)

var slotParam = []ep.ParamSpec{{Name: "slotId", Kind: ep.KindInt32}}

func newBuilder() *ep.Builder {
	return ep.NewBuilder(zerolog.Nop())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "int32", ep.KindInt32.String())
	assert.Equal(t, "[]ApnInfo", ep.KindApnInfoList.String())
	assert.Equal(t, "invalid", ep.Kind(99).String())
	assert.False(t, ep.Kind(99).Valid())
	assert.Nil(t, ep.KindVoid.Type())

	assert.True(t, ep.KindInt32.Accepts(int32(1)))
	assert.False(t, ep.KindInt32.Accepts(1))
	assert.True(t, ep.KindConnectionState.Accepts(cellular.StateConnected))
	assert.False(t, ep.KindConnectionState.Accepts(int32(2)))
	assert.False(t, ep.KindApnInfo.Accepts(nil))
	assert.False(t, ep.KindVoid.Accepts(struct{}{}))
}

func TestBuildAndInvoke(t *testing.T) {
	table, err := newBuilder().
		Register("Double", "Double a slot.", slotParam, ep.KindInt32, func(v int32) (int32, error) { return v * 2, nil }).
		Register("Noop", "Do nothing.", nil, ep.KindVoid, func() error { return nil }).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"Double", "Noop"}, table.Names())

	result, err := table.Invoke("Double", int32(21))
	require.NoError(t, err)
	assert.Equal(t, int32(42), result)

	result, err = table.Invoke("Noop")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestEntriesKeepRegistrationOrder(t *testing.T) {
	table, err := newBuilder().
		Register("Zeta", "", nil, ep.KindBool, func() (bool, error) { return true, nil }).
		Register("Alpha", "", nil, ep.KindBool, func() (bool, error) { return false, nil }).
		Build()
	require.NoError(t, err)

	entries := table.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Zeta", entries[0].Name)
	assert.Equal(t, "Alpha", entries[1].Name)
	assert.Equal(t, []string{"Alpha", "Zeta"}, table.Names())
}

func TestLookupReturnsCopy(t *testing.T) {
	table, err := newBuilder().
		Register("IsRoamingEnabled", "", slotParam, ep.KindBool, func(int32) (bool, error) { return true, nil }).
		Build()
	require.NoError(t, err)

	entry, ok := table.Lookup("IsRoamingEnabled")
	require.True(t, ok)
	assert.Equal(t, 1, entry.Arity())
	assert.Equal(t, "IsRoamingEnabled(slotId int32) bool", entry.Signature())

	entry.Params[0].Kind = ep.KindString

	again, _ := table.Lookup("IsRoamingEnabled")
	assert.Equal(t, ep.KindInt32, again.Params[0].Kind)

	_, ok = table.Lookup("Missing")
	assert.False(t, ok)
}

func TestRegisterRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		params  []ep.ParamSpec
		ret     ep.Kind
		handler any
		want    error
	}{
		{"empty name", " ", nil, ep.KindVoid, func() error { return nil }, errorkinds.ErrInvalidEntry},
		{"nil handler", "Nil", nil, ep.KindVoid, nil, errorkinds.ErrInvalidEntry},
		{"not a function", "Value", nil, ep.KindVoid, 42, errorkinds.ErrInvalidEntry},
		{"arity", "Arity", slotParam, ep.KindVoid, func() error { return nil }, errorkinds.ErrArityMismatch},
		{"param kind", "Param", slotParam, ep.KindVoid, func(string) error { return nil }, errorkinds.ErrKindMismatch},
		{"void param", "VoidParam", []ep.ParamSpec{{Name: "v", Kind: ep.KindVoid}}, ep.KindVoid, func(struct{}) error { return nil }, errorkinds.ErrKindMismatch},
		{"return kind", "Return", nil, ep.KindBool, func() (int32, error) { return 0, nil }, errorkinds.ErrKindMismatch},
		{"missing error", "NoError", nil, ep.KindBool, func() bool { return true }, errorkinds.ErrKindMismatch},
		{"void with value", "VoidValue", nil, ep.KindVoid, func() (bool, error) { return true, nil }, errorkinds.ErrKindMismatch},
		{"invalid return", "Invalid", nil, ep.Kind(99), func() error { return nil }, errorkinds.ErrKindMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newBuilder().Register(tt.entry, "", tt.params, tt.ret, tt.handler).Build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	_, err := newBuilder().
		Register("EnableData", "", nil, ep.KindVoid, func() error { return nil }).
		Register("EnableData", "", nil, ep.KindVoid, func() error { return nil }).
		Build()

	assert.ErrorIs(t, err, errorkinds.ErrDuplicateEntry)
}

func TestBuildEmptyTable(t *testing.T) {
	_, err := newBuilder().Build()
	assert.ErrorIs(t, err, errorkinds.ErrEmptyEntryTable)
}

func TestInvokeBoundaryErrors(t *testing.T) {
	var calls atomic.Int32

	table, err := newBuilder().
		Register("EnableRoaming", "", slotParam, ep.KindVoid, func(int32) error {
			calls.Inc()
			return nil
		}).
		Build()
	require.NoError(t, err)

	_, err = table.Invoke("Missing")
	assert.ErrorIs(t, err, errorkinds.ErrUnknownOperation)

	_, err = table.Invoke("EnableRoaming")
	assert.ErrorIs(t, err, errorkinds.ErrArgumentCount)

	_, err = table.Invoke("EnableRoaming", int32(0), int32(1))
	assert.ErrorIs(t, err, errorkinds.ErrArgumentCount)

	_, err = table.Invoke("EnableRoaming", "0")
	assert.ErrorIs(t, err, errorkinds.ErrArgumentType)

	_, err = table.Invoke("EnableRoaming", nil)
	assert.ErrorIs(t, err, errorkinds.ErrArgumentType)

	assert.Zero(t, calls.Load())
}

func TestInvokePassesHandlerErrors(t *testing.T) {
	failure := &errorkinds.NativeFailure{Code: 8300001, Message: "RADIO_NOT_AVAILABLE"}

	table, err := newBuilder().
		Register("EnableData", "", nil, ep.KindVoid, func() error { return failure }).
		Register("IsDataEnabled", "", nil, ep.KindBool, func() (bool, error) { return true, failure }).
		Build()
	require.NoError(t, err)

	_, err = table.Invoke("EnableData")
	assert.Same(t, failure, err)

	result, err := table.Invoke("IsDataEnabled")
	assert.Nil(t, result)

	var got *errorkinds.NativeFailure
	require.True(t, errors.As(err, &got))
	assert.Equal(t, int32(8300001), got.Code)
}

func TestConcurrentInvoke(t *testing.T) {
	var calls atomic.Int64

	table, err := newBuilder().
		Register("GetDefaultSlotId", "", nil, ep.KindInt32, func() (int32, error) {
			calls.Inc()
			return 1, nil
		}).
		Build()
	require.NoError(t, err)

	var g errgroup.Group
	for range 64 {
		g.Go(func() error {
			result, err := table.Invoke("GetDefaultSlotId")
			if err != nil {
				return err
			}

			if result != int32(1) {
				return errors.New("unexpected result")
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, int64(64), calls.Load())
}

func TestInvokeLogsCallID(t *testing.T) {
	register := func(b *ep.Builder) (*ep.Table, error) {
		return b.
			Register("Fail", "Always fail.", nil, ep.KindVoid, func() error { return errors.New("radio off") }).
			Build()
	}

	var out bytes.Buffer
	table, err := register(ep.NewBuilder(zerolog.New(&out).Level(zerolog.DebugLevel)))
	require.NoError(t, err)
	out.Reset()

	_, err = table.Invoke("Fail")
	require.Error(t, err)

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second struct {
		Op     string `json:"op"`
		CallID string `json:"call_id"`
	}
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))

	assert.Equal(t, "Fail", first.Op)
	assert.NoError(t, uuid.Validate(first.CallID))
	assert.Equal(t, first.CallID, second.CallID)

	out.Reset()
	table, err = register(ep.NewBuilder(zerolog.New(&out).Level(zerolog.WarnLevel)))
	require.NoError(t, err)

	_, err = table.Invoke("Fail")
	require.Error(t, err)
	assert.Empty(t, out.String())
}
