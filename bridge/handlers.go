package bridge

import (
	"github.com/rs/zerolog"

	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/api/marshal"
)

// Handlers holds one operation handler per native operation.
// Each handler makes exactly one native call and keeps no state between calls.
type Handlers struct {
	native cellular.Native
	logger zerolog.Logger
}

// NewHandlers returns the operation handlers for a native subsystem.
func NewHandlers(native cellular.Native, logger zerolog.Logger) *Handlers {
	return &Handlers{native: native, logger: logger}
}

// IsDataEnabled returns whether cellular data is enabled.
func (h *Handlers) IsDataEnabled() (bool, error) {
	enabled, sentinel := h.native.IsCellularDataEnabled()

	return unwrapResult(h.logger, "IsDataEnabled", marshal.FromSentinel(sentinel, enabled, marshal.Identity[bool]))
}

// EnableData enables cellular data.
func (h *Handlers) EnableData() error {
	return h.status("EnableData", h.native.EnableCellularData())
}

// DisableData disables cellular data.
func (h *Handlers) DisableData() error {
	return h.status("DisableData", h.native.DisableCellularData())
}

// GetDefaultSlotID returns the default cellular data slot.
func (h *Handlers) GetDefaultSlotID() (int32, error) {
	return h.native.DefaultCellularDataSlotID(), nil
}

// GetConnectionState returns the cellular data connection state.
func (h *Handlers) GetConnectionState() (cellular.ConnectionState, error) {
	code, sentinel := h.native.CellularDataState()

	return unwrapResult(h.logger, "GetConnectionState", marshal.FromSentinel(sentinel, code, marshal.DecodeConnectionState))
}

// DisableRoaming disables data roaming on the slot.
func (h *Handlers) DisableRoaming(slotID int32) error {
	return h.status("DisableRoaming", h.native.DisableCellularDataRoaming(slotID))
}

// EnableRoaming enables data roaming on the slot.
func (h *Handlers) EnableRoaming(slotID int32) error {
	return h.status("EnableRoaming", h.native.EnableCellularDataRoaming(slotID))
}

// IsRoamingEnabled returns whether data roaming is enabled on the slot.
func (h *Handlers) IsRoamingEnabled(slotID int32) (bool, error) {
	enabled, sentinel := h.native.IsCellularDataRoamingEnabled(slotID)

	return unwrapResult(h.logger, "IsRoamingEnabled", marshal.FromSentinel(sentinel, enabled, marshal.Identity[bool]))
}

// SetDefaultSlotID sets the default cellular data slot.
func (h *Handlers) SetDefaultSlotID(slotID int32) error {
	return h.status("SetDefaultSlotId", h.native.SetDefaultCellularDataSlotID(slotID))
}

// GetFlowType returns the cellular data flow type of the slot.
func (h *Handlers) GetFlowType(slotID int32) (cellular.FlowType, error) {
	return marshal.DecodeFlowType(h.native.CellularDataFlowType(slotID)), nil
}

// SetPreferredApn marks the access point as preferred.
func (h *Handlers) SetPreferredApn(apnID int32) (bool, error) {
	ok, sentinel := h.native.SetPreferredApn(apnID)

	return unwrapResult(h.logger, "SetPreferredApn", marshal.FromSentinel(sentinel, ok, marshal.Identity[bool]))
}

// GetDefaultSimID returns the default cellular data SIM.
func (h *Handlers) GetDefaultSimID() (int32, error) {
	return h.native.DefaultCellularDataSimID(), nil
}

// QueryApnIDs returns the identifiers of the access points matching the filter.
// Absent filter fields are sent to the native subsystem as empty strings.
func (h *Handlers) QueryApnIDs(filter cellular.ApnInfo) ([]uint32, error) {
	ids, sentinel := h.native.QueryApnIDs(marshal.EncodeApn(filter))

	return unwrapResult(h.logger, "QueryApnIds", marshal.FromSentinel(sentinel, ids, marshal.CopyIDs))
}

// QueryAllApns returns all access points, in native order.
func (h *Handlers) QueryAllApns() ([]cellular.ApnInfo, error) {
	records, sentinel := h.native.QueryAllApns()

	return unwrapResult(h.logger, "QueryAllApns", marshal.FromSentinel(sentinel, records, marshal.DecodeApns))
}

// GetActiveApnName returns the name of the active access point.
func (h *Handlers) GetActiveApnName() (string, error) {
	name, sentinel := h.native.ActiveApnName()

	return unwrapResult(h.logger, "GetActiveApnName", marshal.FromSentinel(sentinel, name, marshal.Identity[string]))
}

// status folds a payload-less sentinel into an error.
func (h *Handlers) status(op string, sentinel cellular.ErrorSentinel) error {
	_, err := unwrapResult(h.logger, op, marshal.FromStatus(sentinel))
	return err
}

// unwrapResult logs a failed result and unwraps it.
func unwrapResult[T any](logger zerolog.Logger, op string, result marshal.Result[T]) (T, error) {
	if failure, ok := result.Failure(); ok {
		logger.Debug().
			Str("op", op).
			Int32("code", failure.Code).
			Str("message", failure.Message).
			Msg("native failure")
	}

	return result.Unwrap()
}
