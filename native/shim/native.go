package shim

import (
	"errors"

	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/native/shim/internal/commands"
)

var _ cellular.Native = (*Session)(nil)

// IsCellularDataEnabled returns whether cellular data is enabled.
func (s *Session) IsCellularDataEnabled() (bool, cellular.ErrorSentinel) {
	enabled, err := commands.IsDataEnabled().ExecuteWith(s.executor, s.timeout)

	return enabled, s.sentinel("IsDataEnabled", err)
}

// EnableCellularData enables cellular data.
func (s *Session) EnableCellularData() cellular.ErrorSentinel {
	_, err := commands.EnableData().ExecuteWith(s.executor, s.timeout)

	return s.sentinel("EnableData", err)
}

// DisableCellularData disables cellular data.
func (s *Session) DisableCellularData() cellular.ErrorSentinel {
	_, err := commands.DisableData().ExecuteWith(s.executor, s.timeout)

	return s.sentinel("DisableData", err)
}

// DefaultCellularDataSlotID returns the slot used for cellular data, or -1 if
// the daemon cannot be reached.
func (s *Session) DefaultCellularDataSlotID() int32 {
	slotID, err := commands.GetDefaultSlot().ExecuteWith(s.executor, s.timeout)
	if err != nil {
		s.logFailure("GetDefaultSlotId", err)
		return -1
	}

	return slotID
}

// CellularDataState returns the raw connection state code.
func (s *Session) CellularDataState() (int32, cellular.ErrorSentinel) {
	state, err := commands.GetDataState().ExecuteWith(s.executor, s.timeout)
	if err != nil {
		return int32(cellular.StateUnknown), s.sentinel("GetConnectionState", err)
	}

	return state, cellular.Success()
}

// DisableCellularDataRoaming disables data roaming on the slot.
func (s *Session) DisableCellularDataRoaming(slotID int32) cellular.ErrorSentinel {
	_, err := commands.DisableRoaming(slotID).ExecuteWith(s.executor, s.timeout)

	return s.sentinel("DisableRoaming", err)
}

// EnableCellularDataRoaming enables data roaming on the slot.
func (s *Session) EnableCellularDataRoaming(slotID int32) cellular.ErrorSentinel {
	_, err := commands.EnableRoaming(slotID).ExecuteWith(s.executor, s.timeout)

	return s.sentinel("EnableRoaming", err)
}

// IsCellularDataRoamingEnabled returns whether data roaming is enabled on the slot.
func (s *Session) IsCellularDataRoamingEnabled(slotID int32) (bool, cellular.ErrorSentinel) {
	enabled, err := commands.IsRoamingEnabled(slotID).ExecuteWith(s.executor, s.timeout)

	return enabled, s.sentinel("IsRoamingEnabled", err)
}

// SetDefaultCellularDataSlotID sets the slot used for cellular data.
func (s *Session) SetDefaultCellularDataSlotID(slotID int32) cellular.ErrorSentinel {
	_, err := commands.SetDefaultSlot(slotID).ExecuteWith(s.executor, s.timeout)

	return s.sentinel("SetDefaultSlotId", err)
}

// CellularDataFlowType returns the raw flow type code for the slot, or the
// code for no flow if the daemon cannot be reached.
func (s *Session) CellularDataFlowType(slotID int32) int32 {
	flowType, err := commands.GetFlowType(slotID).ExecuteWith(s.executor, s.timeout)
	if err != nil {
		s.logFailure("GetFlowType", err)
		return int32(cellular.FlowNone)
	}

	return flowType
}

// SetPreferredApn marks the access point as preferred.
func (s *Session) SetPreferredApn(apnID int32) (bool, cellular.ErrorSentinel) {
	set, err := commands.SetPreferredApn(apnID).ExecuteWith(s.executor, s.timeout)

	return set, s.sentinel("SetPreferredApn", err)
}

// DefaultCellularDataSimID returns the SIM used for cellular data, or -1 if
// the daemon cannot be reached.
func (s *Session) DefaultCellularDataSimID() int32 {
	simID, err := commands.GetDefaultSim().ExecuteWith(s.executor, s.timeout)
	if err != nil {
		s.logFailure("GetDefaultSimId", err)
		return -1
	}

	return simID
}

// QueryApnIDs returns the identifiers of the access points matching the filter.
func (s *Session) QueryApnIDs(filter cellular.NativeApnInfo) ([]uint32, cellular.ErrorSentinel) {
	ids, err := commands.QueryApnIDs(filter).ExecuteWith(s.executor, s.timeout)

	return ids, s.sentinel("QueryApnIds", err)
}

// QueryAllApns returns all known access points.
func (s *Session) QueryAllApns() ([]cellular.NativeApnInfo, cellular.ErrorSentinel) {
	apns, err := commands.ListApns().ExecuteWith(s.executor, s.timeout)

	return apns, s.sentinel("QueryAllApns", err)
}

// ActiveApnName returns the name of the active access point.
func (s *Session) ActiveApnName() (string, cellular.ErrorSentinel) {
	name, err := commands.GetActiveApnName().ExecuteWith(s.executor, s.timeout)

	return name, s.sentinel("GetActiveApnName", err)
}

// sentinel converts the result of a command to an error sentinel.
// Errors reported by the daemon keep their code and message, any other
// error is reported as a service failure.
func (s *Session) sentinel(op string, err error) cellular.ErrorSentinel {
	if err == nil {
		return cellular.Success()
	}

	s.logFailure(op, err)

	var commandErr commands.CommandError
	if errors.As(err, &commandErr) {
		return cellular.Failure(commandErr.Code, commandErr.Message)
	}

	return cellular.Failure(cellular.ErrCodeService, err.Error())
}

func (s *Session) logFailure(op string, err error) {
	s.logger.Warn().Err(err).Str("op", op).Msg("shim: command failed")
}
