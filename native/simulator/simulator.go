package simulator

import (
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/darkhz/celldata/api/cellular"
)

var _ cellular.Native = (*Simulator)(nil)

// Simulator is an in-process telephony subsystem that implements cellular.Native.
// It is safe for concurrent use.
type Simulator struct {
	state State
	calls *atomic.Int64

	logger zerolog.Logger

	mu sync.Mutex
}

// New returns a simulator that starts from the provided state.
func New(state State, logger zerolog.Logger) *Simulator {
	state = state.clone()
	state.normalize()

	return &Simulator{
		state:  state,
		calls:  atomic.NewInt64(0),
		logger: logger,
	}
}

// Calls returns the number of native calls made on the simulator.
func (s *Simulator) Calls() int64 {
	return s.calls.Load()
}

// Snapshot returns a copy of the current state.
func (s *Simulator) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

// IsCellularDataEnabled returns whether cellular data is enabled.
func (s *Simulator) IsCellularDataEnabled() (bool, cellular.ErrorSentinel) {
	s.enter()
	defer s.mu.Unlock()

	if sentinel := s.check("IsDataEnabled"); sentinel.IsError() {
		return false, sentinel
	}

	return s.state.DataEnabled, cellular.Success()
}

// EnableCellularData enables cellular data.
func (s *Simulator) EnableCellularData() cellular.ErrorSentinel {
	return s.setData("EnableData", true)
}

// DisableCellularData disables cellular data.
func (s *Simulator) DisableCellularData() cellular.ErrorSentinel {
	return s.setData("DisableData", false)
}

// DefaultCellularDataSlotID returns the slot used for cellular data.
func (s *Simulator) DefaultCellularDataSlotID() int32 {
	s.enter()
	defer s.mu.Unlock()

	return s.state.DefaultSlot
}

// CellularDataState returns the raw connection state code.
func (s *Simulator) CellularDataState() (int32, cellular.ErrorSentinel) {
	s.enter()
	defer s.mu.Unlock()

	if sentinel := s.check("GetConnectionState"); sentinel.IsError() {
		return int32(cellular.StateUnknown), sentinel
	}

	return s.state.ConnectionState, cellular.Success()
}

// DisableCellularDataRoaming disables data roaming on the slot.
func (s *Simulator) DisableCellularDataRoaming(slotID int32) cellular.ErrorSentinel {
	return s.setRoaming("DisableRoaming", slotID, false)
}

// EnableCellularDataRoaming enables data roaming on the slot.
func (s *Simulator) EnableCellularDataRoaming(slotID int32) cellular.ErrorSentinel {
	return s.setRoaming("EnableRoaming", slotID, true)
}

// IsCellularDataRoamingEnabled returns whether data roaming is enabled on the slot.
func (s *Simulator) IsCellularDataRoamingEnabled(slotID int32) (bool, cellular.ErrorSentinel) {
	s.enter()
	defer s.mu.Unlock()

	if sentinel := s.checkSlot("IsRoamingEnabled", slotID); sentinel.IsError() {
		return false, sentinel
	}

	return s.state.Roaming[slotID], cellular.Success()
}

// SetDefaultCellularDataSlotID sets the slot used for cellular data.
func (s *Simulator) SetDefaultCellularDataSlotID(slotID int32) cellular.ErrorSentinel {
	s.enter()
	defer s.mu.Unlock()

	if sentinel := s.checkSlot("SetDefaultSlotId", slotID); sentinel.IsError() {
		return sentinel
	}

	s.state.DefaultSlot = slotID

	return cellular.Success()
}

// CellularDataFlowType returns the raw flow type code.
// The slot id is not used, the simulator has a single flow type.
func (s *Simulator) CellularDataFlowType(int32) int32 {
	s.enter()
	defer s.mu.Unlock()

	return s.state.FlowType
}

// SetPreferredApn marks the access point as preferred.
// It reports false if no access point has the identifier.
func (s *Simulator) SetPreferredApn(apnID int32) (bool, cellular.ErrorSentinel) {
	s.enter()
	defer s.mu.Unlock()

	if sentinel := s.check("SetPreferredApn"); sentinel.IsError() {
		return false, sentinel
	}

	if apnID < 0 {
		return false, cellular.Failure(cellular.ErrCodeArgument, "apn id is invalid")
	}

	for _, apn := range s.state.Apns {
		if apn.ID == uint32(apnID) {
			s.state.PreferredApn = apnID
			return true, cellular.Success()
		}
	}

	return false, cellular.Success()
}

// DefaultCellularDataSimID returns the SIM of the default slot.
func (s *Simulator) DefaultCellularDataSimID() int32 {
	s.enter()
	defer s.mu.Unlock()

	return s.state.DefaultSlot + 1
}

// QueryApnIDs returns the identifiers of the access points matching the filter.
// Empty filter fields match any value.
func (s *Simulator) QueryApnIDs(filter cellular.NativeApnInfo) ([]uint32, cellular.ErrorSentinel) {
	s.enter()
	defer s.mu.Unlock()

	if sentinel := s.check("QueryApnIds"); sentinel.IsError() {
		return nil, sentinel
	}

	ids := []uint32{}
	for _, apn := range s.state.Apns {
		if apn.matches(filter) {
			ids = append(ids, apn.ID)
		}
	}

	return ids, cellular.Success()
}

// QueryAllApns returns all access points.
func (s *Simulator) QueryAllApns() ([]cellular.NativeApnInfo, cellular.ErrorSentinel) {
	s.enter()
	defer s.mu.Unlock()

	if sentinel := s.check("QueryAllApns"); sentinel.IsError() {
		return nil, sentinel
	}

	apns := make([]cellular.NativeApnInfo, 0, len(s.state.Apns))
	for _, apn := range s.state.Apns {
		apns = append(apns, apn.native())
	}

	return apns, cellular.Success()
}

// ActiveApnName returns the name of the preferred access point while data is enabled.
func (s *Simulator) ActiveApnName() (string, cellular.ErrorSentinel) {
	s.enter()
	defer s.mu.Unlock()

	if sentinel := s.check("GetActiveApnName"); sentinel.IsError() {
		return "", sentinel
	}

	if !s.state.DataEnabled {
		return "", cellular.Success()
	}

	for _, apn := range s.state.Apns {
		if apn.ID == uint32(s.state.PreferredApn) {
			return apn.Name, cellular.Success()
		}
	}

	return "", cellular.Success()
}

// setData toggles cellular data and updates the connection state.
func (s *Simulator) setData(op string, enable bool) cellular.ErrorSentinel {
	s.enter()
	defer s.mu.Unlock()

	if sentinel := s.check(op); sentinel.IsError() {
		return sentinel
	}

	s.state.DataEnabled = enable
	s.state.ConnectionState = int32(cellular.StateDisconnected)
	if enable {
		s.state.ConnectionState = int32(cellular.StateConnected)
	}

	s.logger.Debug().Bool("enabled", enable).Msg("simulator: cellular data toggled")

	return cellular.Success()
}

// setRoaming toggles data roaming on a slot.
func (s *Simulator) setRoaming(op string, slotID int32, enable bool) cellular.ErrorSentinel {
	s.enter()
	defer s.mu.Unlock()

	if sentinel := s.checkSlot(op, slotID); sentinel.IsError() {
		return sentinel
	}

	s.state.Roaming[slotID] = enable

	return cellular.Success()
}

// enter counts the call and locks the state.
// Callers must unlock the state.
func (s *Simulator) enter() {
	s.calls.Inc()
	s.mu.Lock()
}

// check returns the failure for an operation, if the service is unavailable
// or a failure was injected.
func (s *Simulator) check(op string) cellular.ErrorSentinel {
	if s.state.ServiceUnavailable {
		return cellular.Failure(cellular.ErrCodeService, cellular.CodeDescription(cellular.ErrCodeService))
	}

	if failure, ok := s.state.Failures[op]; ok {
		return cellular.Failure(failure.Code, failure.Message)
	}

	return cellular.Success()
}

// checkSlot checks the operation and validates the slot id.
func (s *Simulator) checkSlot(op string, slotID int32) cellular.ErrorSentinel {
	if sentinel := s.check(op); sentinel.IsError() {
		return sentinel
	}

	if slotID < 0 || slotID >= s.state.SlotCount {
		return cellular.Failure(cellular.ErrCodeArgument, "slot id is invalid")
	}

	return cellular.Success()
}
