package bridge_test

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/darkhz/celldata/api/cellular"
)

// fakeNative records the arguments of each native call and returns canned results.
type fakeNative struct {
	calls *atomic.Int64

	enabled     bool
	state       int32
	flowType    int32
	slotID      int32
	simID       int32
	roaming     bool
	preferred   bool
	ids         []uint32
	apns        []cellular.NativeApnInfo
	activeName  string
	failures    map[string]cellular.ErrorSentinel
	lastSlot    int32
	lastApnID   int32
	lastFilter  cellular.NativeApnInfo
	flowTypeArg int32

	mu sync.Mutex
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		calls:    atomic.NewInt64(0),
		failures: make(map[string]cellular.ErrorSentinel),
	}
}

func (f *fakeNative) sentinel(op string) cellular.ErrorSentinel {
	f.calls.Inc()

	if sentinel, ok := f.failures[op]; ok {
		return sentinel
	}

	return cellular.Success()
}

func (f *fakeNative) IsCellularDataEnabled() (bool, cellular.ErrorSentinel) {
	return f.enabled, f.sentinel("IsDataEnabled")
}

func (f *fakeNative) EnableCellularData() cellular.ErrorSentinel {
	return f.sentinel("EnableData")
}

func (f *fakeNative) DisableCellularData() cellular.ErrorSentinel {
	return f.sentinel("DisableData")
}

func (f *fakeNative) DefaultCellularDataSlotID() int32 {
	f.calls.Inc()
	return f.slotID
}

func (f *fakeNative) CellularDataState() (int32, cellular.ErrorSentinel) {
	return f.state, f.sentinel("GetConnectionState")
}

func (f *fakeNative) DisableCellularDataRoaming(slotID int32) cellular.ErrorSentinel {
	f.record(func() { f.lastSlot = slotID })
	return f.sentinel("DisableRoaming")
}

func (f *fakeNative) EnableCellularDataRoaming(slotID int32) cellular.ErrorSentinel {
	f.record(func() { f.lastSlot = slotID })
	return f.sentinel("EnableRoaming")
}

func (f *fakeNative) IsCellularDataRoamingEnabled(slotID int32) (bool, cellular.ErrorSentinel) {
	f.record(func() { f.lastSlot = slotID })
	return f.roaming, f.sentinel("IsRoamingEnabled")
}

func (f *fakeNative) SetDefaultCellularDataSlotID(slotID int32) cellular.ErrorSentinel {
	f.record(func() { f.lastSlot = slotID })
	return f.sentinel("SetDefaultSlotId")
}

func (f *fakeNative) CellularDataFlowType(slotID int32) int32 {
	f.calls.Inc()
	f.record(func() { f.flowTypeArg = slotID })
	return f.flowType
}

func (f *fakeNative) SetPreferredApn(apnID int32) (bool, cellular.ErrorSentinel) {
	f.record(func() { f.lastApnID = apnID })
	return f.preferred, f.sentinel("SetPreferredApn")
}

func (f *fakeNative) DefaultCellularDataSimID() int32 {
	f.calls.Inc()
	return f.simID
}

func (f *fakeNative) QueryApnIDs(filter cellular.NativeApnInfo) ([]uint32, cellular.ErrorSentinel) {
	f.record(func() { f.lastFilter = filter })
	return f.ids, f.sentinel("QueryApnIds")
}

func (f *fakeNative) QueryAllApns() ([]cellular.NativeApnInfo, cellular.ErrorSentinel) {
	return f.apns, f.sentinel("QueryAllApns")
}

func (f *fakeNative) ActiveApnName() (string, cellular.ErrorSentinel) {
	return f.activeName, f.sentinel("GetActiveApnName")
}

func (f *fakeNative) record(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fn()
}
