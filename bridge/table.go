package bridge

import (
	"github.com/rs/zerolog"

	"github.com/darkhz/celldata/api/cellular"
	ep "github.com/darkhz/celldata/entrypoint"
)

// The published entry point names.
const (
	OpIsDataEnabled      = "IsDataEnabled"
	OpEnableData         = "EnableData"
	OpDisableData        = "DisableData"
	OpGetDefaultSlotID   = "GetDefaultSlotId"
	OpGetConnectionState = "GetConnectionState"
	OpDisableRoaming     = "DisableRoaming"
	OpEnableRoaming      = "EnableRoaming"
	OpIsRoamingEnabled   = "IsRoamingEnabled"
	OpSetDefaultSlotID   = "SetDefaultSlotId"
	OpGetFlowType        = "GetFlowType"
	OpSetPreferredApn    = "SetPreferredApn"
	OpGetDefaultSimID    = "GetDefaultSimId"
	OpQueryApnIDs        = "QueryApnIds"
	OpQueryAllApns       = "QueryAllApns"
	OpGetActiveApnName   = "GetActiveApnName"
)

var (
	slotParam   = []ep.ParamSpec{{Name: "slotId", Kind: ep.KindInt32}}
	apnIDParam  = []ep.ParamSpec{{Name: "apnId", Kind: ep.KindInt32}}
	filterParam = []ep.ParamSpec{{Name: "filter", Kind: ep.KindApnInfo}}
)

// NewTable builds the entry point table for a native subsystem.
func NewTable(native cellular.Native, logger zerolog.Logger) (*ep.Table, error) {
	return Register(ep.NewBuilder(logger), NewHandlers(native, logger)).Build()
}

// Register registers every operation handler into the builder.
func Register(b *ep.Builder, h *Handlers) *ep.Builder {
	return b.
		Register(OpIsDataEnabled, "Check whether cellular data is enabled.", nil, ep.KindBool, h.IsDataEnabled).
		Register(OpEnableData, "Enable cellular data.", nil, ep.KindVoid, h.EnableData).
		Register(OpDisableData, "Disable cellular data.", nil, ep.KindVoid, h.DisableData).
		Register(OpGetDefaultSlotID, "Get the default cellular data slot.", nil, ep.KindInt32, h.GetDefaultSlotID).
		Register(OpGetConnectionState, "Get the cellular data connection state.", nil, ep.KindConnectionState, h.GetConnectionState).
		Register(OpDisableRoaming, "Disable data roaming on a slot.", slotParam, ep.KindVoid, h.DisableRoaming).
		Register(OpEnableRoaming, "Enable data roaming on a slot.", slotParam, ep.KindVoid, h.EnableRoaming).
		Register(OpIsRoamingEnabled, "Check whether data roaming is enabled on a slot.", slotParam, ep.KindBool, h.IsRoamingEnabled).
		Register(OpSetDefaultSlotID, "Set the default cellular data slot.", slotParam, ep.KindVoid, h.SetDefaultSlotID).
		Register(OpGetFlowType, "Get the cellular data flow type of a slot.", slotParam, ep.KindFlowType, h.GetFlowType).
		Register(OpSetPreferredApn, "Set the preferred access point.", apnIDParam, ep.KindBool, h.SetPreferredApn).
		Register(OpGetDefaultSimID, "Get the default cellular data SIM.", nil, ep.KindInt32, h.GetDefaultSimID).
		Register(OpQueryApnIDs, "Query access point identifiers by a partial record.", filterParam, ep.KindUint32List, h.QueryApnIDs).
		Register(OpQueryAllApns, "Query all access points.", nil, ep.KindApnInfoList, h.QueryAllApns).
		Register(OpGetActiveApnName, "Get the name of the active access point.", nil, ep.KindString, h.GetActiveApnName)
}
