package marshal

import "github.com/darkhz/celldata/api/cellular"

// DecodeConnectionState converts a native connection state code.
// Codes outside the known range decode to StateUnknown.
func DecodeConnectionState(code int32) cellular.ConnectionState {
	switch cellular.ConnectionState(code) {
	case cellular.StateDisconnected,
		cellular.StateConnecting,
		cellular.StateConnected,
		cellular.StateSuspended:
		return cellular.ConnectionState(code)
	}

	return cellular.StateUnknown
}

// EncodeConnectionState converts a connection state to its native code.
func EncodeConnectionState(state cellular.ConnectionState) int32 {
	return int32(state)
}

// DecodeFlowType converts a native flow type code.
// Codes outside the known range decode to FlowNone.
func DecodeFlowType(code int32) cellular.FlowType {
	switch cellular.FlowType(code) {
	case cellular.FlowDown,
		cellular.FlowUp,
		cellular.FlowUpDown,
		cellular.FlowDormant:
		return cellular.FlowType(code)
	}

	return cellular.FlowNone
}

// EncodeFlowType converts a flow type to its native code.
func EncodeFlowType(flow cellular.FlowType) int32 {
	return int32(flow)
}
