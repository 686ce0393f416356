package cellular

// ConnectionState describes the cellular data connection state.
type ConnectionState int32

// The different cellular data connection states.
const (
	StateUnknown      ConnectionState = -1
	StateDisconnected ConnectionState = 0
	StateConnecting   ConnectionState = 1
	StateConnected    ConnectionState = 2
	StateSuspended    ConnectionState = 3
)

// connectionStateNames holds the names of each connection state.
var connectionStateNames = map[ConnectionState]string{
	StateUnknown:      "unknown",
	StateDisconnected: "disconnected",
	StateConnecting:   "connecting",
	StateConnected:    "connected",
	StateSuspended:    "suspended",
}

// String returns the name of the connection state.
func (c ConnectionState) String() string {
	if name, ok := connectionStateNames[c]; ok {
		return name
	}

	return connectionStateNames[StateUnknown]
}

// FlowType describes the direction of cellular data traffic.
type FlowType int32

// The different cellular data flow types.
const (
	FlowNone    FlowType = 0
	FlowDown    FlowType = 1
	FlowUp      FlowType = 2
	FlowUpDown  FlowType = 3
	FlowDormant FlowType = 4
)

// flowTypeNames holds the names of each flow type.
var flowTypeNames = map[FlowType]string{
	FlowNone:    "none",
	FlowDown:    "down",
	FlowUp:      "up",
	FlowUpDown:  "up-down",
	FlowDormant: "dormant",
}

// String returns the name of the flow type.
func (f FlowType) String() string {
	if name, ok := flowTypeNames[f]; ok {
		return name
	}

	return flowTypeNames[FlowNone]
}
