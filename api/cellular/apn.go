package cellular

// ApnInfo holds an access point record as seen by the managed runtime.
// The optional fields are nil when absent.
type ApnInfo struct {
	// ApnName holds the display name of the access point.
	ApnName string `json:"apnName"`

	// Apn holds the access point name used to attach to the network.
	Apn string `json:"apn"`

	// Mcc holds the mobile country code.
	Mcc string `json:"mcc"`

	// Mnc holds the mobile network code.
	Mnc string `json:"mnc"`

	User     *string `json:"user,omitempty"`
	Type     *string `json:"type,omitempty"`
	Proxy    *string `json:"proxy,omitempty"`
	MmsProxy *string `json:"mmsproxy,omitempty"`
}

// NativeApnInfo holds an access point record as exchanged with the native subsystem.
// Every field is always present, absence is represented by an empty string.
type NativeApnInfo struct {
	ApnName  string `json:"apnName"`
	Apn      string `json:"apn"`
	Mcc      string `json:"mcc"`
	Mnc      string `json:"mnc"`
	User     string `json:"user"`
	Type     string `json:"type"`
	Proxy    string `json:"proxy"`
	MmsProxy string `json:"mmsproxy"`
}

// Optional returns a present optional value holding s.
func Optional(s string) *string {
	return &s
}
