package cellular

// SuccessCode is the only native code that denotes success.
const SuccessCode int32 = 8300000

// The public native error codes.
const (
	ErrCodeArgument            int32 = 8300001
	ErrCodeService             int32 = 8300002
	ErrCodeSystem              int32 = 8300003
	ErrCodeNoSimCard           int32 = 8300004
	ErrCodeAirplaneModeOn      int32 = 8300005
	ErrCodeNetworkNotInService int32 = 8300006
	ErrCodeUnknown             int32 = 8300999
	ErrCodeSimNotActive        int32 = 8301001
	ErrCodeSimOperation        int32 = 8301002
	ErrCodeOperatorConfig      int32 = 8301003
	ErrCodePermissionDenied    int32 = 201
	ErrCodeIllegalSystemAPI    int32 = 202
)

// codeMap holds a description for each public native code.
var codeMap = map[int32]string{
	SuccessCode:                "Success",
	ErrCodeArgument:            "The input parameter value is out of range",
	ErrCodeService:             "Operation failed. Cannot connect to service",
	ErrCodeSystem:              "System internal error",
	ErrCodeNoSimCard:           "Do not have sim card",
	ErrCodeAirplaneModeOn:      "Airplane mode is on",
	ErrCodeNetworkNotInService: "Network not in service",
	ErrCodeUnknown:             "Unknown error code",
	ErrCodeSimNotActive:        "SIM card is not activated",
	ErrCodeSimOperation:        "SIM card operation error",
	ErrCodeOperatorConfig:      "Operator config error",
	ErrCodePermissionDenied:    "Permission verification failed",
	ErrCodeIllegalSystemAPI:    "Non-system applications use system APIs",
}

// CodeDescription returns the description of a native code.
// Unknown codes return an empty string.
func CodeDescription(code int32) string {
	return codeMap[code]
}
