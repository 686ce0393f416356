package cellular

// ErrorSentinel describes the status reported by an error-reporting native call.
// A Code equal to SuccessCode denotes success, any other code denotes failure.
type ErrorSentinel struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// Success returns a sentinel that reports success.
func Success() ErrorSentinel {
	return ErrorSentinel{Code: SuccessCode, Message: CodeDescription(SuccessCode)}
}

// Failure returns a sentinel that reports a failure with the provided code and message.
func Failure(code int32, message string) ErrorSentinel {
	return ErrorSentinel{Code: code, Message: message}
}

// IsError returns whether the sentinel reports a failure.
func (e ErrorSentinel) IsError() bool {
	return e.Code != SuccessCode
}

// Native describes the function set of the native telephony subsystem.
//
// Methods that return an ErrorSentinel only guarantee a meaningful payload
// when the sentinel reports success. Methods without a sentinel cannot fail.
type Native interface {
	// IsCellularDataEnabled returns whether cellular data is enabled.
	IsCellularDataEnabled() (bool, ErrorSentinel)

	// EnableCellularData enables cellular data.
	EnableCellularData() ErrorSentinel

	// DisableCellularData disables cellular data.
	DisableCellularData() ErrorSentinel

	// DefaultCellularDataSlotID returns the slot used for cellular data.
	DefaultCellularDataSlotID() int32

	// CellularDataState returns the raw connection state code.
	CellularDataState() (int32, ErrorSentinel)

	// DisableCellularDataRoaming disables data roaming on the slot.
	DisableCellularDataRoaming(slotID int32) ErrorSentinel

	// EnableCellularDataRoaming enables data roaming on the slot.
	EnableCellularDataRoaming(slotID int32) ErrorSentinel

	// IsCellularDataRoamingEnabled returns whether data roaming is enabled on the slot.
	IsCellularDataRoamingEnabled(slotID int32) (bool, ErrorSentinel)

	// SetDefaultCellularDataSlotID sets the slot used for cellular data.
	SetDefaultCellularDataSlotID(slotID int32) ErrorSentinel

	// CellularDataFlowType returns the raw flow type code for the slot.
	CellularDataFlowType(slotID int32) int32

	// SetPreferredApn marks the access point as preferred.
	SetPreferredApn(apnID int32) (bool, ErrorSentinel)

	// DefaultCellularDataSimID returns the SIM used for cellular data.
	DefaultCellularDataSimID() int32

	// QueryApnIDs returns the identifiers of the access points matching the filter.
	QueryApnIDs(filter NativeApnInfo) ([]uint32, ErrorSentinel)

	// QueryAllApns returns all known access points.
	QueryAllApns() ([]NativeApnInfo, ErrorSentinel)

	// ActiveApnName returns the name of the active access point.
	ActiveApnName() (string, ErrorSentinel)
}
