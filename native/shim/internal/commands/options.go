package commands

import "strconv"

// Option describes an option to a command.
type Option string

// The various types of options.
const (
	SlotOption     Option = "--slot"
	ApnIDOption    Option = "--apn-id"
	ApnNameOption  Option = "--apn-name"
	ApnOption      Option = "--apn"
	MccOption      Option = "--mcc"
	MncOption      Option = "--mnc"
	UserOption     Option = "--user"
	TypeOption     Option = "--type"
	ProxyOption    Option = "--proxy"
	MmsProxyOption Option = "--mms-proxy"
)

// String returns a string representation of the option.
func (a Option) String() string {
	return string(a)
}

// Int32OptionValue returns the decimal representation of an integer option value.
func Int32OptionValue(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
