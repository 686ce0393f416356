package commands

import (
	"time"

	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/api/errorkinds"
	"github.com/darkhz/celldata/internal/serde"
)

// Cellular data commands.
// IsDataEnabled invokes the "data is-enabled" command.
func IsDataEnabled() *Command[bool] {
	return &Command[bool]{cmd: "data is-enabled"}
}

// EnableData invokes the "data enable" command.
func EnableData() *Command[NoResult] {
	return &Command[NoResult]{cmd: "data enable"}
}

// DisableData invokes the "data disable" command.
func DisableData() *Command[NoResult] {
	return &Command[NoResult]{cmd: "data disable"}
}

// GetDataState invokes the "data state" command.
func GetDataState() *Command[int32] {
	return &Command[int32]{cmd: "data state"}
}

// GetFlowType invokes the "data flow-type" command.
func GetFlowType(slotID int32) *Command[int32] {
	return (&Command[int32]{cmd: "data flow-type"}).WithOption(SlotOption, Int32OptionValue(slotID))
}

// GetDefaultSlot invokes the "data default-slot get" command.
func GetDefaultSlot() *Command[int32] {
	return &Command[int32]{cmd: "data default-slot get"}
}

// SetDefaultSlot invokes the "data default-slot set" command.
func SetDefaultSlot(slotID int32) *Command[NoResult] {
	return (&Command[NoResult]{cmd: "data default-slot set"}).WithOption(SlotOption, Int32OptionValue(slotID))
}

// GetDefaultSim invokes the "data default-sim" command.
func GetDefaultSim() *Command[int32] {
	return &Command[int32]{cmd: "data default-sim"}
}

// Roaming commands.
// EnableRoaming invokes the "roaming enable" command.
func EnableRoaming(slotID int32) *Command[NoResult] {
	return (&Command[NoResult]{cmd: "roaming enable"}).WithOption(SlotOption, Int32OptionValue(slotID))
}

// DisableRoaming invokes the "roaming disable" command.
func DisableRoaming(slotID int32) *Command[NoResult] {
	return (&Command[NoResult]{cmd: "roaming disable"}).WithOption(SlotOption, Int32OptionValue(slotID))
}

// IsRoamingEnabled invokes the "roaming is-enabled" command.
func IsRoamingEnabled(slotID int32) *Command[bool] {
	return (&Command[bool]{cmd: "roaming is-enabled"}).WithOption(SlotOption, Int32OptionValue(slotID))
}

// APN commands.
// SetPreferredApn invokes the "apn set-preferred" command.
func SetPreferredApn(apnID int32) *Command[bool] {
	return (&Command[bool]{cmd: "apn set-preferred"}).WithOption(ApnIDOption, Int32OptionValue(apnID))
}

// QueryApnIDs invokes the "apn query-ids" command.
// Only the non-empty fields of the filter are sent.
func QueryApnIDs(filter cellular.NativeApnInfo) *Command[[]uint32] {
	return (&Command[[]uint32]{cmd: "apn query-ids"}).WithOptions(func(om OptionMap) {
		for opt, value := range map[Option]string{
			ApnNameOption:  filter.ApnName,
			ApnOption:      filter.Apn,
			MccOption:      filter.Mcc,
			MncOption:      filter.Mnc,
			UserOption:     filter.User,
			TypeOption:     filter.Type,
			ProxyOption:    filter.Proxy,
			MmsProxyOption: filter.MmsProxy,
		} {
			if value != "" {
				om[opt] = value
			}
		}
	})
}

// ListApns invokes the "apn list" command.
func ListApns() *Command[[]cellular.NativeApnInfo] {
	return &Command[[]cellular.NativeApnInfo]{cmd: "apn list"}
}

// GetActiveApnName invokes the "apn active-name" command.
func GetActiveApnName() *Command[string] {
	return &Command[string]{cmd: "apn active-name"}
}

// ExecuteWith invokes a command on the server, and listens for and returns the result of the command invocation.
func (c *Command[T]) ExecuteWith(fn ExecuteFunc, timeout ...time.Duration) (T, error) {
	var result T

	replyTimeout := CommandReplyTimeout
	if len(timeout) > 0 && timeout[0] > 0 {
		replyTimeout = timeout[0]
	}

	responseChan, commandErr := fn(c.Slice())
	if commandErr != nil {
		return result, commandErr
	}

	commandErr = errorkinds.ErrSessionStop

	timer := time.NewTimer(replyTimeout)
	defer timer.Stop()

	select {
	case response, ok := <-responseChan:
		if !ok {
			break
		}

		if response.Status == "error" {
			return result, response.Error
		}

		if response.Status == "ok" {
			switch any(result).(type) {
			case NoResult:
				return result, nil
			}

			reply := make(map[string]T, 1)
			if err := serde.UnmarshalJson(response.Data, &reply); err != nil {
				return result, err
			}

			for _, mv := range reply {
				result = mv
			}

			commandErr = nil
		}

	case <-timer.C:
		commandErr = errorkinds.ErrMethodTimeout
	}

	return result, commandErr
}
