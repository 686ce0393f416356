package simulator

import (
	"context"
	"slices"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fctx"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/knadh/koanf/parsers/hjson"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/api/errorkinds"
)

// State describes the state of the simulated telephony subsystem.
type State struct {
	DataEnabled        bool               `koanf:"data-enabled"`
	ConnectionState    int32              `koanf:"connection-state"`
	FlowType           int32              `koanf:"flow-type"`
	SlotCount          int32              `koanf:"slot-count"`
	DefaultSlot        int32              `koanf:"default-slot"`
	Roaming            []bool             `koanf:"roaming"`
	PreferredApn       int32              `koanf:"preferred-apn"`
	Apns               []Apn              `koanf:"apns"`
	ServiceUnavailable bool               `koanf:"service-unavailable"`
	Failures           map[string]Failure `koanf:"failures"`
}

// Apn describes a simulated access point.
type Apn struct {
	ID       uint32 `koanf:"id"`
	Name     string `koanf:"name"`
	Apn      string `koanf:"apn"`
	Mcc      string `koanf:"mcc"`
	Mnc      string `koanf:"mnc"`
	User     string `koanf:"user"`
	Type     string `koanf:"type"`
	Proxy    string `koanf:"proxy"`
	MmsProxy string `koanf:"mmsproxy"`
}

// Failure describes a failure that is injected into a simulated operation.
type Failure struct {
	Code    int32  `koanf:"code"`
	Message string `koanf:"message"`
}

// DefaultState returns a simulated subsystem with two slots and one access point.
func DefaultState() State {
	return State{
		ConnectionState: int32(cellular.StateDisconnected),
		FlowType:        int32(cellular.FlowNone),
		SlotCount:       2,
		PreferredApn:    1,
		Apns: []Apn{
			{
				ID:   1,
				Name: "cmnet",
				Apn:  "cmnet",
				Mcc:  "460",
				Mnc:  "00",
				Type: "default",
			},
		},
	}
}

// LoadState loads a simulated state from an HJSON file.
// Keys absent from the file keep their default values.
func LoadState(path string) (State, error) {
	state := DefaultState()

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), hjson.Parser()); err != nil {
		return state, fault.Wrap(err,
			fctx.With(context.Background(), "error_at", "state-load", "path", path),
			ftag.With(ftag.InvalidArgument),
			fmsg.With("Cannot load the simulator state file"),
		)
	}

	if err := k.UnmarshalWithConf("", &state, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return state, fault.Wrap(errorkinds.ErrStateDataParse,
			fctx.With(context.Background(), "error_at", "state-unmarshal", "path", path),
			ftag.With(ftag.InvalidArgument),
			fmsg.With(err.Error()),
		)
	}

	state.normalize()

	return state, nil
}

// clone returns a deep copy of the state.
func (s State) clone() State {
	s.Roaming = slices.Clone(s.Roaming)
	s.Apns = slices.Clone(s.Apns)

	failures := make(map[string]Failure, len(s.Failures))
	for op, failure := range s.Failures {
		failures[op] = failure
	}
	s.Failures = failures

	return s
}

// normalize adjusts the roaming list to the number of slots.
func (s *State) normalize() {
	if s.SlotCount < 0 {
		s.SlotCount = 0
	}

	roaming := make([]bool, s.SlotCount)
	copy(roaming, s.Roaming)
	s.Roaming = roaming
}

// native converts a simulated access point to a native record.
func (a Apn) native() cellular.NativeApnInfo {
	return cellular.NativeApnInfo{
		ApnName:  a.Name,
		Apn:      a.Apn,
		Mcc:      a.Mcc,
		Mnc:      a.Mnc,
		User:     a.User,
		Type:     a.Type,
		Proxy:    a.Proxy,
		MmsProxy: a.MmsProxy,
	}
}

// matches returns whether every non-empty field of the filter equals the access point's field.
func (a Apn) matches(filter cellular.NativeApnInfo) bool {
	record := a.native()

	for _, pair := range [][2]string{
		{filter.ApnName, record.ApnName},
		{filter.Apn, record.Apn},
		{filter.Mcc, record.Mcc},
		{filter.Mnc, record.Mnc},
		{filter.User, record.User},
		{filter.Type, record.Type},
		{filter.Proxy, record.Proxy},
		{filter.MmsProxy, record.MmsProxy},
	} {
		if pair[0] != "" && pair[0] != pair[1] {
			return false
		}
	}

	return true
}
