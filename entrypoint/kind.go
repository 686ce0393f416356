package entrypoint

import (
	"reflect"

	"github.com/darkhz/celldata/api/cellular"
)

// Kind describes the managed type of a parameter or return value.
type Kind int

// The different managed kinds.
const (
	KindVoid Kind = iota
	KindBool
	KindInt32
	KindString
	KindConnectionState
	KindFlowType
	KindApnInfo
	KindApnInfoList
	KindUint32List
)

// kindInfo holds the display name and Go type of a kind.
type kindInfo struct {
	name string
	typ  reflect.Type
}

// kinds holds the information for each kind.
// KindVoid has no Go type.
var kinds = map[Kind]kindInfo{
	KindVoid:            {"void", nil},
	KindBool:            {"bool", reflect.TypeFor[bool]()},
	KindInt32:           {"int32", reflect.TypeFor[int32]()},
	KindString:          {"string", reflect.TypeFor[string]()},
	KindConnectionState: {"ConnectionState", reflect.TypeFor[cellular.ConnectionState]()},
	KindFlowType:        {"FlowType", reflect.TypeFor[cellular.FlowType]()},
	KindApnInfo:         {"ApnInfo", reflect.TypeFor[cellular.ApnInfo]()},
	KindApnInfoList:     {"[]ApnInfo", reflect.TypeFor[[]cellular.ApnInfo]()},
	KindUint32List:      {"[]uint32", reflect.TypeFor[[]uint32]()},
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}

	return "invalid"
}

// Valid returns whether the kind is known.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Type returns the Go type that carries values of the kind.
func (k Kind) Type() reflect.Type {
	return kinds[k].typ
}

// Accepts returns whether v is a value of the kind.
func (k Kind) Accepts(v any) bool {
	typ := k.Type()
	if typ == nil || v == nil {
		return false
	}

	return reflect.TypeOf(v) == typ
}
