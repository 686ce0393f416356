package entrypoint

import (
	"reflect"
	"strings"
)

// ParamSpec describes a single parameter of an entry point.
type ParamSpec struct {
	Name string
	Kind Kind
}

// Entry describes a published entry point and its frozen contract.
type Entry struct {
	Name    string
	Doc     string
	Params  []ParamSpec
	Returns Kind

	fn reflect.Value
}

// Arity returns the number of parameters of the entry point.
func (e Entry) Arity() int {
	return len(e.Params)
}

// Signature returns a readable signature of the entry point,
// for example "IsRoamingEnabled(slotId int32) bool".
func (e Entry) Signature() string {
	sb := strings.Builder{}

	sb.WriteString(e.Name)
	sb.WriteString("(")
	for i, param := range e.Params {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(param.Name)
		sb.WriteString(" ")
		sb.WriteString(param.Kind.String())
	}
	sb.WriteString(")")

	if e.Returns != KindVoid {
		sb.WriteString(" ")
		sb.WriteString(e.Returns.String())
	}

	return sb.String()
}

// clone returns a copy of the entry that shares no slices with e.
func (e Entry) clone() Entry {
	params := make([]ParamSpec, len(e.Params))
	copy(params, e.Params)
	e.Params = params

	return e
}
