package entrypoint

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/darkhz/celldata/api/errorkinds"
)

// Table is an immutable mapping of entry point names to handlers.
// It is safe for concurrent use.
type Table struct {
	entries map[string]Entry
	names   []string

	logger zerolog.Logger
}

// Lookup returns the entry point registered under name.
func (t *Table) Lookup(name string) (Entry, bool) {
	entry, ok := t.entries[name]
	if !ok {
		return Entry{}, false
	}

	return entry.clone(), true
}

// Names returns the sorted list of entry point names.
func (t *Table) Names() []string {
	names := slices.Clone(t.names)
	slices.Sort(names)

	return names
}

// Entries returns all entry points in registration order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.names))
	for _, name := range t.names {
		entries = append(entries, t.entries[name].clone())
	}

	return entries
}

// Len returns the number of entry points.
func (t *Table) Len() int {
	return len(t.entries)
}

// Invoke calls the entry point named name with args.
//
// A nil result is returned for void entry points. Errors returned by
// the handler are passed through unchanged.
func (t *Table) Invoke(name string, args ...any) (any, error) {
	entry, ok := t.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errorkinds.ErrUnknownOperation, name)
	}

	if len(args) != len(entry.Params) {
		return nil, fmt.Errorf("%w: %s expects %d, got %d",
			errorkinds.ErrArgumentCount, name, len(entry.Params), len(args),
		)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		param := entry.Params[i]
		if !param.Kind.Accepts(arg) {
			return nil, fmt.Errorf("%w: %s parameter %q expects %s, got %T",
				errorkinds.ErrArgumentType, name, param.Name, param.Kind, arg,
			)
		}

		in[i] = reflect.ValueOf(arg)
	}

	var callID string
	if event := t.logger.Debug(); event.Enabled() {
		callID = uuid.NewString()
		event.Str("op", name).Str("call_id", callID).Msg("invoke")
	}

	out := entry.fn.Call(in)

	var result any
	errValue := out[len(out)-1]
	if len(out) == 2 {
		result = out[0].Interface()
	}

	if !errValue.IsNil() {
		err := errValue.Interface().(error)
		t.logger.Debug().Str("op", name).Str("call_id", callID).Err(err).Msg("invoke failed")

		return nil, err
	}

	return result, nil
}
