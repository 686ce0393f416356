package entrypoint

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/rs/zerolog"

	"github.com/darkhz/celldata/api/errorkinds"
)

var errorType = reflect.TypeFor[error]()

// Builder collects entry points and validates them before building a Table.
// Registration errors are accumulated and reported by Build.
type Builder struct {
	entries map[string]Entry
	order   []string
	errs    []error

	logger zerolog.Logger
}

// NewBuilder returns a new entry point builder.
func NewBuilder(logger zerolog.Logger) *Builder {
	return &Builder{
		entries: make(map[string]Entry),
		logger:  logger,
	}
}

// Register adds an entry point named name.
//
// The handler must be a function whose parameters match params one-to-one,
// and which returns (T, error) where T is the Go type of ret, or only error
// if ret is KindVoid.
func (b *Builder) Register(name, doc string, params []ParamSpec, ret Kind, handler any) *Builder {
	entry := Entry{
		Name:    name,
		Doc:     doc,
		Params:  params,
		Returns: ret,
	}

	if err := b.validate(&entry, handler); err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", name, err))
		return b
	}

	b.entries[name] = entry.clone()
	b.order = append(b.order, name)

	return b
}

// Build validates all registered entry points and returns an immutable table.
func (b *Builder) Build() (*Table, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	if len(b.entries) == 0 {
		return nil, errorkinds.ErrEmptyEntryTable
	}

	entries := make(map[string]Entry, len(b.entries))
	for name, entry := range b.entries {
		entries[name] = entry.clone()
	}

	names := make([]string, len(b.order))
	copy(names, b.order)

	b.logger.Debug().Int("entries", len(entries)).Msg("entry point table built")

	return &Table{entries: entries, names: names, logger: b.logger}, nil
}

// validate checks the entry against the handler's signature.
func (b *Builder) validate(entry *Entry, handler any) error {
	if strings.TrimSpace(entry.Name) == "" {
		return fmt.Errorf("%w: empty name", errorkinds.ErrInvalidEntry)
	}

	if _, exists := b.entries[entry.Name]; exists {
		return errorkinds.ErrDuplicateEntry
	}

	if handler == nil {
		return fmt.Errorf("%w: nil handler", errorkinds.ErrInvalidEntry)
	}

	fn := reflect.ValueOf(handler)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return fmt.Errorf("%w: handler is not a function", errorkinds.ErrInvalidEntry)
	}

	typ := fn.Type()
	if typ.IsVariadic() || typ.NumIn() != len(entry.Params) {
		return fmt.Errorf("%w: handler takes %d, declared %d",
			errorkinds.ErrArityMismatch, typ.NumIn(), len(entry.Params),
		)
	}

	for i, param := range entry.Params {
		if !param.Kind.Valid() || param.Kind == KindVoid {
			return fmt.Errorf("%w: parameter %q has kind %s",
				errorkinds.ErrKindMismatch, param.Name, param.Kind,
			)
		}

		if typ.In(i) != param.Kind.Type() {
			return fmt.Errorf("%w: parameter %q is %s, declared %s",
				errorkinds.ErrKindMismatch, param.Name, typ.In(i), param.Kind,
			)
		}
	}

	if !entry.Returns.Valid() {
		return fmt.Errorf("%w: invalid return kind", errorkinds.ErrKindMismatch)
	}

	switch entry.Returns {
	case KindVoid:
		if typ.NumOut() != 1 || typ.Out(0) != errorType {
			return fmt.Errorf("%w: void handler must return only error", errorkinds.ErrKindMismatch)
		}

	default:
		if typ.NumOut() != 2 || typ.Out(1) != errorType {
			return fmt.Errorf("%w: handler must return (%s, error)", errorkinds.ErrKindMismatch, entry.Returns)
		}

		if typ.Out(0) != entry.Returns.Type() {
			return fmt.Errorf("%w: handler returns %s, declared %s",
				errorkinds.ErrKindMismatch, typ.Out(0), entry.Returns,
			)
		}
	}

	entry.fn = fn

	return nil
}
