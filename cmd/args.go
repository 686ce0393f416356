package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/api/errorkinds"
	ep "github.com/darkhz/celldata/entrypoint"
	"github.com/darkhz/celldata/internal/serde"
)

// parseArgs converts the textual arguments to the parameter kinds of the entry point.
// Integers are parsed as decimals, and access point records as JSON objects.
func parseArgs(entry ep.Entry, raw []string) ([]any, error) {
	if len(raw) != entry.Arity() {
		return nil, fmt.Errorf("%w: %s expects %d, got %d",
			errorkinds.ErrArgumentCount, entry.Signature(), entry.Arity(), len(raw),
		)
	}

	args := make([]any, 0, len(raw))
	for i, param := range entry.Params {
		arg, err := parseArg(param.Kind, raw[i])
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %q: %s",
				errorkinds.ErrArgumentType, param.Name, err.Error(),
			)
		}

		args = append(args, arg)
	}

	return args, nil
}

// parseArg converts a single textual argument to a value of the kind.
func parseArg(kind ep.Kind, raw string) (any, error) {
	switch kind {
	case ep.KindInt32:
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a 32-bit integer", raw)
		}

		return int32(v), nil

	case ep.KindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a boolean", raw)
		}

		return v, nil

	case ep.KindString:
		return raw, nil

	case ep.KindApnInfo:
		var info cellular.ApnInfo
		if err := serde.UnmarshalJson([]byte(raw), &info); err != nil {
			return nil, fmt.Errorf("'%s' is not an access point record: %w", raw, err)
		}

		return info, nil
	}

	return nil, fmt.Errorf("%s arguments cannot be parsed", kind)
}

// splitLine splits a shell line into words separated by whitespace.
// JSON objects are kept whole, and double quotes group words.
func splitLine(line string) ([]string, error) {
	var (
		words   []string
		current strings.Builder

		depth    int
		inQuotes bool
		escaped  bool
		started  bool
	)

	flush := func() {
		if started {
			words = append(words, current.String())
		}

		current.Reset()
		started = false
	}

	for _, r := range line {
		switch {
		case escaped:
			escaped = false

		case r == '\\' && inQuotes:
			escaped = true

		case r == '"':
			inQuotes = !inQuotes
			if depth == 0 {
				started = true
				continue
			}

		case inQuotes:

		case r == '{':
			depth++

		case r == '}':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced '}' in %q", line)
			}

		case depth == 0 && (r == ' ' || r == '\t'):
			flush()
			continue
		}

		current.WriteRune(r)
		started = true
	}

	if inQuotes || depth != 0 {
		return nil, fmt.Errorf("unterminated argument in %q", line)
	}

	flush()

	return words, nil
}
