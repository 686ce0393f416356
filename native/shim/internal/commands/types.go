package commands

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ugorji/go/codec"
)

// The default timeout to stop waiting for a command's result (response from a server).
const CommandReplyTimeout = 30 * time.Second

type (
	// ExecuteFunc describes an external function that is used to execute the command.
	ExecuteFunc func(params []string) (chan CommandResponse, error)

	// OptionMap describes a map of options to a command.
	OptionMap = map[Option]string

	// NoResult describes an empty result.
	NoResult = struct{}

	// RequestID describes a unique ID that is attached to the request (to track the status of the invoked command)
	// by the client.
	RequestID int64
)

// Command describes an entire command and its options.
// T is the return value type of the command.
// If T is of type NoResult, it means the command only returns errors, and no other values.
type Command[T any] struct {
	cmd    string
	optmap OptionMap
}

// CommandResponse is the raw response or result for an invoked command sent from
// the server.
type CommandResponse struct {
	Status string `json:"status"`

	RequestId RequestID    `json:"request_id,omitempty"`
	Error     CommandError `json:"error"`
	Data      codec.Raw    `json:"data"`
}

// CommandError describes an error that was reported by the telephony daemon
// while invoking the command.
type CommandError struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// Error returns a string representation of the underlying error.
func (c CommandError) Error() string {
	sb := strings.Builder{}

	sb.WriteString("daemon error ")
	sb.WriteString(strconv.FormatInt(int64(c.Code), 10))
	sb.WriteString(": ")
	if c.Message == "" {
		sb.WriteString("No information is provided for this error")
	} else {
		sb.WriteString(c.Message)
	}

	return sb.String()
}

// String returns a string representation of a command and its options.
func (c *Command[T]) String() string {
	return strings.Join(c.Slice(), " ")
}

// Slice returns the command words followed by each option and its value.
// Options are ordered by name, and values are kept whole even if they contain spaces.
func (c *Command[T]) Slice() []string {
	params := strings.Fields(c.cmd)

	options := make([]Option, 0, len(c.optmap))
	for opt := range c.optmap {
		options = append(options, opt)
	}
	slices.Sort(options)

	for _, opt := range options {
		params = append(params, opt.String(), c.optmap[opt])
	}

	return params
}

// WithOption appends a single option type and value to the command's option map.
func (c *Command[T]) WithOption(opt Option, value string) *Command[T] {
	if c.optmap == nil {
		c.optmap = make(OptionMap)
	}

	c.optmap[opt] = value

	return c
}

// WithOptions provides a function to append multiple option-value types to the command's option map.
func (c *Command[T]) WithOptions(fn func(OptionMap)) *Command[T] {
	if c.optmap == nil {
		c.optmap = make(OptionMap)
	}

	fn(c.optmap)

	return c
}
