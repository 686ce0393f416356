package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/api/errorkinds"
	"github.com/darkhz/celldata/api/marshal"
	ep "github.com/darkhz/celldata/entrypoint"
	"github.com/darkhz/celldata/internal/serde"
)

var titleCase = cases.Title(language.English)

// printWarn prints a warning to the screen.
func printWarn(w io.Writer, message string) {
	message = "[-] " + message

	color.New(color.FgYellow, color.Bold).Fprintln(w, message)
}

// printError prints an error to the screen.
// Native failures are printed with the description of their code.
func printError(w io.Writer, err error) {
	message := "[!] " + err.Error()

	if failure, ok := errorkinds.AsNativeFailure(err); ok {
		message = "[!] " + strconv.FormatInt(int64(failure.Code), 10) + ": " + failure.Message
		if description := cellular.CodeDescription(failure.Code); description != "" {
			message += " (" + description + ")"
		}
	}

	color.New(color.FgRed, color.Bold).Fprintln(w, message)
}

// printEntries prints the name, signature and description of each entry point in aligned columns.
func printEntries(w io.Writer, entries []ep.Entry) {
	var nameWidth, sigWidth int
	for _, entry := range entries {
		nameWidth = max(nameWidth, runewidth.StringWidth(entry.Name))
		sigWidth = max(sigWidth, runewidth.StringWidth(signature(entry)))
	}

	name := color.New(color.FgCyan, color.Bold)
	for _, entry := range entries {
		name.Fprint(w, runewidth.FillRight(entry.Name, nameWidth+2))
		fmt.Fprintln(w, runewidth.FillRight(signature(entry), sigWidth+2)+entry.Doc)
	}
}

// signature returns the signature of an entry point without its name.
func signature(entry ep.Entry) string {
	return strings.TrimPrefix(entry.Signature(), entry.Name)
}

// printResult prints the result of an invoked entry point.
func printResult(w io.Writer, entry ep.Entry, result any) {
	if entry.Returns == ep.KindVoid {
		color.New(color.FgGreen).Fprintln(w, "[+] "+entry.Name+": done")
		return
	}

	switch v := result.(type) {
	case bool:
		c := color.New(color.FgRed)
		if v {
			c = color.New(color.FgGreen)
		}
		c.Fprintln(w, strconv.FormatBool(v))

	case cellular.ConnectionState:
		fmt.Fprintln(w, enumName(v))

	case cellular.FlowType:
		fmt.Fprintln(w, enumName(v))

	case []uint32:
		ids := make([]string, 0, len(v))
		for _, id := range v {
			ids = append(ids, strconv.FormatUint(uint64(id), 10))
		}
		fmt.Fprintln(w, "["+strings.Join(ids, ", ")+"]")

	case []cellular.ApnInfo:
		printApns(w, v)

	case string:
		if v == "" {
			v = "(none)"
		}
		fmt.Fprintln(w, v)

	default:
		fmt.Fprintln(w, v)
	}
}

// printApns prints access point records in aligned columns.
func printApns(w io.Writer, apns []cellular.ApnInfo) {
	header := []string{"NAME", "APN", "MCC", "MNC", "USER", "TYPE", "PROXY", "MMSPROXY"}

	rows := make([][]string, 0, len(apns))
	for _, apn := range apns {
		rows = append(rows, []string{
			apn.ApnName, apn.Apn, apn.Mcc, apn.Mnc,
			optional(apn.User), optional(apn.Type), optional(apn.Proxy), optional(apn.MmsProxy),
		})
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	line := func(row []string) string {
		sb := strings.Builder{}
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
		}

		return strings.TrimRight(sb.String(), " ")
	}

	color.New(color.Bold).Fprintln(w, line(header))
	for _, row := range rows {
		fmt.Fprintln(w, line(row))
	}
}

// printJSON prints the result of an invoked entry point, or its error, as JSON.
func printJSON(w io.Writer, name string, result any, err error) error {
	reply := map[string]any{"op": name}

	switch {
	case err == nil:
		reply["result"] = jsonValue(result)

	default:
		var failure *errorkinds.NativeFailure
		if errors.As(err, &failure) {
			reply["error"] = failure
		} else {
			reply["error"] = map[string]any{"message": err.Error()}
		}
	}

	data, marshalErr := serde.MarshalJson(reply)
	if marshalErr != nil {
		return marshalErr
	}

	_, writeErr := fmt.Fprintln(w, string(data))

	return writeErr
}

// jsonValue converts enumerations to their names and native codes.
func jsonValue(result any) any {
	switch v := result.(type) {
	case cellular.ConnectionState:
		return map[string]any{"name": v.String(), "code": marshal.EncodeConnectionState(v)}

	case cellular.FlowType:
		return map[string]any{"name": v.String(), "code": marshal.EncodeFlowType(v)}
	}

	return result
}

// enumName returns the display name of an enumeration value, for example "Up Down".
func enumName(v fmt.Stringer) string {
	return titleCase.String(strings.ReplaceAll(v.String(), "-", " "))
}

func optional(s *string) string {
	if s == nil {
		return "-"
	}

	return *s
}
