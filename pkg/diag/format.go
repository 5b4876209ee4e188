package diag

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Format selects how Write renders diagnostics.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
)

// WriteOptions configures Write.
type WriteOptions struct {
	Format Format
	Color  bool
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	noteColor    = color.New(color.FgCyan)
	locColor     = color.New(color.Bold)
)

// Write renders diagnostics to w.
//
// Pretty output is one line per diagnostic:
//
//	<file>:<line>:<col>: <severity>: <message> [<kind>]
//
// JSON output is an array of Diagnostic objects.
func Write(w io.Writer, diags []Diagnostic, opts WriteOptions) error {
	if opts.Format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if diags == nil {
			diags = []Diagnostic{}
		}
		return enc.Encode(diags)
	}

	for _, d := range diags {
		loc := d.Location.String()
		sev := d.Severity.String()
		if opts.Color {
			loc = locColor.Sprint(loc)
			sev = severityColor(d.Severity).Sprint(sev)
		}
		if _, err := fmt.Fprintf(w, "%s: %s: %s [%s]\n", loc, sev, d.Message, d.Kind); err != nil {
			return err
		}
	}
	return nil
}

func severityColor(s Severity) *color.Color {
	switch s {
	case SevError:
		return errorColor
	case SevWarning:
		return warningColor
	default:
		return noteColor
	}
}
