package parse

import (
	"fmt"
	"strings"

	"src.nutsh.dev/pkg/diag"
)

// Error stores multiple underlying parse errors and can pretty-print them.
type Error struct {
	Entries []*diag.Error
}

// GetError returns an *Error if the given error is one. Otherwise it returns
// nil.
func GetError(e error) *Error {
	if er, ok := e.(*Error); ok {
		return er
	}
	return nil
}

// Error returns a plain text representation of the error.
func (er *Error) Error() string {
	switch len(er.Entries) {
	case 0:
		return "no parse error"
	case 1:
		return er.Entries[0].Error()
	default:
		var sb strings.Builder
		sb.WriteString("multiple parse errors: ")
		for i, e := range er.Entries {
			if i > 0 {
				sb.WriteString("; ")
			}
			fmt.Fprintf(&sb, "%d-%d: %s", e.Context.From, e.Context.To, e.Message)
		}
		return sb.String()
	}
}

// Show shows the error.
func (er *Error) Show(indent string) string {
	switch len(er.Entries) {
	case 0:
		return "no parse error"
	case 1:
		return er.Entries[0].Show(indent)
	default:
		var sb strings.Builder
		sb.WriteString("Multiple parse errors:")
		for _, e := range er.Entries {
			sb.WriteString("\n" + indent + "  ")
			fmt.Fprintf(&sb, "\033[31;1m%s\033[m\n", e.Message)
			sb.WriteString(indent + "    ")
			sb.WriteString(e.Context.ShowCompact(indent + "    "))
		}
		return sb.String()
	}
}
