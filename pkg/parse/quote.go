package parse

import "strings"

// Quote returns a representation of s that parses back to s as a single word.
// If s is a valid bareword that does not spell a redirection sign, it is
// returned as is; otherwise it is quoted with single quotes.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	bare := true
	for _, r := range s {
		if !allowedInBareword(r) {
			bare = false
			break
		}
	}
	if bare {
		if _, _, isRedir := parseRedirSign(s, true); !isRedir {
			return s
		}
	}
	return quoteSingle(s)
}

func allowedInBareword(r rune) bool {
	return !isSpace(r) && r != '\'' && r != '"' && r != '\\'
}

func quoteSingle(s string) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, r := range s {
		if r == '\'' {
			sb.WriteString(`'\''`)
		} else {
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}
