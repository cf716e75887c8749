// Package parse implements the nutsh parser.
//
// The grammar is word oriented. A line of source code is a sequence of words
// separated by whitespace, with quoting rules close to those of POSIX shells.
// A bare word that spells a redirection sign forms a redirection together
// with the word that follows it; all other words make up the command name and
// its arguments.
package parse

import (
	"strings"
)

// Line is the result of parsing one line of source code. Words contains the
// command name and its arguments; redirections are extracted into Redirs in
// the order they appear.
type Line struct {
	Words  []string
	Redirs []Redir
}

// Redir represents a redirection.
type Redir struct {
	FD     int
	Mode   RedirMode
	Target string
}

// RedirMode records the mode of a redirection.
type RedirMode int

// Possible values for RedirMode.
const (
	BadRedirMode RedirMode = iota
	Write
	Append
)

// Parse parses one line of source code. The returned Line contains what could
// be parsed even if the error is non-nil. A non-nil error is always an
// *Error.
func Parse(src Source) (Line, error) {
	ps := &parser{srcName: src.Name, src: src.Code}
	line := parseLine(ps)
	return line, ps.assembleError()
}

// Errors.
var (
	errStringUnterminated = newError("string not terminated")
	errShouldBeEscaped    = newError("", "a character after backslash")
	errShouldBeFilename   = newError("", "a filename after redirection sign")
)

func parseLine(ps *parser) Line {
	var line Line
	for {
		skipSpaces(ps)
		if ps.peek() == eof {
			return line
		}
		word, bare := parseWord(ps)
		if fd, mode, ok := parseRedirSign(word, bare); ok {
			skipSpaces(ps)
			if ps.peek() == eof {
				ps.error(errShouldBeFilename)
				return line
			}
			target, _ := parseWord(ps)
			line.Redirs = append(line.Redirs, Redir{fd, mode, target})
		} else {
			line.Words = append(line.Words, word)
		}
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func skipSpaces(ps *parser) {
	for isSpace(ps.peek()) {
		ps.next()
	}
}

// parseWord parses a word made of bare characters and quoted segments.
// Adjacent segments concatenate into a single word, so 'a'"b"c parses to the
// word abc. The bare return value is true if no quoting of any form occurred;
// only a bare word can act as a redirection sign.
func parseWord(ps *parser) (text string, bare bool) {
	var sb strings.Builder
	bare = true
	for {
		switch r := ps.peek(); {
		case r == eof || isSpace(r):
			return sb.String(), bare
		case r == '\'':
			bare = false
			parseSingleQuoted(ps, &sb)
		case r == '"':
			bare = false
			parseDoubleQuoted(ps, &sb)
		case r == '\\':
			// A backslash preserves the next character literally, whatever
			// it is.
			bare = false
			ps.next()
			if next := ps.next(); next == eof {
				ps.error(errShouldBeEscaped)
				return sb.String(), bare
			} else {
				sb.WriteRune(next)
			}
		default:
			ps.next()
			sb.WriteRune(r)
		}
	}
}

// Single quotes preserve every character literally. There is no way to write
// a single quote inside single quotes; use '\'' to concatenate one in.
func parseSingleQuoted(ps *parser, sb *strings.Builder) {
	ps.next()
	for {
		switch r := ps.next(); r {
		case eof:
			ps.error(errStringUnterminated)
			return
		case '\'':
			return
		default:
			sb.WriteRune(r)
		}
	}
}

// Inside double quotes, a backslash escapes ", \ and $; before any other
// character it stands for itself and is preserved.
func parseDoubleQuoted(ps *parser, sb *strings.Builder) {
	ps.next()
	for {
		switch r := ps.next(); r {
		case eof:
			ps.error(errStringUnterminated)
			return
		case '"':
			return
		case '\\':
			switch next := ps.next(); next {
			case '"', '\\', '$':
				sb.WriteRune(next)
			case eof:
				ps.error(errStringUnterminated)
				return
			default:
				sb.WriteByte('\\')
				sb.WriteRune(next)
			}
		default:
			sb.WriteRune(r)
		}
	}
}

// parseRedirSign determines whether a bare word is a redirection sign, and if
// so, which file descriptor and mode it designates. Only stdout and stderr
// can be redirected; a sign without an explicit file descriptor redirects
// stdout.
func parseRedirSign(word string, bare bool) (fd int, mode RedirMode, ok bool) {
	if !bare {
		return 0, BadRedirMode, false
	}
	rest := word
	fd = 1
	if rest != "" && (rest[0] == '1' || rest[0] == '2') {
		fd = int(rest[0] - '0')
		rest = rest[1:]
	}
	switch rest {
	case ">":
		return fd, Write, true
	case ">>":
		return fd, Append, true
	}
	return 0, BadRedirMode, false
}
