package parse

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"src.nutsh.dev/pkg/diag"
)

// parser maintains some mutable states of parsing.
//
// NOTE: The src member is assumed to be valid UTF-8.
type parser struct {
	srcName string
	src     string
	pos     int
	errors  []*diag.Error
}

const eof rune = -1

func (ps *parser) peek() rune {
	if ps.pos == len(ps.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(ps.src[ps.pos:])
	return r
}

func (ps *parser) next() rune {
	if ps.pos == len(ps.src) {
		return eof
	}
	r, s := utf8.DecodeRuneInString(ps.src[ps.pos:])
	ps.pos += s
	return r
}

func (ps *parser) errorp(r diag.Ranger, e error) {
	err := &diag.Error{
		Type:    "parse error",
		Message: e.Error(),
		Context: *diag.NewContext(ps.srcName, ps.src, r),
	}
	ps.errors = append(ps.errors, err)
}

// error emits an error spanning the character the parser is looking at, or a
// point at the end of the source if the parser is at the end.
func (ps *parser) error(e error) {
	if ps.pos == len(ps.src) {
		ps.errorp(diag.PointRanging(ps.pos), e)
		return
	}
	ps.errorp(diag.Ranging{From: ps.pos, To: ps.pos + 1}, e)
}

func (ps *parser) assembleError() error {
	if len(ps.errors) > 0 {
		return &Error{ps.errors}
	}
	return nil
}

func newError(text string, shouldbe ...string) error {
	if len(shouldbe) == 0 {
		return errors.New(text)
	}
	var buf bytes.Buffer
	if len(text) > 0 {
		buf.WriteString(text + ", ")
	}
	buf.WriteString("should be " + shouldbe[0])
	for i, opt := range shouldbe[1:] {
		if i == len(shouldbe)-2 {
			buf.WriteString(" or ")
		} else {
			buf.WriteString(", ")
		}
		buf.WriteString(opt)
	}
	return errors.New(buf.String())
}
