package parse

import (
	"testing"

	"src.nutsh.dev/pkg/tt"
)

func TestQuote(t *testing.T) {
	tt.Test(t, tt.Fn("Quote", Quote), tt.Table{
		// Empty string is single-quoted.
		Args("").Rets(`''`),

		// Bareword when possible.
		Args("echo").Rets("echo"),
		Args("x-y:z@h/d").Rets("x-y:z@h/d"),
		Args("foo>bar").Rets("foo>bar"),

		// Single quote when there are special characters.
		Args("a b").Rets(`'a b'`),
		Args(`a"b`).Rets(`'a"b'`),
		Args(`a\b`).Rets(`'a\b'`),
		Args("don't").Rets(`'don'\''t'`),

		// Redirection signs do not survive as barewords.
		Args(">").Rets(`'>'`),
		Args("2>>").Rets(`'2>>'`),
	})
}

func TestQuote_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "echo", "a b", "don't", ">", `a\"b`} {
		quoted := Quote(s)
		line, err := Parse(SourceForTest("x " + quoted))
		if err != nil {
			t.Errorf("Quote(%q) = %q, which does not parse: %v", s, quoted, err)
			continue
		}
		if len(line.Words) != 2 || line.Words[1] != s {
			t.Errorf("Quote(%q) = %q, which parses to %v", s, quoted, line.Words)
		}
	}
}
