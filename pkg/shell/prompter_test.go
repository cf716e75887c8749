package shell

import (
	"io"
	"strings"
	"testing"

	"src.nutsh.dev/pkg/tt"
)

func TestPrompter_ReadLine(t *testing.T) {
	p := NewPrompter(strings.NewReader("a\nb\r\nc"), io.Discard)
	readLine := func() (string, error) { return p.ReadLine() }
	tt.Test(t, tt.Fn("ReadLine", readLine), tt.Table{
		tt.Args().Rets("a", nil),
		tt.Args().Rets("b", nil),
		// The last line has no line ending; it is returned first, and EOF is
		// reported on the next call.
		tt.Args().Rets("c", nil),
		tt.Args().Rets("", io.EOF),
	})
}

func TestPrompter_ReadLineEmptyInput(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), io.Discard)
	if _, err := p.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine -> error %v, want io.EOF", err)
	}
}

func TestPrompter_Display(t *testing.T) {
	var sb strings.Builder
	p := NewPrompter(strings.NewReader(""), &sb)
	p.Display("$ ")
	if sb.String() != "$ " {
		t.Errorf("Display wrote %q, want %q", sb.String(), "$ ")
	}
}
