package diag

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Context is a range of text in a source code. It is typically used for
// errors that can be associated with a part of the source code, like parse
// errors.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Variables controlling the style of the culprit. Can be overridden in tests.
var (
	culpritLineBegin   = "\033[1;4m"
	culpritLineEnd     = "\033[m"
	culpritPlaceHolder = "^"
)

// ShowCompact shows the context, with no line break between the source
// position range description and the relevant source excerpt.
func (c *Context) ShowCompact(sourceIndent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	desc := c.Name + ", " + c.lineRange() + " "
	// Extra indent so that following lines line up with the first line.
	descIndent := strings.Repeat(" ", runewidth.StringWidth(desc))
	return desc + c.relevantSource(sourceIndent+descIndent)
}

func (c *Context) checkPosition() error {
	if c.From == -1 {
		return fmt.Errorf("%s, unknown position", c.Name)
	} else if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) lineRange() string {
	beginLine, endLine := c.lines()
	if beginLine == endLine {
		return fmt.Sprintf("line %d:", beginLine)
	}
	return fmt.Sprintf("line %d-%d:", beginLine, endLine)
}

// lines returns the 1-based line numbers that the first and last characters
// of the culprit are on.
func (c *Context) lines() (int, int) {
	begin := strings.Count(c.Source[:c.From], "\n") + 1
	end := begin + strings.Count(strings.TrimSuffix(c.culprit(), "\n"), "\n")
	return begin, end
}

func (c *Context) culprit() string { return c.Source[c.From:c.To] }

// relevantSource returns the culprit with its enclosing line or lines, the
// culprit itself marked up with the culprit markers.
func (c *Context) relevantSource(sourceIndent string) string {
	// Head extends from the culprit to the closest line boundary before it,
	// tail to the closest line boundary after it. A culprit with a trailing
	// newline swallows it instead of taking a tail.
	head := lastLine(c.Source[:c.From])
	culprit := c.culprit()
	var tail string
	if strings.HasSuffix(culprit, "\n") {
		culprit = culprit[:len(culprit)-1]
	} else {
		tail = firstLine(c.Source[c.To:])
	}

	var sb strings.Builder
	sb.WriteString(head)

	if culprit == "" {
		culprit = culpritPlaceHolder
	}
	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(sourceIndent)
		}
		sb.WriteString(culpritLineBegin)
		sb.WriteString(line)
		sb.WriteString(culpritLineEnd)
	}

	sb.WriteString(tail)
	return sb.String()
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	// When s does not contain '\n', LastIndexByte returns -1, which happens
	// to be what we want.
	return s[strings.LastIndexByte(s, '\n')+1:]
}
