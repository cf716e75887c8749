package shell

import (
	"bufio"
	"fmt"
	"io"

	"src.nutsh.dev/pkg/strutil"
)

// Prompter is the entire user interface of the interactive mode: it displays
// prompts and reads lines of input. Implementations other than the terminal
// one can be plugged into Interact through InteractConfig; evaluation of the
// lines does not depend on where they came from.
type Prompter interface {
	// Display shows the prompt to the user.
	Display(prompt string)
	// ReadLine reads one line of input, without the line ending. It returns
	// io.EOF when the input ends.
	ReadLine() (string, error)
}

// NewPrompter returns a Prompter that reads from in and writes prompts to
// out.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	return &prompter{bufio.NewReader(in), out}
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *prompter) Display(prompt string) {
	fmt.Fprint(p.out, prompt)
}

// When the input ends in the middle of a line, that line is returned first;
// the next call returns io.EOF.
func (p *prompter) ReadLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return strutil.ChopLineEnding(line), nil
	}
	if err != nil {
		return "", err
	}
	return strutil.ChopLineEnding(line), nil
}
