// Package progtest provides utilities for testing subprograms.
package progtest

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"src.nutsh.dev/pkg/prog"
	"src.nutsh.dev/pkg/testutil"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exit   int
	stdout output
	stderr output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return fmt.Sprintf("text containing %q", o.content)
	}
	return fmt.Sprintf("%q", o.content)
}

// ThatNutsh returns a new Case with the given CLI arguments.
func ThatNutsh(args ...string) Case {
	return Case{args: append([]string{"nutsh"}, args...)}
}

// WithStdin returns an altered Case that has the given input as stdin.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// have no expectations, just to make the test code more readable.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program
// run to write output to stdout containing the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program
// run to write output to stderr containing the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.args, c.stdin)
			if exit != c.want.exit {
				t.Errorf("got exit code %v, want %v", exit, c.want.exit)
			}
			checkOutput(t, "stdout", stdout, c.want.stdout)
			checkOutput(t, "stderr", stderr, c.want.stderr)
		})
	}
}

func checkOutput(t *testing.T, name, got string, want output) {
	t.Helper()
	ok := got == want.content
	if want.partial {
		ok = strings.Contains(got, want.content)
	}
	if !ok {
		t.Errorf("got %s %q, want %s", name, got, want)
	}
}

// Run runs a Program with the given arguments and stdin, and returns the exit
// code, stdout and stderr.
func Run(p prog.Program, args []string, stdin string) (exit int, stdout, stderr string) {
	r0, w0 := testutil.MustPipe()
	r1, w1 := testutil.MustPipe()
	r2, w2 := testutil.MustPipe()

	// Write the stdin and read the outputs concurrently, since the program
	// may block on any of the pipes if they fill up.
	go func() {
		defer w0.Close()
		w0.WriteString(stdin)
	}()
	stdoutCh := make(chan string, 1)
	go func() {
		stdoutCh <- string(testutil.MustReadAllAndClose(r1))
	}()
	stderrCh := make(chan string, 1)
	go func() {
		stderrCh <- string(testutil.MustReadAllAndClose(r2))
	}()

	exit = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	stdout = <-stdoutCh
	stderr = <-stderrCh
	r0.Close()
	return exit, stdout, stderr
}
