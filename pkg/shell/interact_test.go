package shell

import (
	"io"
	"os"
	"reflect"
	"strings"
	"testing"

	"src.nutsh.dev/pkg/env"
	"src.nutsh.dev/pkg/eval"
	"src.nutsh.dev/pkg/store"
	"src.nutsh.dev/pkg/testutil"
)

// runInteract runs Interact with the given stdin, and returns its exit
// status along with what it wrote to stdout and stderr.
func runInteract(cfg *InteractConfig, stdin string) (exit int, stdout, stderr string) {
	r0, w0 := testutil.MustPipe()
	r1, w1 := testutil.MustPipe()
	r2, w2 := testutil.MustPipe()
	go func() {
		defer w0.Close()
		w0.WriteString(stdin)
	}()
	stdoutCh := make(chan string, 1)
	go func() { stdoutCh <- string(testutil.MustReadAllAndClose(r1)) }()
	stderrCh := make(chan string, 1)
	go func() { stderrCh <- string(testutil.MustReadAllAndClose(r2)) }()

	exit = Interact([3]*os.File{r0, w1, w2}, cfg)
	w1.Close()
	w2.Close()
	stdout = <-stdoutCh
	stderr = <-stderrCh
	r0.Close()
	return exit, stdout, stderr
}

func TestInteract_SingleCommand(t *testing.T) {
	exit, stdout, stderr := runInteract(&InteractConfig{}, "echo hello\n")
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if stdout != "hello\n" {
		t.Errorf("stdout = %q, want %q", stdout, "hello\n")
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want none", stderr)
	}
}

func TestInteract_Exit(t *testing.T) {
	exit, stdout, _ := runInteract(&InteractConfig{}, "exit 4\necho never\n")
	if exit != 4 {
		t.Errorf("exit = %d, want 4", exit)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want none", stdout)
	}
}

func TestInteract_ParseErrorDoesNotStopLoop(t *testing.T) {
	exit, stdout, stderr := runInteract(&InteractConfig{}, "echo 'bad\necho ok\n")
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if stdout != "ok\n" {
		t.Errorf("stdout = %q, want %q", stdout, "ok\n")
	}
	if !strings.Contains(stderr, "Parse error") {
		t.Errorf("stderr = %q, want parse error", stderr)
	}
}

func TestInteract_NotFoundDoesNotStopLoop(t *testing.T) {
	testutil.InTempDir(t)
	testutil.Setenv(t, env.PATH, "")
	exit, stdout, stderr := runInteract(&InteractConfig{}, "bad-command-xyz\necho after\n")
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if stdout != "after\n" {
		t.Errorf("stdout = %q, want %q", stdout, "after\n")
	}
	if !strings.Contains(stderr, "bad-command-xyz: command not found") {
		t.Errorf("stderr = %q, want command not found", stderr)
	}
}

func TestInteract_LastUnterminatedLineRuns(t *testing.T) {
	_, stdout, _ := runInteract(&InteractConfig{}, "echo no newline")
	if stdout != "no newline\n" {
		t.Errorf("stdout = %q, want %q", stdout, "no newline\n")
	}
}

func TestInteract_Prompt(t *testing.T) {
	_, stdout, _ := runInteract(
		&InteractConfig{Prompt: "> ", ShowPrompt: true}, "echo hi\n")
	if stdout != "> hi\n> " {
		t.Errorf("stdout = %q, want %q", stdout, "> hi\n> ")
	}
}

func TestInteract_RecordsHistory(t *testing.T) {
	st := store.MustTempStore(t)
	ev := eval.NewEvaler()
	ev.SetStore(st)
	_, stdout, _ := runInteract(&InteractConfig{Evaler: ev}, "echo a\n\nhistory\n")
	want := "a\n    1  echo a\n    2  history\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

// fakePrompter replays canned lines of input and records how it is used.
type fakePrompter struct {
	lines          []string
	next           int
	displayed      []string
	exhaustedReads int
}

func (p *fakePrompter) Display(prompt string) {
	p.displayed = append(p.displayed, prompt)
}

func (p *fakePrompter) ReadLine() (string, error) {
	if p.next >= len(p.lines) {
		p.exhaustedReads++
		return "", io.EOF
	}
	line := p.lines[p.next]
	p.next++
	return line, nil
}

func TestInteract_StopsReadingAfterEOF(t *testing.T) {
	p := &fakePrompter{lines: []string{"echo a"}}
	exit, _, _ := runInteract(&InteractConfig{Prompter: p}, "")
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if p.exhaustedReads != 1 {
		t.Errorf("ReadLine called %d times after the input ended, want 1",
			p.exhaustedReads)
	}
}

func TestInteract_FakePrompterReceivesPrompts(t *testing.T) {
	p := &fakePrompter{lines: []string{"echo hi"}}
	runInteract(&InteractConfig{Prompter: p, Prompt: "> ", ShowPrompt: true}, "")
	if want := []string{"> ", "> "}; !reflect.DeepEqual(p.displayed, want) {
		t.Errorf("prompts displayed = %q, want %q", p.displayed, want)
	}
}

// The session should behave identically regardless of which Prompter
// implementation supplies the input.
func TestInteract_FakeAndTerminalPromptersAgree(t *testing.T) {
	exit1, stdout1, stderr1 := runInteract(&InteractConfig{},
		"echo hello\necho 'bad\necho world\n")
	p := &fakePrompter{lines: []string{"echo hello", "echo 'bad", "echo world"}}
	exit2, stdout2, stderr2 := runInteract(&InteractConfig{Prompter: p}, "")

	if exit1 != exit2 {
		t.Errorf("exit = %d with terminal prompter, %d with fake", exit1, exit2)
	}
	if stdout1 != stdout2 {
		t.Errorf("stdout = %q with terminal prompter, %q with fake", stdout1, stdout2)
	}
	if stderr1 != stderr2 {
		t.Errorf("stderr = %q with terminal prompter, %q with fake", stderr1, stderr2)
	}
}
