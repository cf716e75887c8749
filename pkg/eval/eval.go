// Package eval handles evaluation of parsed lines and provides the builtin
// commands.
package eval

import (
	"fmt"
	"os"
	"syscall"

	"src.nutsh.dev/pkg/logutil"
	"src.nutsh.dev/pkg/parse"
	"src.nutsh.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[eval] ")

// Evaler provides methods for evaluating code, and maintains state shared
// across evaluations: aliases, the command and directory history store, and
// the status of the last evaluated command.
//
// An Evaler is not safe for concurrent use; evaluation is single-threaded.
type Evaler struct {
	aliases map[string]string
	store   storedefs.Store
	status  int
}

// NewEvaler creates a new Evaler with no aliases and no store.
func NewEvaler() *Evaler {
	return &Evaler{aliases: make(map[string]string)}
}

// SetStore sets the store used by the history and directory commands. A nil
// store makes those commands report that history is disabled.
func (ev *Evaler) SetStore(st storedefs.Store) {
	ev.store = st
}

// Store returns the store set by SetStore, or nil if there is none.
func (ev *Evaler) Store() storedefs.Store {
	return ev.store
}

// AddAlias defines an alias. An alias substitutes the head word of a command
// line before the command is formed; the substitution is not recursive.
func (ev *Evaler) AddAlias(name, def string) {
	ev.aliases[name] = def
}

// LastStatus returns the status of the last evaluated command. It is 0
// initially, and is what the exit command without arguments exits with.
func (ev *Evaler) LastStatus() int {
	return ev.status
}

// Frame holds the runtime context of one evaluation: the Evaler it belongs
// to and the three standard files commands read from and write to.
type Frame struct {
	Evaler *Evaler
	Files  [3]*os.File
}

// Eval parses and evaluates one line of code, with the given files as
// standard input, output and error.
//
// Parse errors and command errors are returned and recorded in the status;
// they never terminate the Evaler. The returned error is an Exit value when
// the code ran the exit command; the caller decides what to do with it. A
// failed external command records its status but returns nil, since the
// command has already written its own diagnostics.
func (ev *Evaler) Eval(src parse.Source, files [3]*os.File) error {
	line, err := parse.Parse(src)
	if err != nil {
		ev.status = 2
		return err
	}
	if len(line.Words) == 0 {
		// Nothing but spaces or redirections; not a command.
		return nil
	}
	cmd, err := ev.form(line)
	if err != nil {
		ev.status = 2
		return err
	}
	fm := &Frame{Evaler: ev, Files: files}
	cleanup, err := applyRedirs(fm, line.Redirs)
	if err != nil {
		ev.status = 1
		return err
	}
	defer cleanup()

	err = cmd.exec(fm)
	ev.status = statusOf(err)
	if _, ok := err.(ExternalCmdExit); ok {
		// The external command has already written its own diagnostics.
		return nil
	}
	return err
}

// statusOf maps the error returned by a command to its exit status.
func statusOf(err error) int {
	switch err := err.(type) {
	case nil:
		return 0
	case Exit:
		return err.Status
	case ExternalCmdExit:
		if err.Signaled() {
			return 128 + int(err.Signal())
		}
		return err.ExitStatus()
	case notFoundError:
		return 127
	case usageError:
		return 2
	default:
		return 1
	}
}

// notFoundError is returned when the head of a command names neither a
// builtin nor an executable found on PATH.
type notFoundError struct {
	name string
}

func (e notFoundError) Error() string {
	return e.name + ": command not found"
}

// usageError is returned when a builtin is called with arguments it does not
// understand. It corresponds to exit status 2.
type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...interface{}) usageError {
	return usageError{fmt.Sprintf(format, args...)}
}

// waitStatus converts the Sys value of a ProcessState. Declared as a
// function so that the conversion appears exactly once.
func waitStatus(state *os.ProcessState) syscall.WaitStatus {
	return state.Sys().(syscall.WaitStatus)
}
