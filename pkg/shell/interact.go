package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"src.nutsh.dev/pkg/diag"
	"src.nutsh.dev/pkg/eval"
	"src.nutsh.dev/pkg/parse"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	Evaler *eval.Evaler
	// Prompter to use. A nil Prompter means reading from fds[0] and writing
	// prompts to fds[1].
	Prompter   Prompter
	Prompt     string
	ShowPrompt bool
}

// Interact runs an interactive shell session: a loop that displays a prompt,
// reads one line, and evaluates it. It returns the status of the session,
// which is the argument of the exit command if one was run, and the status of
// the last command when the input ends.
//
// Errors of individual commands are shown on fds[2] and never terminate the
// loop.
func Interact(fds [3]*os.File, cfg *InteractConfig) int {
	ev := cfg.Evaler
	if ev == nil {
		ev = eval.NewEvaler()
	}
	prompter := cfg.Prompter
	if prompter == nil {
		prompter = NewPrompter(fds[0], fds[1])
	}

	cmdNum := 0
	for {
		cmdNum++
		if cfg.ShowPrompt {
			prompter.Display(cfg.Prompt)
		}

		line, err := prompter.ReadLine()
		if err == io.EOF {
			return ev.LastStatus()
		} else if err != nil {
			fmt.Fprintln(fds[2], "error reading input:", err)
			return 2
		}

		addCmdToHistory(ev, line)
		err = ev.Eval(
			parse.Source{Name: fmt.Sprintf("[tty %d]", cmdNum), Code: line}, fds)
		if err != nil {
			if exit, ok := err.(eval.Exit); ok {
				return exit.Status
			}
			diag.ShowError(fds[2], err)
		}
	}
}

// addCmdToHistory records an interactive command in the command history.
// Blank lines are not recorded.
func addCmdToHistory(ev *eval.Evaler, line string) {
	st := ev.Store()
	if st == nil || strings.Trim(line, " \t\r\n") == "" {
		return
	}
	_, err := st.AddCmd(line)
	if err != nil {
		logger.Println("failed to add command to history:", err)
	}
}
