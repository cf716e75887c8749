// Package shell is the entry point for the terminal interface of nutsh.
package shell

import (
	"fmt"
	"os"

	"src.nutsh.dev/pkg/eval"
	"src.nutsh.dev/pkg/logutil"
	"src.nutsh.dev/pkg/prog"
	"src.nutsh.dev/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.LSP {
		return prog.ErrNotSuitable
	}

	cfg := rcConfigFromFlags(fds[2], f)
	ev := eval.NewEvaler()
	for name, def := range cfg.Aliases {
		ev.AddAlias(name, def)
	}

	st, cleanupStore := initStore(fds[2], f, cfg)
	defer cleanupStore()
	if st != nil {
		ev.SetStore(st)
	}

	restoreSHLVL := incSHLVL()
	defer restoreSHLVL()
	stopSignal := initSignal(fds[2])
	defer stopSignal()

	if f.CodeInArg {
		if len(args) == 0 {
			return prog.BadUsage("argument to -c is missing")
		}
		if len(args) > 1 {
			return prog.BadUsage("too many arguments")
		}
		return prog.Exit(Script(ev, fds, args[0],
			&ScriptConfig{Cmd: true, CompileOnly: f.CompileOnly, JSON: f.JSON}))
	}
	if len(args) > 0 {
		if len(args) > 1 {
			return prog.BadUsage("too many arguments")
		}
		return prog.Exit(Script(ev, fds, args[0],
			&ScriptConfig{CompileOnly: f.CompileOnly, JSON: f.JSON}))
	}
	if f.CompileOnly {
		return prog.BadUsage("-compileonly requires a script file or -c")
	}

	return prog.Exit(Interact(fds, &InteractConfig{
		Evaler:     ev,
		Prompt:     cfg.Prompt,
		ShowPrompt: sys.IsATTY(fds[0]) || f.Interactive,
	}))
}

// rcConfigFromFlags loads the rc file named by the flags, falling back to
// the default configuration, with a warning, when it cannot be used.
func rcConfigFromFlags(stderr *os.File, f *prog.Flags) *rcConfig {
	if f.NoRc {
		return defaultRCConfig()
	}
	path := f.RC
	if path == "" {
		p, err := RCPath()
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			return defaultRCConfig()
		}
		path = p
	}
	cfg, err := readRC(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
	}
	return cfg
}
