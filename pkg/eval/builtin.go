package eval

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"src.nutsh.dev/pkg/env"
	"src.nutsh.dev/pkg/fsutil"
	"src.nutsh.dev/pkg/parse"
	"src.nutsh.dev/pkg/store/storedefs"
)

func (c ExitCmd) exec(fm *Frame) error {
	if c.FromArg {
		return Exit{c.Status}
	}
	return Exit{fm.Evaler.status}
}

func (c EchoCmd) exec(fm *Frame) error {
	_, err := fmt.Fprintln(fm.Files[1], strings.Join(c.Args, " "))
	return err
}

func (c TypeCmd) exec(fm *Frame) error {
	out := fm.Files[1]
	var missing []string
	for _, name := range c.Names {
		if def, ok := fm.Evaler.aliases[name]; ok {
			fmt.Fprintf(out, "%s is an alias for %s\n", name, def)
		} else if builtins[name] {
			fmt.Fprintf(out, "%s is a shell builtin\n", name)
		} else if path, err := exec.LookPath(name); err == nil {
			fmt.Fprintf(out, "%s is %s\n", name, path)
		} else {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		lines := make([]string, len(missing))
		for i, name := range missing {
			lines[i] = name + ": not found"
		}
		return errors.New(strings.Join(lines, "\n"))
	}
	return nil
}

func (c PwdCmd) exec(fm *Frame) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("pwd: %w", err)
	}
	_, err = fmt.Fprintln(fm.Files[1], wd)
	return err
}

func (c CdCmd) exec(fm *Frame) error {
	dir, err := cdTarget(c.Path)
	if err != nil {
		return err
	}
	err = os.Chdir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("cd: %s: No such file or directory", c.Path)
		}
		return fmt.Errorf("cd: %s: %v", c.Path, errorDetail(err))
	}
	if wd, err := os.Getwd(); err == nil {
		os.Setenv(env.PWD, wd)
		addDirToHistory(fm.Evaler, wd)
	}
	return nil
}

// cdTarget resolves the argument of cd to the directory to change into,
// expanding a leading tilde.
func cdTarget(path string) (string, error) {
	switch {
	case path == "":
		return fsutil.GetHome("")
	case path == "~":
		return fsutil.GetHome("")
	case strings.HasPrefix(path, "~/"):
		home, err := fsutil.GetHome("")
		if err != nil {
			return "", err
		}
		return home + path[1:], nil
	default:
		return path, nil
	}
}

// errorDetail extracts the underlying cause from a PathError so that cd
// errors read "cd: /x: permission denied" rather than repeating the path.
func errorDetail(err error) error {
	if pathErr, ok := err.(*os.PathError); ok {
		return pathErr.Err
	}
	return err
}

func addDirToHistory(ev *Evaler, dir string) {
	if ev.store == nil {
		return
	}
	err := ev.store.AddDir(dir, 1)
	if err != nil {
		logger.Println("failed to add dir to history:", err)
	}
}

func (c HistoryCmd) exec(fm *Frame) error {
	st := fm.Evaler.store
	if st == nil {
		return errors.New("history is disabled")
	}
	next, err := st.NextCmdSeq()
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	from := 1
	if c.N > 0 && next-c.N > from {
		from = next - c.N
	}
	cmds, err := st.CmdsWithSeq(from, next)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	for _, cmd := range cmds {
		fmt.Fprintf(fm.Files[1], "%5d  %s\n", cmd.Seq, cmd.Text)
	}
	return nil
}

func (c DirsCmd) exec(fm *Frame) error {
	st := fm.Evaler.store
	if st == nil {
		return errors.New("directory history is disabled")
	}
	dirs, err := st.Dirs(storedefs.NoBlacklist)
	if err != nil {
		return fmt.Errorf("dirs: %w", err)
	}
	for _, dir := range dirs {
		fmt.Fprintf(fm.Files[1], "%8.2f  %s\n", dir.Score, fsutil.TildeAbbr(dir.Path))
	}
	return nil
}

func (c AliasCmd) exec(fm *Frame) error {
	aliases := fm.Evaler.aliases
	out := fm.Files[1]
	if len(c.Names) == 0 {
		names := make([]string, 0, len(aliases))
		for name := range aliases {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "alias %s=%s\n", name, parse.Quote(aliases[name]))
		}
		return nil
	}
	var missing []string
	for _, name := range c.Names {
		if def, ok := aliases[name]; ok {
			fmt.Fprintf(out, "alias %s=%s\n", name, parse.Quote(def))
		} else {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		lines := make([]string, len(missing))
		for i, name := range missing {
			lines[i] = "alias: " + name + ": not found"
		}
		return errors.New(strings.Join(lines, "\n"))
	}
	return nil
}
