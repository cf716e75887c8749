package eval

import (
	"sort"
	"strconv"

	"src.nutsh.dev/pkg/parse"
)

// Command is a command formed from a parsed line, ready to be executed. It
// is a closed set: the builtin command types and ExternalCmd implement it,
// and nothing else does.
type Command interface {
	// exec runs the command within the given frame. The returned error is
	// nil on success, an Exit value for the exit command, and an
	// ExternalCmdExit for an external command that did not exit with 0.
	exec(fm *Frame) error
}

// ExitCmd exits the shell. Without an argument it exits with the status of
// the last command.
type ExitCmd struct {
	Status  int
	FromArg bool
}

// EchoCmd writes its arguments to the output, joined by spaces and followed
// by a newline.
type EchoCmd struct {
	Args []string
}

// TypeCmd describes what each of its arguments would be interpreted as when
// used as a command head.
type TypeCmd struct {
	Names []string
}

// PwdCmd writes the working directory to the output.
type PwdCmd struct{}

// CdCmd changes the working directory. An empty Path means the home
// directory.
type CdCmd struct {
	Path string
}

// HistoryCmd writes the command history to the output. N limits the output
// to the last N entries; 0 means no limit.
type HistoryCmd struct {
	N int
}

// DirsCmd writes the directory history to the output, most frecent first.
type DirsCmd struct{}

// AliasCmd writes alias definitions to the output, either those named or all
// of them.
type AliasCmd struct {
	Names []string
}

// ExternalCmd runs an external command found on PATH, or named by a path
// containing a slash.
type ExternalCmd struct {
	Name string
	Args []string
}

// builtins is the set of builtin command names.
var builtins = map[string]bool{
	"alias":   true,
	"cd":      true,
	"dirs":    true,
	"echo":    true,
	"exit":    true,
	"history": true,
	"pwd":     true,
	"type":    true,
}

// BuiltinNames returns the names of all builtin commands, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// form turns a parsed line with at least one word into a Command. Aliases
// are expanded first; after that, the head word picks the command type.
func (ev *Evaler) form(line parse.Line) (Command, error) {
	words, err := ev.expandAlias(line.Words)
	if err != nil {
		return nil, err
	}
	head, args := words[0], words[1:]
	switch head {
	case "exit":
		return formExit(args)
	case "echo":
		return EchoCmd{Args: args}, nil
	case "type":
		return TypeCmd{Names: args}, nil
	case "pwd":
		return PwdCmd{}, nil
	case "cd":
		return formCd(args)
	case "history":
		return formHistory(args)
	case "dirs":
		if len(args) > 0 {
			return nil, usagef("dirs: too many arguments")
		}
		return DirsCmd{}, nil
	case "alias":
		return AliasCmd{Names: args}, nil
	default:
		return ExternalCmd{Name: head, Args: args}, nil
	}
}

// expandAlias substitutes the head word if it names an alias. The definition
// is parsed as a line itself, and its words replace the head. Expansion is
// not recursive, so an alias may refer to the command it shadows.
func (ev *Evaler) expandAlias(words []string) ([]string, error) {
	def, ok := ev.aliases[words[0]]
	if !ok {
		return words, nil
	}
	defLine, err := parse.Parse(parse.Source{Name: "alias " + words[0], Code: def})
	if err != nil || len(defLine.Words) == 0 || len(defLine.Redirs) > 0 {
		return nil, usagef("alias %s: invalid definition %s", words[0], parse.Quote(def))
	}
	return append(defLine.Words, words[1:]...), nil
}

func formExit(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return ExitCmd{}, nil
	case 1:
		status, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, usagef("exit: %s: numeric argument required", args[0])
		}
		return ExitCmd{Status: status, FromArg: true}, nil
	default:
		return nil, usagef("exit: too many arguments")
	}
}

func formCd(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return CdCmd{}, nil
	case 1:
		return CdCmd{Path: args[0]}, nil
	default:
		return nil, usagef("cd: too many arguments")
	}
}

func formHistory(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return HistoryCmd{}, nil
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return nil, usagef("history: %s: numeric argument required", args[0])
		}
		return HistoryCmd{N: n}, nil
	default:
		return nil, usagef("history: too many arguments")
	}
}
