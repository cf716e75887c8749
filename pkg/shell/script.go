package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"src.nutsh.dev/pkg/diag"
	"src.nutsh.dev/pkg/eval"
	"src.nutsh.dev/pkg/parse"
)

// ScriptConfig keeps configuration for the script mode.
type ScriptConfig struct {
	Cmd         bool
	CompileOnly bool
	JSON        bool
}

// Script executes a shell script, given as either a file name or the code
// itself.
func Script(ev *eval.Evaler, fds [3]*os.File, arg0 string, cfg *ScriptConfig) int {
	var name, code string
	if cfg.Cmd {
		name = "code from -c"
		code = arg0
	} else {
		var err error
		name, err = filepath.Abs(arg0)
		if err != nil {
			fmt.Fprintf(fds[2],
				"cannot get full path of script %q: %v\n", arg0, err)
			return 2
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
	}

	if cfg.CompileOnly {
		err := checkScript(name, code, cfg.Cmd)
		if cfg.JSON {
			fmt.Fprintf(fds[1], "%s\n", errorsToJSON(err))
		} else if err != nil {
			diag.ShowError(fds[2], err)
		}
		if err != nil {
			return 2
		}
		return 0
	}
	return evalScript(ev, fds, name, code, cfg.Cmd)
}

// evalScript evaluates the script line by line. A parse error terminates the
// script with status 2; errors of individual commands are shown but the
// script continues, like in the interactive mode.
func evalScript(ev *eval.Evaler, fds [3]*os.File, name, code string, isCmd bool) int {
	for i, line := range strings.Split(code, "\n") {
		srcName := name
		if !isCmd {
			srcName = fmt.Sprintf("%s:%d", name, i+1)
		}
		err := ev.Eval(parse.Source{Name: srcName, Code: line, IsFile: !isCmd}, fds)
		if err != nil {
			if exit, ok := err.(eval.Exit); ok {
				return exit.Status
			}
			diag.ShowError(fds[2], err)
			if parse.GetError(err) != nil {
				return 2
			}
		}
	}
	return ev.LastStatus()
}

// checkScript parses every line of the script without executing anything,
// and returns an error aggregating all the parse errors, or nil if there is
// none.
func checkScript(name, code string, isCmd bool) error {
	var entries []*diag.Error
	for i, line := range strings.Split(code, "\n") {
		srcName := name
		if !isCmd {
			srcName = fmt.Sprintf("%s:%d", name, i+1)
		}
		_, err := parse.Parse(parse.Source{Name: srcName, Code: line, IsFile: !isCmd})
		if parseErr := parse.GetError(err); parseErr != nil {
			entries = append(entries, parseErr.Entries...)
		}
	}
	if len(entries) > 0 {
		return &parse.Error{Entries: entries}
	}
	return nil
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

// An auxiliary struct for converting errors with diagnostics information to
// JSON.
type errorInJSON struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// Converts parse errors into JSON.
func errorsToJSON(err error) []byte {
	var converted []errorInJSON
	if parseErr := parse.GetError(err); parseErr != nil {
		for _, e := range parseErr.Entries {
			converted = append(converted,
				errorInJSON{e.Context.Name, e.Context.From, e.Context.To, e.Message})
		}
	}

	jsonError, errMarshal := json.Marshal(converted)
	if errMarshal != nil {
		return []byte(`[{"message":"Unable to convert the errors to JSON"}]`)
	}
	return jsonError
}
