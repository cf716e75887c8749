package eval

import (
	"fmt"
	"os"

	"src.nutsh.dev/pkg/parse"
)

// applyRedirs opens the target of each redirection and substitutes the
// corresponding file of the frame, leftmost first. The returned function
// closes the opened files; opening the targets is the only effect a
// redirection has until a command writes to the file.
func applyRedirs(fm *Frame, redirs []parse.Redir) (func(), error) {
	if len(redirs) == 0 {
		return func() {}, nil
	}
	var opened []*os.File
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	for _, redir := range redirs {
		flag := os.O_WRONLY | os.O_CREATE
		switch redir.Mode {
		case parse.Write:
			flag |= os.O_TRUNC
		case parse.Append:
			flag |= os.O_APPEND
		default:
			panic(fmt.Sprint("bad redir mode ", redir.Mode))
		}
		f, err := os.OpenFile(redir.Target, flag, 0644)
		if err != nil {
			cleanup()
			return nil, err
		}
		opened = append(opened, f)
		fm.Files[redir.FD] = f
	}
	return cleanup, nil
}
