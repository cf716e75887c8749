package eval

import (
	"os"
	"os/exec"

	"src.nutsh.dev/pkg/fsutil"
)

func (c ExternalCmd) exec(fm *Frame) error {
	var path string
	if fsutil.DontSearch(c.Name) {
		// A name with an explicit path component is used as is.
		path = c.Name
	} else {
		p, err := exec.LookPath(c.Name)
		if err != nil {
			return notFoundError{c.Name}
		}
		path = p
	}

	// The first element of argv is the name as typed, which may differ from
	// the path the process image is loaded from.
	argv := append([]string{c.Name}, c.Args...)
	logger.Println("starting", path)

	proc, err := os.StartProcess(path, argv, &os.ProcAttr{Files: fm.Files[:]})
	if err != nil {
		return err
	}
	state, err := proc.Wait()
	if err != nil {
		return err
	}
	return NewExternalCmdExit(c.Name, waitStatus(state), proc.Pid)
}
