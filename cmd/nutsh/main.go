// Nutsh is a POSIX-like shell with a deliberately small feature set. It
// supports interactive use, script files and one-off commands, and records
// command and directory history for use by the history and dirs builtins.
package main

import (
	"os"

	"src.nutsh.dev/pkg/buildinfo"
	"src.nutsh.dev/pkg/lsp"
	"src.nutsh.dev/pkg/prog"
	"src.nutsh.dev/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, lsp.Program{}, shell.Program{})))
}
