//go:build !windows && !plan9
// +build !windows,!plan9

package progtest

import (
	"os"

	"github.com/creack/pty"

	"src.nutsh.dev/pkg/testutil"
)

// OpenTTY opens a pseudo-terminal pair for testing a program that behaves
// differently when its files are terminal devices. It returns the controller
// end and the terminal end; both are closed when the test finishes.
func OpenTTY(c testutil.Cleanuper) (ctrl, tty *os.File) {
	ctrl, tty, err := pty.Open()
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() {
		ctrl.Close()
		tty.Close()
	})
	return ctrl, tty
}
