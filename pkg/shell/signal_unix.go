//go:build !windows && !plan9
// +build !windows,!plan9

package shell

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"src.nutsh.dev/pkg/sys"
)

func ignoreSignal(sig os.Signal) bool {
	// SIGURG is used internally by the Go runtime and occurs with great
	// frequency, so it is not even worth logging.
	return sig.(syscall.Signal) == syscall.SIGURG
}

func signalName(sig os.Signal) string {
	return unix.SignalName(sig.(syscall.Signal))
}

func handleSignal(sig os.Signal, stderr io.Writer) {
	switch sig {
	case syscall.SIGHUP:
		syscall.Kill(0, syscall.SIGHUP)
		os.Exit(0)
	case syscall.SIGUSR1:
		fmt.Fprint(stderr, sys.DumpStack())
	}
}
