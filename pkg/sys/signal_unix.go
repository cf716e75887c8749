//go:build !windows && !plan9
// +build !windows,!plan9

package sys

import (
	"os"
	"os/signal"
	"syscall"
)

func notifySignals() chan os.Signal {
	// This catches every signal regardless of whether it is ignored.
	sigCh := make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(sigCh)
	// Calling signal.Notify resets the signal ignore status, so we need to
	// call signal.Ignore every time we call signal.Notify. Without job
	// control these signals must stay ignored for external commands run from
	// an interactive prompt to work.
	signal.Ignore(syscall.SIGTTIN, syscall.SIGTTOU, syscall.SIGTSTP)
	return sigCh
}
