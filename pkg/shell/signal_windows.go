package shell

import (
	"io"
	"os"
	"syscall"
)

func ignoreSignal(sig os.Signal) bool {
	return false
}

func signalName(sig os.Signal) string {
	return sig.String()
}

func handleSignal(sig os.Signal, stderr io.Writer) {
	switch sig {
	case syscall.SIGTERM:
		os.Exit(0)
	}
}
