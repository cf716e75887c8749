package shell

import (
	"io"
	"os"
	"os/signal"
	"strconv"

	"src.nutsh.dev/pkg/env"
	"src.nutsh.dev/pkg/sys"
)

// incSHLVL increments the SHLVL environment variable. It returns a function
// to restore the original value.
func incSHLVL() func() {
	oldValue, hadValue := os.LookupEnv(env.SHLVL)
	i, err := strconv.Atoi(oldValue)
	if err != nil {
		i = 0
	}
	os.Setenv(env.SHLVL, strconv.Itoa(i+1))

	if hadValue {
		return func() { os.Setenv(env.SHLVL, oldValue) }
	} else {
		return func() { os.Unsetenv(env.SHLVL) }
	}
}

// initSignal starts handling signals relevant to the shell. It returns a
// function to stop the handling.
func initSignal(stderr io.Writer) func() {
	sigCh := sys.NotifySignals()
	go func() {
		for sig := range sigCh {
			if ignoreSignal(sig) {
				continue
			}
			logger.Println("signal", signalName(sig))
			handleSignal(sig, stderr)
		}
	}()

	return func() {
		signal.Stop(sigCh)
	}
}
