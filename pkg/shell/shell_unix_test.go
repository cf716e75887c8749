//go:build !windows && !plan9
// +build !windows,!plan9

package shell

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"src.nutsh.dev/pkg/env"
	. "src.nutsh.dev/pkg/prog/progtest"
	"src.nutsh.dev/pkg/testutil"
)

func TestShell_SHLVL_NormalCase(t *testing.T) {
	testutil.Setenv(t, env.SHLVL, "10")
	testSHLVL(t, "11")
}

func TestShell_SHLVL_Unset(t *testing.T) {
	testutil.Unsetenv(t, env.SHLVL)
	testSHLVL(t, "1")
}

func TestShell_SHLVL_Invalid(t *testing.T) {
	testutil.Setenv(t, env.SHLVL, "invalid")
	testSHLVL(t, "1")
}

func TestShell_NegativeSHLVL_Increments(t *testing.T) {
	// Other shells don't agree on what the behavior should be:
	//
	//     SHLVL=-100 bash -c 'echo $SHLVL'  # 0
	//     SHLVL=-100 zsh -c 'echo $SHLVL'   # -99
	//     SHLVL=-100 fish -c 'echo $SHLVL'  # 1
	//
	// We follow Zsh here.
	testutil.Setenv(t, env.SHLVL, "-100")
	testSHLVL(t, "-99")
}

func testSHLVL(t *testing.T, wantSHLVL string) {
	t.Helper()
	testutil.InTempHome(t)
	oldValue, oldOK := os.LookupEnv(env.SHLVL)

	Test(t, Program{},
		ThatNutsh("-norc", "-c", "sh -c 'echo $SHLVL'").
			WritesStdout(wantSHLVL+"\n"))

	// The original value is restored after the shell exits.
	newValue, newOK := os.LookupEnv(env.SHLVL)
	if newValue != oldValue || newOK != oldOK {
		t.Errorf("SHLVL not restored, %q (set=%v) -> %q (set=%v)",
			oldValue, oldOK, newValue, newOK)
	}
}

func TestSignal_USR1(t *testing.T) {
	testutil.InTempHome(t)
	Test(t, Program{},
		ThatNutsh("-norc", "-c", killCmd("USR1")).
			WritesStderrContaining("src.nutsh.dev/pkg/shell"))
}

func TestSignal_Ignored(t *testing.T) {
	testutil.InTempHome(t)

	Test(t, Program{},
		ThatNutsh("-norc", "-log", "logCHLD", "-c", killCmd("CHLD")).DoesNothing())

	wantLogCHLD := "signal SIGCHLD"
	b, err := os.ReadFile("logCHLD")
	if err != nil {
		t.Fatalf("cannot read log: %v", err)
	}
	if !strings.Contains(string(b), wantLogCHLD) {
		t.Errorf("want log when getting SIGCHLD to contain %q; got:\n%s", wantLogCHLD, b)
	}
}

// killCmd returns a command that delivers the named signal to the shell. The
// delay after kill gives the signal time to be handled.
func killCmd(name string) string {
	return fmt.Sprintf("sh -c 'kill -%s $PPID; sleep %v'",
		name, testutil.ScaledMs(100).Seconds())
}
