package shell

import (
	"strings"
	"testing"

	"src.nutsh.dev/pkg/testutil"
)

func TestReadRC(t *testing.T) {
	testutil.InTempDir(t)
	testutil.MustWriteFile("rc.yaml", []byte(
		"prompt: '% '\n"+
			"aliases:\n"+
			"  ll: ls -l\n"+
			"  greet: echo hello\n"+
			"history:\n"+
			"  disabled: true\n"+
			"  db: /tmp/hist.db\n"), 0644)

	cfg, err := readRC("rc.yaml")
	if err != nil {
		t.Fatalf("readRC -> error %v", err)
	}
	if cfg.Prompt != "% " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "% ")
	}
	if cfg.Aliases["ll"] != "ls -l" || cfg.Aliases["greet"] != "echo hello" {
		t.Errorf("Aliases = %v", cfg.Aliases)
	}
	if !cfg.History.Disabled {
		t.Errorf("History.Disabled = false, want true")
	}
	if cfg.History.DB != "/tmp/hist.db" {
		t.Errorf("History.DB = %q, want %q", cfg.History.DB, "/tmp/hist.db")
	}
}

func TestReadRC_NoPath(t *testing.T) {
	cfg, err := readRC("")
	if err != nil {
		t.Fatalf("readRC -> error %v", err)
	}
	if cfg.Prompt != defaultPrompt {
		t.Errorf("Prompt = %q, want default %q", cfg.Prompt, defaultPrompt)
	}
}

func TestReadRC_MissingFile(t *testing.T) {
	testutil.InTempDir(t)
	cfg, err := readRC("rc.yaml")
	if err != nil {
		t.Fatalf("readRC -> error %v", err)
	}
	if cfg.Prompt != defaultPrompt {
		t.Errorf("Prompt = %q, want default %q", cfg.Prompt, defaultPrompt)
	}
}

func TestReadRC_EmptyFile(t *testing.T) {
	testutil.InTempDir(t)
	testutil.MustWriteFile("rc.yaml", []byte(""), 0644)
	cfg, err := readRC("rc.yaml")
	if err != nil {
		t.Fatalf("readRC -> error %v", err)
	}
	if cfg.Prompt != defaultPrompt {
		t.Errorf("Prompt = %q, want default %q", cfg.Prompt, defaultPrompt)
	}
}

func TestReadRC_UnknownKey(t *testing.T) {
	testutil.InTempDir(t)
	testutil.MustWriteFile("rc.yaml", []byte("promt: oops\n"), 0644)
	cfg, err := readRC("rc.yaml")
	if err == nil || !strings.Contains(err.Error(), "cannot parse") {
		t.Errorf("error = %v, want parse error", err)
	}
	// The defaults still apply so that the shell can start.
	if cfg.Prompt != defaultPrompt {
		t.Errorf("Prompt = %q, want default %q", cfg.Prompt, defaultPrompt)
	}
}

func TestReadRC_EmptyPromptGetsDefault(t *testing.T) {
	testutil.InTempDir(t)
	testutil.MustWriteFile("rc.yaml", []byte("aliases:\n  e: echo\n"), 0644)
	cfg, err := readRC("rc.yaml")
	if err != nil {
		t.Fatalf("readRC -> error %v", err)
	}
	if cfg.Prompt != defaultPrompt {
		t.Errorf("Prompt = %q, want default %q", cfg.Prompt, defaultPrompt)
	}
	if cfg.Aliases["e"] != "echo" {
		t.Errorf("Aliases = %v", cfg.Aliases)
	}
}
