package fsutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"src.nutsh.dev/pkg/env"
	"src.nutsh.dev/pkg/testutil"
	"src.nutsh.dev/pkg/tt"
)

func TestDontSearch(t *testing.T) {
	tt.Test(t, tt.Fn("DontSearch", DontSearch), tt.Table{
		tt.Args("ls").Rets(false),
		tt.Args("make").Rets(false),
		tt.Args("./ls").Rets(true),
		tt.Args("../make").Rets(true),
		tt.Args("dir/prog").Rets(true),
	})
}

func TestEachExternal(t *testing.T) {
	binPath := testutil.InTempDir(t)
	testutil.Setenv(t, env.PATH, binPath+string(filepath.ListSeparator)+"/foo/bar")

	testutil.MustMkdirAll("subdir")
	testutil.MustWriteFile("cmd1.exe", []byte("#!/bin/sh"), 0755)
	testutil.MustWriteFile("cmd2.exe", []byte("#!/bin/sh"), 0755)
	testutil.MustWriteFile("file", []byte(""), 0644)

	wantCmds := []string{"cmd1.exe", "cmd2.exe"}
	gotCmds := []string{}
	EachExternal(func(cmd string) { gotCmds = append(gotCmds, cmd) })

	sort.Strings(gotCmds)
	if len(gotCmds) != len(wantCmds) {
		t.Fatalf("EachExternal found %v, want %v", gotCmds, wantCmds)
	}
	for i, got := range gotCmds {
		if got != wantCmds[i] {
			t.Errorf("EachExternal found %v, want %v", gotCmds, wantCmds)
		}
	}
}

func TestIsExecutable(t *testing.T) {
	testutil.InTempDir(t)
	testutil.MustWriteFile("exe.exe", []byte(""), 0755)
	testutil.MustWriteFile("plain.txt", []byte(""), 0644)

	if got := IsExecutable(mustStat(t, "exe.exe")); !got {
		t.Errorf("IsExecutable(exe.exe) -> false, want true")
	}
	if got := IsExecutable(mustStat(t, "plain.txt")); got {
		t.Errorf("IsExecutable(plain.txt) -> true, want false")
	}
}

func mustStat(t *testing.T, name string) os.FileInfo {
	t.Helper()
	stat, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	return stat
}
