package store_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.nutsh.dev/pkg/store"
	"src.nutsh.dev/pkg/store/storedefs"
)

func dirPaths(dirs []storedefs.Dir) []string {
	paths := make([]string, len(dirs))
	for i, dir := range dirs {
		paths[i] = dir.Path
	}
	return paths
}

func mustDirs(t *testing.T, tStore store.DBStore, blacklist map[string]struct{}) []storedefs.Dir {
	t.Helper()
	dirs, err := tStore.Dirs(blacklist)
	if err != nil {
		t.Fatalf("Dirs -> error %v", err)
	}
	return dirs
}

func TestDir(t *testing.T) {
	tStore := store.MustTempStore(t)

	for _, path := range []string{"/usr", "/usr/bin", "/tmp", "/usr/bin"} {
		if err := tStore.AddDir(path, 1); err != nil {
			t.Fatalf("AddDir(%q) -> error %v", path, err)
		}
	}

	// The directory visited twice scores highest; of the ones visited once,
	// the more recent visit decays less.
	dirs := mustDirs(t, tStore, storedefs.NoBlacklist)
	wantPaths := []string{"/usr/bin", "/tmp", "/usr"}
	if diff := cmp.Diff(wantPaths, dirPaths(dirs)); diff != "" {
		t.Errorf("Dirs (-want +got):\n%s", diff)
	}
	for i := 1; i < len(dirs); i++ {
		if dirs[i-1].Score <= dirs[i].Score {
			t.Errorf("Dirs not sorted by descending score: %v", dirs)
		}
	}
}

func TestDir_Blacklist(t *testing.T) {
	tStore := store.MustTempStore(t)
	for _, path := range []string{"/usr", "/tmp"} {
		if err := tStore.AddDir(path, 1); err != nil {
			t.Fatalf("AddDir(%q) -> error %v", path, err)
		}
	}

	dirs := mustDirs(t, tStore, map[string]struct{}{"/tmp": {}})
	if diff := cmp.Diff([]string{"/usr"}, dirPaths(dirs)); diff != "" {
		t.Errorf("Dirs with blacklist (-want +got):\n%s", diff)
	}
}

func TestDelDir(t *testing.T) {
	tStore := store.MustTempStore(t)
	for _, path := range []string{"/usr", "/tmp"} {
		if err := tStore.AddDir(path, 1); err != nil {
			t.Fatalf("AddDir(%q) -> error %v", path, err)
		}
	}

	if err := tStore.DelDir("/usr"); err != nil {
		t.Fatalf("DelDir -> error %v", err)
	}
	dirs := mustDirs(t, tStore, storedefs.NoBlacklist)
	if diff := cmp.Diff([]string{"/tmp"}, dirPaths(dirs)); diff != "" {
		t.Errorf("Dirs after deletion (-want +got):\n%s", diff)
	}
}
