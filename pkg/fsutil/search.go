// Package fsutil provides filesystem utilities.
package fsutil

import (
	"os"
	"path/filepath"
	"strings"

	"src.nutsh.dev/pkg/env"
)

// DontSearch determines whether the path to an external command should be
// taken literally and not searched.
func DontSearch(exe string) bool {
	return strings.ContainsRune(exe, filepath.Separator) ||
		strings.ContainsRune(exe, '/')
}

// IsExecutable returns whether the FileInfo refers to an executable file.
//
// This is determined by permission bits on Unix, and by file name on Windows.
func IsExecutable(stat os.FileInfo) bool {
	return isExecutable(stat)
}

// EachExternal calls f for each executable file found while scanning the
// directories of $PATH.
//
// It may call f with the same name multiple times, once for each time the
// file appears in a directory of $PATH; no deduplication is performed.
func EachExternal(f func(string)) {
	for _, dir := range searchPaths() {
		files, err := os.ReadDir(dir)
		if err != nil {
			// In practice this rarely happens, and there isn't much to do
			// other than ignoring the invalid directory.
			continue
		}
		for _, file := range files {
			stat, err := file.Info()
			if err == nil && IsExecutable(stat) {
				f(stat.Name())
			}
		}
	}
}

func searchPaths() []string {
	return strings.Split(os.Getenv(env.PATH), string(filepath.ListSeparator))
}
