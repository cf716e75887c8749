package store

import (
	"path/filepath"

	"src.nutsh.dev/pkg/testutil"
)

// MustTempStore returns a Store backed by a file in a temporary directory,
// for testing. The store and the file are cleaned up after the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	st, err := NewStore(filepath.Join(testutil.TempDir(c), "db"))
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() { st.Close() })
	return st
}
