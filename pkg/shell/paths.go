package shell

import (
	"os"
	"path/filepath"

	"src.nutsh.dev/pkg/fsutil"
)

// RCPath returns the path of the rc file, read before entering the
// interactive mode.
func RCPath() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rc.yaml"), nil
}

// DBPath returns the default path of the command history database.
func DBPath() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "db.bolt"), nil
}

// dataDir returns the data directory of nutsh, creating it if it does not
// exist yet.
func dataDir() (string, error) {
	home, err := fsutil.GetHome("")
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".nutsh")
	err = os.MkdirAll(dir, 0700)
	if err != nil {
		return "", err
	}
	return dir, nil
}
