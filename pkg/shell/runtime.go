package shell

import (
	"fmt"
	"io"

	"src.nutsh.dev/pkg/prog"
	"src.nutsh.dev/pkg/store"
)

const storeWontWorkMsg = "The history and dirs commands will not work."

// initStore opens the command and directory history store for the session.
// The path of the database is taken from the -db flag, the rc file, or the
// default location, in that order.
//
// Opening the store is best effort. When it fails the shell still runs, just
// without history; a warning is written to stderr and the returned store is
// nil. The returned function closes the store if one was opened.
func initStore(stderr io.Writer, f *prog.Flags, cfg *rcConfig) (store.DBStore, func()) {
	noStore := func() {}
	if cfg.History.Disabled {
		return nil, noStore
	}
	dbPath := f.DB
	if dbPath == "" {
		dbPath = cfg.History.DB
	}
	if dbPath == "" {
		p, err := DBPath()
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			fmt.Fprintln(stderr, storeWontWorkMsg)
			return nil, noStore
		}
		dbPath = p
	}
	st, err := store.NewStore(dbPath)
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot open database:", err)
		fmt.Fprintln(stderr, storeWontWorkMsg)
		return nil, noStore
	}
	return st, func() {
		err := st.Close()
		if err != nil {
			fmt.Fprintln(stderr, "warning: failed to close database:", err)
		}
	}
}
