// Package store abstracts the persistent storage used by nutsh.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.nutsh.dev/pkg/logutil"
	. "src.nutsh.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

const (
	bucketCmd = "cmd"
	bucketDir = "dir"
)

var initDB = map[string]func(*bolt.Tx) error{}

// DBStore is the permanent storage backend for nutsh. It is not thread-safe.
// In particular, the store may be closed while another goroutine is using it.
type DBStore interface {
	Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	st := &dbStore{db: db}
	logger.Println("initializing store")
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %v", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}
	logger.Println("initialized store")
	return st, nil
}

// Close closes the store.
func (s *dbStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
