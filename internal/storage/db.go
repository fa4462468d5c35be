// Package storage provides the database layer for Voxnote.
//
// The database always runs in Badger's in-memory mode: note state is
// session-scoped and discarded when the process exits.
package storage

import (
	badger "github.com/dgraph-io/badger/v4"
)

// DB wraps a Badger database connection.
type DB struct {
	db *badger.DB
}

// Open creates a new in-memory database for this session.
func Open() (*DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)

	// Reduce logging noise
	opts = opts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}
