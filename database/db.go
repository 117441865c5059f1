// Package database implements the typed CRUD operations for cards,
// projects and notes on top of the storage layer, including the
// cross-entity cleanup that keeps references consistent.
package database

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"cardbox/storage"
)

var (
	// ErrNotFound is returned when an update or delete targets an id
	// that does not exist. No state change occurs.
	ErrNotFound = errors.New("not found")

	// ErrNameTaken is returned when a project rename collides with
	// another project's name.
	ErrNameTaken = errors.New("project name already in use")
)

// DB exposes the domain operations. Every operation performs a full
// read-modify-write cycle against the store; nothing is cached between
// calls.
type DB struct {
	store *storage.Store
}

// New wraps an opened store.
func New(store *storage.Store) *DB {
	return &DB{store: store}
}

// Store returns the underlying store, mainly for tests.
func (db *DB) Store() *storage.Store {
	return db.store
}

func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
