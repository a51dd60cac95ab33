// Package storage defines the persistence interfaces the marketplace relies on.
// Lookups return a nil result, not an error, when nothing matches; unique
// constraint violations are reported as ErrDuplicate.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go . AllStorage,Storage,TxStorage
package storage

import "context"

// AllStorage groups every domain storage capability.
type AllStorage interface {
	UserStorage
	BusinessStorage
	JobStorage
	ServiceStorage
	ReviewStorage
	ApplicationStorage
	NotificationStorage
	TaskStorage
}

// TxStorage is a storage handle bound to an open transaction.
// It must not be used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root, non transactional storage handle.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
