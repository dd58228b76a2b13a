package storage

import "habitctl/internal/models"

// Provider is the persistence boundary for the habit collection.
//
// Concurrency note:
//   - Providers are not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple habitctl processes that share the same storage path at
//     the same time is not supported and may lead to data loss.
type Provider interface {
	// Load reads the persisted collection. A missing backing file yields an
	// empty collection, not an error.
	Load() (*models.Collection, error)
	// Save rewrites the entire collection, replacing prior contents.
	Save(*models.Collection) error
	Close() error

	// Path returns the backing storage path.
	Path() string
}
