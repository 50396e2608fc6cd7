package certificates

import (
	"context"

	"github.com/dmitrijs2005/certchain/internal/models"
)

// Repository describes the fallback store operations. The store is a single
// ordered sequence of records under one storage key; there is no per-record
// write granularity, so two concurrent writers on the same key race
// last-write-wins at collection level.
type Repository interface {
	// Load returns the full sequence in insertion order. A missing key or
	// unparseable stored text yields an empty sequence, never an error, so
	// the UI always has something to render.
	Load(ctx context.Context) ([]models.Certificate, error)

	// Append reads the full sequence, appends rec, and writes the whole
	// collection back. There is no collision check on CertificateID.
	Append(ctx context.Context, rec models.Certificate) error

	// FindByCertificateID scans for the first record with the given
	// human-facing identifier and returns common.ErrNotFound on a miss.
	FindByCertificateID(ctx context.Context, certificateID string) (*models.Certificate, error)

	// SeedIfEmpty populates an empty store with the fixed sample records.
	// It checks emptiness first, so repeated initialization never duplicates
	// the samples.
	SeedIfEmpty(ctx context.Context) error
}
