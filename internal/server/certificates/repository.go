// Package certificates implements the server-side certificate store and the
// issuing service on top of it.
package certificates

import (
	"context"

	"github.com/dmitrijs2005/certchain/internal/models"
)

// Repository describes server-side certificate persistence.
type Repository interface {
	// Insert stores a new record. A certificateId collision returns
	// common.ErrDuplicate.
	Insert(ctx context.Context, cert *models.Certificate) error

	// GetByCertificateID returns the record with the given human-facing
	// identifier, or common.ErrNotFound.
	GetByCertificateID(ctx context.Context, certificateID string) (*models.Certificate, error)

	// GetAll returns every record, in no particular order.
	GetAll(ctx context.Context) ([]models.Certificate, error)
}
