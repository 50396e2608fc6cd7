package certificates

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/certchain/internal/common"
	"github.com/dmitrijs2005/certchain/internal/models"
)

// InMemoryRepository keeps certificates in a slice behind a mutex. Used by
// tests and for running the server without a database.
type InMemoryRepository struct {
	mu    sync.RWMutex
	certs []models.Certificate
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Insert(ctx context.Context, cert *models.Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.certs {
		if r.certs[i].CertificateID == cert.CertificateID {
			return common.ErrDuplicate
		}
	}
	r.certs = append(r.certs, *cert)
	return nil
}

func (r *InMemoryRepository) GetByCertificateID(ctx context.Context, certificateID string) (*models.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.certs {
		if r.certs[i].CertificateID == certificateID {
			c := r.certs[i]
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) GetAll(ctx context.Context) ([]models.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Certificate, len(r.certs))
	copy(out, r.certs)
	return out, nil
}
