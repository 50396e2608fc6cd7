package certificates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/certchain/internal/certgen"
	"github.com/dmitrijs2005/certchain/internal/common"
	"github.com/dmitrijs2005/certchain/internal/logging"
	"github.com/dmitrijs2005/certchain/internal/models"
	"github.com/google/uuid"
)

// issueAttempts bounds identifier regeneration when the UNIQUE index on
// certificate_id reports a collision.
const issueAttempts = 3

// Service implements the server-side certificate operations over a Repository.
type Service struct {
	repo   Repository
	gen    *certgen.Generator
	now    func() time.Time
	logger logging.Logger
}

func NewService(repo Repository, gen *certgen.Generator, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		gen:    gen,
		now:    time.Now,
		logger: logger.With("module", "certificates"),
	}
}

// Issue validates the request, assigns identifiers and the content hash, and
// stores the record. On a certificate_id collision it regenerates and
// retries, up to issueAttempts in total.
func (s *Service) Issue(ctx context.Context, req models.IssueRequest) (*models.Certificate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		cert := &models.Certificate{
			RecordID:       uuid.NewString(),
			CertificateID:  s.gen.CertificateID(),
			RecipientName:  req.RecipientName,
			RecipientEmail: req.RecipientEmail,
			CourseName:     req.CourseName,
			IssuerName:     req.IssuerName,
			CompletionDate: req.CompletionDate,
			Description:    req.Description,
			IssuedAt:       s.now().UTC(),
			BlockchainHash: s.gen.ContentHash(),
			IsValid:        true,
		}

		err := s.repo.Insert(ctx, cert)
		if err == nil {
			s.logger.Info(ctx, "certificate issued", "certificate_id", cert.CertificateID)
			return cert, nil
		}
		if !errors.Is(err, common.ErrDuplicate) {
			return nil, fmt.Errorf("storing certificate: %w", err)
		}
		if attempt >= issueAttempts {
			return nil, fmt.Errorf("issuing certificate after %d attempts: %w", attempt, err)
		}
		s.logger.Warn(ctx, "certificate id collision, regenerating", "attempt", attempt)
	}
}

// Verify returns the record for the given identifier, or common.ErrNotFound.
func (s *Service) Verify(ctx context.Context, certificateID string) (*models.Certificate, error) {
	return s.repo.GetByCertificateID(ctx, certificateID)
}

// List returns all records, newest first.
func (s *Service) List(ctx context.Context) ([]models.Certificate, error) {
	certs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing certificates: %w", err)
	}
	models.SortByIssuedDesc(certs)
	return certs, nil
}
