// Package services holds the client-side orchestration layer. The
// certificate service tries the remote API first and falls back to the
// client-local store on any transport or server failure, with no retries:
// exactly one of {remote write, local append} happens per issuance.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/certchain/internal/certgen"
	"github.com/dmitrijs2005/certchain/internal/client/api"
	"github.com/dmitrijs2005/certchain/internal/client/repositories/certificates"
	"github.com/dmitrijs2005/certchain/internal/common"
	"github.com/dmitrijs2005/certchain/internal/logging"
	"github.com/dmitrijs2005/certchain/internal/models"
	"github.com/google/uuid"
)

// CertificateService is the operation surface consumed by the UI layer.
type CertificateService interface {
	// Issue validates the request, then creates the certificate remotely or,
	// when the remote call fails, in the local store. Returns the assigned
	// certificate identifier either way. Fails only on validation
	// (common.ErrValidation) or a local storage error.
	Issue(ctx context.Context, req models.IssueRequest) (string, error)

	// Verify looks the identifier up remotely, then locally. Returns
	// common.ErrNotFound when neither source has a match; transport failures
	// never surface.
	Verify(ctx context.Context, certificateID string) (*models.Certificate, error)

	// GetAll lists certificates from the remote API or, on failure, from the
	// local store, newest first.
	GetAll(ctx context.Context) ([]models.Certificate, error)

	// HealthCheck probes the remote API. On failure it reports the
	// "local-fallback" sentinel with the current timestamp; it never fails.
	HealthCheck(ctx context.Context) models.HealthStatus

	Close() error
}

// StatusLocalFallback is the health status reported while the remote API is
// unreachable.
const StatusLocalFallback = "local-fallback"

type certificateService struct {
	client api.Client
	store  certificates.Repository
	gen    *certgen.Generator
	now    func() time.Time
	logger logging.Logger
}

type Option func(*certificateService)

// WithClock substitutes the clock used for issuedAt and health timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *certificateService) { s.now = now }
}

// NewCertificateService wires the remote client, the fallback store and the
// identifier generator into a CertificateService.
func NewCertificateService(client api.Client, store certificates.Repository, gen *certgen.Generator, logger logging.Logger, opts ...Option) CertificateService {
	s := &certificateService{
		client: client,
		store:  store,
		gen:    gen,
		now:    time.Now,
		logger: logger.With("module", "certservice"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *certificateService) Issue(ctx context.Context, req models.IssueRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	id, err := s.client.Issue(ctx, req)
	if err == nil {
		s.logger.Info(ctx, "certificate issued remotely", "certificate_id", id)
		return id, nil
	}
	s.logger.Warn(ctx, "remote issue failed, falling back to local store", "error", err.Error())

	rec := models.Certificate{
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

	if err := s.store.Append(ctx, rec); err != nil {
		return "", fmt.Errorf("saving certificate locally: %w", err)
	}

	s.logger.Info(ctx, "certificate issued locally", "certificate_id", rec.CertificateID)
	return rec.CertificateID, nil
}

func (s *certificateService) Verify(ctx context.Context, certificateID string) (*models.Certificate, error) {
	cert, err := s.client.Verify(ctx, certificateID)
	if err == nil {
		return cert, nil
	}

	// A remote 404 still consults the local store: a record issued during an
	// outage exists only there.
	if !errors.Is(err, common.ErrNotFound) {
		s.logger.Warn(ctx, "remote verify failed, checking local store", "error", err.Error())
	}

	cert, err = s.store.FindByCertificateID(ctx, certificateID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("certificate %s: %w", certificateID, common.ErrNotFound)
		}
		return nil, fmt.Errorf("searching local store: %w", err)
	}
	return cert, nil
}

func (s *certificateService) GetAll(ctx context.Context) ([]models.Certificate, error) {
	certs, err := s.client.List(ctx)
	if err != nil {
		s.logger.Warn(ctx, "remote list failed, falling back to local store", "error", err.Error())
		certs, err = s.store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading local store: %w", err)
		}
	}

	// Newest first regardless of source. The stores keep insertion order;
	// the ordering here is a presentation contract.
	models.SortByIssuedDesc(certs)
	return certs, nil
}

func (s *certificateService) HealthCheck(ctx context.Context) models.HealthStatus {
	hs, err := s.client.Health(ctx)
	if err == nil {
		return *hs
	}
	s.logger.Debug(ctx, "health probe failed", "error", err.Error())
	return models.HealthStatus{Status: StatusLocalFallback, Timestamp: s.now().UTC()}
}

func (s *certificateService) Close() error {
	return s.client.Close()
}
