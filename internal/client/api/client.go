// Package api talks to the remote certificate REST backend. The Client
// interface is what the service layer consumes; tests substitute fakes.
package api

import (
	"context"

	"github.com/dmitrijs2005/certchain/internal/models"
)

// Client is the remote-API surface used by the certificate service. Every
// method maps transport and non-2xx failures to common.ErrUnavailable so the
// caller can route them to the local fallback; Verify maps an authoritative
// 404 to common.ErrNotFound.
type Client interface {
	Close() error

	// Issue submits an issuance request and returns the server-assigned
	// certificate identifier.
	Issue(ctx context.Context, req models.IssueRequest) (string, error)

	// Verify looks a certificate up by its human-facing identifier.
	Verify(ctx context.Context, certificateID string) (*models.Certificate, error)

	// List returns all certificates known to the server.
	List(ctx context.Context) ([]models.Certificate, error)

	// Health probes server liveness.
	Health(ctx context.Context) (*models.HealthStatus, error)
}
