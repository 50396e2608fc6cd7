// Package rest exposes the certificate service over the JSON REST surface
// consumed by the client: issue, verify, list and a liveness probe.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/certchain/internal/logging"
	"github.com/dmitrijs2005/certchain/internal/server/certificates"
)

type RESTServer struct {
	address string
	certs   *certificates.Service
	logger  logging.Logger
	now     func() time.Time
}

func NewRESTServer(a string, l logging.Logger, cs *certificates.Service) *RESTServer {
	return &RESTServer{
		address: a,
		logger:  l.With("module", "rest_server"),
		certs:   cs,
		now:     time.Now,
	}
}

func (s *RESTServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping REST server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting REST server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
