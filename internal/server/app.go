// Package server initializes and runs the certificate backend: it wires the
// PostgreSQL store, the issuing service and the REST endpoint, and handles
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/certchain/internal/certgen"
	"github.com/dmitrijs2005/certchain/internal/logging"
	"github.com/dmitrijs2005/certchain/internal/server/certificates"
	"github.com/dmitrijs2005/certchain/internal/server/config"
	"github.com/dmitrijs2005/certchain/internal/server/rest"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	certService *certificates.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := certificates.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	repo := certificates.NewPostgresRepository(db)
	cs := certificates.NewService(repo, certgen.New(), logger)

	return &App{config: c, logger: logger, certService: cs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startRESTServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := rest.NewRESTServer(app.config.EndpointAddr, app.logger, app.certService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startRESTServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
