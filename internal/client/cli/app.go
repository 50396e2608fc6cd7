package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/certchain/internal/certgen"
	"github.com/dmitrijs2005/certchain/internal/chainsim"
	"github.com/dmitrijs2005/certchain/internal/client/api"
	"github.com/dmitrijs2005/certchain/internal/client/config"
	"github.com/dmitrijs2005/certchain/internal/client/repositories/certificates"
	"github.com/dmitrijs2005/certchain/internal/client/services"
	"github.com/dmitrijs2005/certchain/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	certService services.CertificateService
	chain       *chainsim.Service
	logger      logging.Logger
	Mode        Mode
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := certificates.Open(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing local database", "error", err.Error())
		return nil, err
	}

	store := certificates.NewSQLiteStore(db, logger)
	if err := store.SeedIfEmpty(ctx); err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL)
	cs := services.NewCertificateService(apiClient, store, certgen.New(), logger)

	return &App{
		config:      c,
		certService: cs,
		chain:       chainsim.NewService(logger),
		logger:      logger,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn("Switched to", string(mode), "mode")
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.certService.Close()
	a.Root(ctx)
}

// StartOnlineStatusWatcher periodically probes the backend and flips the
// displayed mode. The probe never gates the other commands; they carry their
// own fallback.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			hs := a.certService.HealthCheck(probeCtx)
			cancel()

			if hs.Status == services.StatusLocalFallback {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
