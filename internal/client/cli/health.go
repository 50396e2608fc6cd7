package cli

import (
	"context"
	"fmt"
)

// Health probes the backend and reports the status. The probe is purely
// observational; a "local-fallback" answer does not block any other command.
func (a *App) Health(ctx context.Context) error {
	hs := a.certService.HealthCheck(ctx)
	printlnFn(fmt.Sprintf("Backend status: %s (as of %s)", hs.Status, hs.Timestamp.Format("15:04:05")))
	return nil
}
