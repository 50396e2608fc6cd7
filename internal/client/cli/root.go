package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.Mode == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.Mode)
}

func (a *App) Root(ctx context.Context) {

	printlnFn("Welcome to CertChain CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	go a.StartOnlineStatusWatcher(ctx, a.config.HealthCheckInterval)

	runREPL(ctx, a, a.getStatus, scanner)
}
