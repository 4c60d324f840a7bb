// Command finiate tracks agendas and their event logs.
//
// Usage:
//
//	finiate add "ship v2" --terminate-at 2026-09-01
//	finiate status
//	finiate log "kickoff done" --agenda <id>
//
// Requires DATABASE_DSN (or a config.yaml pointed at by CONFIG_PATH).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/finiate/finiate/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
