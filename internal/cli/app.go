package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finiate/finiate/internal/adapter/postgres"
	agendarepo "github.com/finiate/finiate/internal/adapter/postgres/agenda"
	eventlogrepo "github.com/finiate/finiate/internal/adapter/postgres/eventlog"
	"github.com/finiate/finiate/internal/app"
	"github.com/finiate/finiate/internal/config"
	agendasvc "github.com/finiate/finiate/internal/service/agenda"
	eventlogsvc "github.com/finiate/finiate/internal/service/eventlog"
)

// App bundles the connected services a command operates on.
type App struct {
	Agendas *agendasvc.Service
	Logs    *eventlogsvc.Service

	pool *pgxpool.Pool
}

// newApp loads config and wires services against the database.
// Close must be called when the command is done.
func newApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	logs := eventlogrepo.New(pool)
	agendas := agendarepo.New(pool)
	tx := postgres.NewTxManager(pool)

	return &App{
		Agendas: agendasvc.NewService(logger, agendas, logs, tx),
		Logs:    eventlogsvc.NewService(logger, logs),
		pool:    pool,
	}, nil
}

func (a *App) Close() {
	a.pool.Close()
}

// newEntryID mints a fresh identifier for agendas and log entries.
func newEntryID() string {
	return uuid.Must(uuid.NewV7()).String()
}
