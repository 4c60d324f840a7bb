// Package eventlog provides the event log operations. Log entries are
// optionally tagged to an agenda at creation time and are only ever
// deleted explicitly, never as a side effect of agenda lifecycle.
package eventlog

import (
	"context"
	"iter"
	"log/slog"

	"github.com/finiate/finiate/internal/domain"
)

type logRepo interface {
	Create(ctx context.Context, l domain.Log) error
	GetByID(ctx context.Context, id string) (*domain.Log, error)
	Delete(ctx context.Context, id string) error
	ListByAgenda(ctx context.Context, agendaID string) iter.Seq2[domain.Log, error]
	ListByRange(ctx context.Context, from, to int64) iter.Seq2[domain.Log, error]
}

// Service provides event log operations.
type Service struct {
	logs logRepo
	log  *slog.Logger
}

// NewService creates a new event log service.
func NewService(log *slog.Logger, logs logRepo) *Service {
	return &Service{
		logs: logs,
		log:  log.With("service", "eventlog"),
	}
}
