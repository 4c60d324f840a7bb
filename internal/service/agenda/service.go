// Package agenda provides the agenda management operations, including the
// referential-integrity protocol that keeps log references consistent when
// an agenda is deleted or its identifier changes.
package agenda

import (
	"context"
	"iter"
	"log/slog"

	"github.com/finiate/finiate/internal/domain"
)

type agendaRepo interface {
	Create(ctx context.Context, a domain.Agenda) error
	GetByID(ctx context.Context, id string) (*domain.Agenda, error)
	Update(ctx context.Context, id string, params domain.AgendaUpdateParams) error
	RenameID(ctx context.Context, oldID, newID string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.AgendaFilter) iter.Seq2[domain.Agenda, error]
	CountByStatus(ctx context.Context, status *domain.AgendaStatus) (int64, error)
}

// logRefMaintainer is the slice of the log store this service needs: the
// reference-maintenance operations it runs inside cascade transactions.
type logRefMaintainer interface {
	ClearAgendaRef(ctx context.Context, agendaID string) (int64, error)
	RewriteAgendaRef(ctx context.Context, oldID, newID string) (int64, error)
}

type txManager interface {
	RunInSerializableTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides agenda operations.
type Service struct {
	agendas agendaRepo
	logRefs logRefMaintainer
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new agenda service.
func NewService(log *slog.Logger, agendas agendaRepo, logRefs logRefMaintainer, tx txManager) *Service {
	return &Service{
		agendas: agendas,
		logRefs: logRefs,
		tx:      tx,
		log:     log.With("service", "agenda"),
	}
}
