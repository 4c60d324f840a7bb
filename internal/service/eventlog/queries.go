package eventlog

import (
	"context"
	"fmt"
	"iter"

	"github.com/finiate/finiate/internal/domain"
)

// GetLog returns a log entry by id, or domain.ErrNotFound.
func (s *Service) GetLog(ctx context.Context, id string) (*domain.Log, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	l, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}

	return l, nil
}

// ListLogsByAgenda returns a lazy, restartable sequence of the logs tagged
// to the given agenda, ordered by create_at.
func (s *Service) ListLogsByAgenda(ctx context.Context, agendaID string) (iter.Seq2[domain.Log, error], error) {
	if agendaID == "" {
		return nil, domain.NewValidationError("agenda_id", "required")
	}
	return s.logs.ListByAgenda(ctx, agendaID), nil
}

// ListLogsByRange returns a lazy, restartable sequence of the logs whose
// create_at lies in [from, to], bounds inclusive.
func (s *Service) ListLogsByRange(ctx context.Context, from, to int64) (iter.Seq2[domain.Log, error], error) {
	if from > to {
		return nil, domain.NewValidationError("range", "from must not exceed to")
	}
	return s.logs.ListByRange(ctx, from, to), nil
}
