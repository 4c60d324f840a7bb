package agenda

import (
	"context"
	"fmt"
	"iter"

	"github.com/finiate/finiate/internal/domain"
)

// GetAgenda returns an agenda by id, or domain.ErrNotFound.
func (s *Service) GetAgenda(ctx context.Context, id string) (*domain.Agenda, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	a, err := s.agendas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get agenda: %w", err)
	}

	return a, nil
}

// ListAgendas returns a lazy, restartable sequence of agendas matching the
// filter, in insertion order.
func (s *Service) ListAgendas(ctx context.Context, filter domain.AgendaFilter) iter.Seq2[domain.Agenda, error] {
	return s.agendas.List(ctx, filter)
}

// CountAgendas returns the number of agendas with the given status, or of
// all agendas when status is nil.
func (s *Service) CountAgendas(ctx context.Context, status *domain.AgendaStatus) (int64, error) {
	return s.agendas.CountByStatus(ctx, status)
}
