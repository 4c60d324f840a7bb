package agenda

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finiate/finiate/internal/domain"
)

// CreateAgenda persists a new agenda with the caller-supplied id.
// Returns domain.ErrAlreadyExists if the id is taken.
func (s *Service) CreateAgenda(ctx context.Context, input CreateAgendaInput) (*domain.Agenda, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a := domain.Agenda{
		ID:          input.ID,
		Title:       input.Title,
		Status:      input.Status,
		InitiateAt:  input.InitiateAt,
		TerminateAt: input.TerminateAt,
	}

	if err := s.agendas.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create agenda: %w", err)
	}

	s.log.InfoContext(ctx, "agenda created",
		slog.String("agenda_id", a.ID),
		slog.String("status", a.Status.String()),
	)

	return &a, nil
}
