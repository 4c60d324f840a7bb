package agenda

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finiate/finiate/internal/domain"
)

// UpdateAgenda applies a partial update of the mutable agenda fields.
// No cascade is involved: the identifier cannot change here (see
// RenameAgenda), so log references stay valid by construction.
func (s *Service) UpdateAgenda(ctx context.Context, input UpdateAgendaInput) (*domain.Agenda, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.agendas.Update(ctx, input.ID, input.Params); err != nil {
		return nil, fmt.Errorf("update agenda: %w", err)
	}

	updated, err := s.agendas.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("reload agenda: %w", err)
	}

	s.log.InfoContext(ctx, "agenda updated", slog.String("agenda_id", input.ID))

	return updated, nil
}
