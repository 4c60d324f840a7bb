package eventlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finiate/finiate/internal/domain"
)

// RecordLog persists a new log entry. A non-nil AgendaID must reference an
// existing agenda at commit time; a dangling reference fails with
// domain.ErrReferenceViolation and nothing is persisted.
func (s *Service) RecordLog(ctx context.Context, input RecordLogInput) (*domain.Log, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l := domain.Log{
		ID:       input.ID,
		CreateAt: input.CreateAt,
		Content:  input.Content,
		Type:     input.Type,
		AgendaID: input.AgendaID,
	}

	if err := s.logs.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("record log: %w", err)
	}

	attrs := []any{slog.String("log_id", l.ID), slog.String("log_type", l.Type.String())}
	if l.AgendaID != nil {
		attrs = append(attrs, slog.String("agenda_id", *l.AgendaID))
	}
	s.log.InfoContext(ctx, "log recorded", attrs...)

	return &l, nil
}
