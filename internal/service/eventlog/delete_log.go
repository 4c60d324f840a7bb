package eventlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finiate/finiate/internal/domain"
)

// DeleteLog removes a log entry. The referenced agenda, if any, is never
// touched. Returns domain.ErrNotFound if the entry is absent.
func (s *Service) DeleteLog(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.logs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete log: %w", err)
	}

	s.log.InfoContext(ctx, "log deleted", slog.String("log_id", id))

	return nil
}
