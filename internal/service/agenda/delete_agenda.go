package agenda

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finiate/finiate/internal/domain"
)

// DeleteAgenda removes an agenda and atomically clears the agenda reference
// on every log that pointed at it. The logs themselves survive. Both steps
// run in one serializable transaction: either the agenda is gone and no log
// references it, or nothing changed.
//
// Deleting an absent id fails with domain.ErrNotFound. A concurrent log
// insert racing the cascade surfaces as domain.ErrTxConflict; retrying the
// delete will cascade the freshly committed log.
func (s *Service) DeleteAgenda(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	var cleared int64
	err := s.tx.RunInSerializableTx(ctx, func(txCtx context.Context) error {
		var refErr error
		cleared, refErr = s.logRefs.ClearAgendaRef(txCtx, id)
		if refErr != nil {
			return fmt.Errorf("clear log references: %w", refErr)
		}

		if delErr := s.agendas.Delete(txCtx, id); delErr != nil {
			return fmt.Errorf("delete agenda: %w", delErr)
		}

		return nil
	})
	if err != nil {
		// A reference violation here means a log referencing this agenda
		// committed after the cascade cleared the ones it could see. The
		// operation lost the race, not the invariant: a retry cascades the
		// new row too.
		if errors.Is(err, domain.ErrReferenceViolation) {
			return fmt.Errorf("delete agenda %s: %w", id, domain.ErrTxConflict)
		}
		return err
	}

	s.log.InfoContext(ctx, "agenda deleted",
		slog.String("agenda_id", id),
		slog.Int64("log_refs_cleared", cleared),
	)

	return nil
}
