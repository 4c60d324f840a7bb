package agenda

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finiate/finiate/internal/domain"
)

// RenameAgenda changes an agenda identifier and atomically repoints every
// referencing log at the new id. Both steps run in one serializable
// transaction; the deferred foreign key validates the rewritten references
// against the renamed row at commit.
//
// Returns domain.ErrNotFound if oldID is absent, domain.ErrAlreadyExists if
// newID is taken, domain.ErrTxConflict if a concurrent log insert raced the
// rewrite (retry-safe).
func (s *Service) RenameAgenda(ctx context.Context, input RenameAgendaInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var rewritten int64
	err := s.tx.RunInSerializableTx(ctx, func(txCtx context.Context) error {
		var refErr error
		rewritten, refErr = s.logRefs.RewriteAgendaRef(txCtx, input.OldID, input.NewID)
		if refErr != nil {
			return fmt.Errorf("rewrite log references: %w", refErr)
		}

		if renErr := s.agendas.RenameID(txCtx, input.OldID, input.NewID); renErr != nil {
			return fmt.Errorf("rename agenda: %w", renErr)
		}

		return nil
	})
	if err != nil {
		// Same race as in DeleteAgenda: a log referencing the old id
		// committed after the rewrite pass. Retrying repoints it too.
		if errors.Is(err, domain.ErrReferenceViolation) {
			return fmt.Errorf("rename agenda %s: %w", input.OldID, domain.ErrTxConflict)
		}
		return err
	}

	s.log.InfoContext(ctx, "agenda renamed",
		slog.String("old_id", input.OldID),
		slog.String("new_id", input.NewID),
		slog.Int64("log_refs_rewritten", rewritten),
	)

	return nil
}
