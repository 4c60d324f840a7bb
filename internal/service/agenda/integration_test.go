package agenda_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finiate/finiate/internal/adapter/postgres"
	agendarepo "github.com/finiate/finiate/internal/adapter/postgres/agenda"
	eventlogrepo "github.com/finiate/finiate/internal/adapter/postgres/eventlog"
	"github.com/finiate/finiate/internal/adapter/postgres/testhelper"
	"github.com/finiate/finiate/internal/domain"
	"github.com/finiate/finiate/internal/service/agenda"
	"github.com/finiate/finiate/internal/service/eventlog"
)

// newServices wires both services against a real database, the way
// cmd/finiate does.
func newServices(t *testing.T) (*agenda.Service, *eventlog.Service, *pgxpool.Pool) {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logs := eventlogrepo.New(pool)
	agendas := agendarepo.New(pool)
	tx := postgres.NewTxManager(pool)

	return agenda.NewService(slog.Default(), agendas, logs, tx),
		eventlog.NewService(slog.Default(), logs),
		pool
}

func createInput() agenda.CreateAgendaInput {
	now := time.Now().UnixMilli()
	return agenda.CreateAgendaInput{
		ID:          testhelper.NewID(),
		Title:       "Release retrospective",
		Status:      domain.AgendaStatusOngoing,
		InitiateAt:  now,
		TerminateAt: now + 3_600_000,
	}
}

func recordInput(agendaID *string) eventlog.RecordLogInput {
	return eventlog.RecordLogInput{
		ID:       testhelper.NewID(),
		CreateAt: time.Now().UnixMilli(),
		Content:  "retro notes",
		Type:     domain.LogTypeCommon,
		AgendaID: agendaID,
	}
}

func TestIntegration_DeleteClearsRefsAndLogsSurvive(t *testing.T) {
	t.Parallel()
	agendaSvc, logSvc, _ := newServices(t)
	ctx := context.Background()

	a, err := agendaSvc.CreateAgenda(ctx, createInput())
	if err != nil {
		t.Fatalf("CreateAgenda: %v", err)
	}

	l, err := logSvc.RecordLog(ctx, recordInput(&a.ID))
	if err != nil {
		t.Fatalf("RecordLog: %v", err)
	}

	if err := agendaSvc.DeleteAgenda(ctx, a.ID); err != nil {
		t.Fatalf("DeleteAgenda: %v", err)
	}

	if _, err := agendaSvc.GetAgenda(ctx, a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("agenda must be gone, got %v", err)
	}

	got, err := logSvc.GetLog(ctx, l.ID)
	if err != nil {
		t.Fatalf("log must survive the agenda delete: %v", err)
	}
	if got.AgendaID != nil {
		t.Errorf("log reference must be cleared, still points at %q", *got.AgendaID)
	}
	if got.Content != l.Content || got.Type != l.Type || got.CreateAt != l.CreateAt {
		t.Errorf("cascade must only touch the reference: %+v", got)
	}
}

func TestIntegration_RenameRepointsRefs(t *testing.T) {
	t.Parallel()
	agendaSvc, logSvc, _ := newServices(t)
	ctx := context.Background()

	a, err := agendaSvc.CreateAgenda(ctx, createInput())
	if err != nil {
		t.Fatalf("CreateAgenda: %v", err)
	}

	l1, err := logSvc.RecordLog(ctx, recordInput(&a.ID))
	if err != nil {
		t.Fatalf("RecordLog: %v", err)
	}
	l2, err := logSvc.RecordLog(ctx, recordInput(&a.ID))
	if err != nil {
		t.Fatalf("RecordLog: %v", err)
	}

	newID := testhelper.NewID()
	err = agendaSvc.RenameAgenda(ctx, agenda.RenameAgendaInput{OldID: a.ID, NewID: newID})
	if err != nil {
		t.Fatalf("RenameAgenda: %v", err)
	}

	if _, err := agendaSvc.GetAgenda(ctx, a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("old id must be gone, got %v", err)
	}
	if _, err := agendaSvc.GetAgenda(ctx, newID); err != nil {
		t.Errorf("new id must resolve: %v", err)
	}

	for _, id := range []string{l1.ID, l2.ID} {
		got, err := logSvc.GetLog(ctx, id)
		if err != nil {
			t.Fatalf("GetLog %s: %v", id, err)
		}
		if got.AgendaID == nil || *got.AgendaID != newID {
			t.Errorf("log %s must point at %q, got %v", id, newID, got.AgendaID)
		}
	}
}

func TestIntegration_RenameToTakenIDLeavesRefsIntact(t *testing.T) {
	t.Parallel()
	agendaSvc, logSvc, _ := newServices(t)
	ctx := context.Background()

	a, err := agendaSvc.CreateAgenda(ctx, createInput())
	if err != nil {
		t.Fatalf("CreateAgenda: %v", err)
	}
	other, err := agendaSvc.CreateAgenda(ctx, createInput())
	if err != nil {
		t.Fatalf("CreateAgenda: %v", err)
	}

	l, err := logSvc.RecordLog(ctx, recordInput(&a.ID))
	if err != nil {
		t.Fatalf("RecordLog: %v", err)
	}

	err = agendaSvc.RenameAgenda(ctx, agenda.RenameAgendaInput{OldID: a.ID, NewID: other.ID})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// The rewrite step ran inside the failed transaction and must have
	// rolled back with it.
	got, err := logSvc.GetLog(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetLog: %v", err)
	}
	if got.AgendaID == nil || *got.AgendaID != a.ID {
		t.Errorf("log must still point at %q, got %v", a.ID, got.AgendaID)
	}
}

func TestIntegration_DanglingReferenceRejected(t *testing.T) {
	t.Parallel()
	_, logSvc, _ := newServices(t)
	ctx := context.Background()

	missing := testhelper.NewID()
	input := recordInput(&missing)

	if _, err := logSvc.RecordLog(ctx, input); !errors.Is(err, domain.ErrReferenceViolation) {
		t.Fatalf("expected ErrReferenceViolation, got %v", err)
	}

	if _, err := logSvc.GetLog(ctx, input.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("rejected log must not persist, got %v", err)
	}
}

func TestIntegration_UntaggedLogLifecycle(t *testing.T) {
	t.Parallel()
	_, logSvc, _ := newServices(t)
	ctx := context.Background()

	l, err := logSvc.RecordLog(ctx, recordInput(nil))
	if err != nil {
		t.Fatalf("RecordLog: %v", err)
	}

	got, err := logSvc.GetLog(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetLog: %v", err)
	}
	if got.AgendaID != nil {
		t.Errorf("expected untagged log, got %v", *got.AgendaID)
	}

	if err := logSvc.DeleteLog(ctx, l.ID); err != nil {
		t.Fatalf("DeleteLog: %v", err)
	}
	if err := logSvc.DeleteLog(ctx, l.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete must report ErrNotFound, got %v", err)
	}
}

func TestIntegration_DeleteMissingAgenda(t *testing.T) {
	t.Parallel()
	agendaSvc, _, _ := newServices(t)

	err := agendaSvc.DeleteAgenda(context.Background(), testhelper.NewID())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// racingRefMaintainer delegates to the real repo but commits a fresh log
// referencing the agenda on a separate connection right after the clear
// pass, modeling a writer that slips in mid-cascade. The FK then fails the
// delete transaction at COMMIT, not at any statement inside it.
type racingRefMaintainer struct {
	repo *eventlogrepo.Repo
	pool *pgxpool.Pool
	t    *testing.T
}

func (r *racingRefMaintainer) ClearAgendaRef(ctx context.Context, agendaID string) (int64, error) {
	n, err := r.repo.ClearAgendaRef(ctx, agendaID)
	if err != nil {
		return n, err
	}

	_, insErr := r.pool.Exec(context.Background(),
		`INSERT INTO log (id, create_at, content, log_type, agenda_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		testhelper.NewID(), time.Now().UnixMilli(), "slipped in", "common_log", agendaID,
	)
	if insErr != nil {
		r.t.Fatalf("racing insert: %v", insErr)
	}

	return n, nil
}

func (r *racingRefMaintainer) RewriteAgendaRef(ctx context.Context, oldID, newID string) (int64, error) {
	return r.repo.RewriteAgendaRef(ctx, oldID, newID)
}

// A cascade that loses to a concurrent log insert fails at COMMIT (the FK
// is deferred) and must still surface as the retryable ErrTxConflict.
func TestIntegration_DeleteLosingRaceAtCommitIsTxConflict(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	logs := eventlogrepo.New(pool)
	racer := &racingRefMaintainer{repo: logs, pool: pool, t: t}
	tx := postgres.NewTxManager(pool)
	agendaSvc := agenda.NewService(slog.Default(), agendarepo.New(pool), racer, tx)
	ctx := context.Background()

	a, err := agendaSvc.CreateAgenda(ctx, createInput())
	if err != nil {
		t.Fatalf("CreateAgenda: %v", err)
	}

	err = agendaSvc.DeleteAgenda(ctx, a.ID)
	if !errors.Is(err, domain.ErrTxConflict) {
		t.Fatalf("expected ErrTxConflict from the losing cascade, got %v", err)
	}

	// Nothing committed: the agenda survives and a retry cascades the
	// freshly inserted log too.
	if _, err := agendaSvc.GetAgenda(ctx, a.ID); err != nil {
		t.Fatalf("agenda must survive the aborted cascade: %v", err)
	}
}

// Concurrent delete-vs-record races must never leave a log pointing at a
// deleted agenda: one side wins, the other observes a clean outcome
// (success, ErrTxConflict, or ErrReferenceViolation).
func TestIntegration_ConcurrentDeleteVsRecord(t *testing.T) {
	t.Parallel()
	agendaSvc, logSvc, _ := newServices(t)
	ctx := context.Background()

	for range 5 {
		a, err := agendaSvc.CreateAgenda(ctx, createInput())
		if err != nil {
			t.Fatalf("CreateAgenda: %v", err)
		}
		input := recordInput(&a.ID)

		var wg sync.WaitGroup
		var delErr, recErr error

		wg.Add(2)
		go func() {
			defer wg.Done()
			delErr = agendaSvc.DeleteAgenda(ctx, a.ID)
			for errors.Is(delErr, domain.ErrTxConflict) {
				delErr = agendaSvc.DeleteAgenda(ctx, a.ID)
			}
		}()
		go func() {
			defer wg.Done()
			_, recErr = logSvc.RecordLog(ctx, input)
		}()
		wg.Wait()

		if delErr != nil {
			t.Fatalf("delete must eventually succeed: %v", delErr)
		}
		if recErr != nil &&
			!errors.Is(recErr, domain.ErrReferenceViolation) &&
			!errors.Is(recErr, domain.ErrTxConflict) {
			t.Fatalf("unexpected record error: %v", recErr)
		}

		// Whatever the interleaving, the recorded log (if any) must not
		// reference the deleted agenda.
		if recErr == nil {
			got, err := logSvc.GetLog(ctx, input.ID)
			if err != nil {
				t.Fatalf("GetLog: %v", err)
			}
			if got.AgendaID != nil {
				t.Fatalf("log references deleted agenda %q", *got.AgendaID)
			}
		}
	}
}
