package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finiate/finiate/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewID returns a fresh caller-style string id.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// SeedAgenda inserts an agenda row with sensible defaults and returns it.
func SeedAgenda(t *testing.T, pool *pgxpool.Pool) domain.Agenda {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UnixMilli()
	a := domain.Agenda{
		ID:          NewID(),
		Title:       "agenda-" + uniqueSuffix(),
		Status:      domain.AgendaStatusOngoing,
		InitiateAt:  now,
		TerminateAt: now + time.Hour.Milliseconds(),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO agenda (id, title, agenda_status, initiate_at, terminate_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Title, a.Status.String(), a.InitiateAt, a.TerminateAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAgenda insert: %v", err)
	}

	return a
}

// SeedLog inserts a log row tagged to agendaID (which may be nil) and
// returns it.
func SeedLog(t *testing.T, pool *pgxpool.Pool, agendaID *string) domain.Log {
	t.Helper()
	ctx := context.Background()

	l := domain.Log{
		ID:       NewID(),
		CreateAt: time.Now().UnixMilli(),
		Content:  "log-" + uniqueSuffix(),
		Type:     domain.LogTypeCommon,
		AgendaID: agendaID,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO log (id, create_at, content, log_type, agenda_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.CreateAt, l.Content, l.Type.String(), l.AgendaID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLog insert: %v", err)
	}

	return l
}
