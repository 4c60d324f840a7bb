// Package eventlog implements the event log store using PostgreSQL.
// Log rows are append-only: the only rewrite the store supports is the
// agenda reference maintenance (ClearAgendaRef, RewriteAgendaRef) performed
// by the agenda service when an agenda is deleted or renamed.
package eventlog

import (
	"context"
	"fmt"
	"iter"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finiate/finiate/internal/adapter/postgres"
	"github.com/finiate/finiate/internal/domain"
)

// Repo provides event log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	createSQL = `
INSERT INTO log (id, create_at, content, log_type, agenda_id)
VALUES ($1, $2, $3, $4, $5)`

	getByIDSQL = `
SELECT id, create_at, content, log_type, agenda_id
FROM log
WHERE id = $1`

	deleteSQL = `DELETE FROM log WHERE id = $1`

	listByAgendaSQL = `
SELECT id, create_at, content, log_type, agenda_id
FROM log
WHERE agenda_id = $1
ORDER BY create_at, id`

	listByRangeSQL = `
SELECT id, create_at, content, log_type, agenda_id
FROM log
WHERE create_at >= $1 AND create_at <= $2
ORDER BY create_at, id`

	clearAgendaRefSQL = `UPDATE log SET agenda_id = NULL WHERE agenda_id = $1`

	rewriteAgendaRefSQL = `UPDATE log SET agenda_id = $2 WHERE agenda_id = $1`
)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new log row. A non-nil AgendaID must reference an
// existing agenda: the foreign key rejects dangling references and the
// error surfaces as domain.ErrReferenceViolation. An id collision surfaces
// as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, l domain.Log) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		l.ID, l.CreateAt, l.Content, l.Type.String(), l.AgendaID)
	if err != nil {
		return postgres.MapError(err, "log", l.ID)
	}

	return nil
}

// Delete removes a log row. Never touches the referenced agenda.
// Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("log %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Agenda reference maintenance (agenda service only)
// ---------------------------------------------------------------------------

// ClearAgendaRef sets agenda_id to NULL on every log referencing agendaID
// and reports how many rows were rewritten. The log rows themselves are
// never deleted. Must run inside the same transaction as the agenda delete.
func (r *Repo) ClearAgendaRef(ctx context.Context, agendaID string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, clearAgendaRefSQL, agendaID)
	if err != nil {
		return 0, postgres.MapError(err, "log refs of agenda", agendaID)
	}

	return tag.RowsAffected(), nil
}

// RewriteAgendaRef repoints every log referencing oldID at newID and reports
// how many rows were rewritten. Must run inside the same transaction as the
// agenda identifier rename; the deferred FK validates the new target at
// commit.
func (r *Repo) RewriteAgendaRef(ctx context.Context, oldID, newID string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, rewriteAgendaRefSQL, oldID, newID)
	if err != nil {
		return 0, postgres.MapError(err, "log refs of agenda", oldID)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a log by primary key.
// Returns domain.ErrNotFound if the row does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Log, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "log", id)
	}

	return l, nil
}

// ListByAgenda returns a lazy, restartable sequence of the logs referencing
// agendaID, ordered by create_at.
func (r *Repo) ListByAgenda(ctx context.Context, agendaID string) iter.Seq2[domain.Log, error] {
	return r.list(ctx, listByAgendaSQL, agendaID)
}

// ListByRange returns a lazy, restartable sequence of the logs whose
// create_at lies in [from, to], bounds inclusive, ordered by create_at.
func (r *Repo) ListByRange(ctx context.Context, from, to int64) iter.Seq2[domain.Log, error] {
	return r.list(ctx, listByRangeSQL, from, to)
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) iter.Seq2[domain.Log, error] {
	return func(yield func(domain.Log, error) bool) {
		rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
		if err != nil {
			yield(domain.Log{}, fmt.Errorf("list logs: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			l, err := scanLog(rows)
			if err != nil {
				yield(domain.Log{}, fmt.Errorf("scan log: %w", err))
				return
			}
			if !yield(*l, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.Log{}, fmt.Errorf("iterate logs: %w", err))
		}
	}
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (*domain.Log, error) {
	var (
		l       domain.Log
		logType string
	)
	if err := row.Scan(&l.ID, &l.CreateAt, &l.Content, &logType, &l.AgendaID); err != nil {
		return nil, err
	}
	l.Type = domain.LogType(logType)

	return &l, nil
}
