// Package agenda implements the Agenda store using PostgreSQL.
// The cascade-coupled mutations (delete, identifier rename) are NOT wrapped
// in transactions here — the agenda service runs them together with the log
// reference rewrite inside a single transaction via the TxManager.
package agenda

import (
	"context"
	"fmt"
	"iter"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finiate/finiate/internal/adapter/postgres"
	"github.com/finiate/finiate/internal/domain"
)

// Repo provides agenda persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new agenda repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql builds queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createSQL = `
INSERT INTO agenda (id, title, agenda_status, initiate_at, terminate_at)
VALUES ($1, $2, $3, $4, $5)`

	getByIDSQL = `
SELECT id, title, agenda_status, initiate_at, terminate_at
FROM agenda
WHERE id = $1`

	renameIDSQL = `UPDATE agenda SET id = $2 WHERE id = $1`

	deleteSQL = `DELETE FROM agenda WHERE id = $1`
)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new agenda row. Returns domain.ErrAlreadyExists if the
// caller-supplied id is taken.
func (r *Repo) Create(ctx context.Context, a domain.Agenda) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		a.ID, a.Title, a.Status.String(), a.InitiateAt, a.TerminateAt)
	if err != nil {
		return postgres.MapError(err, "agenda", a.ID)
	}

	return nil
}

// Update applies a partial update of the mutable agenda fields. The
// identifier is deliberately not updatable here; see RenameID.
// Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Update(ctx context.Context, id string, params domain.AgendaUpdateParams) error {
	if params.IsEmpty() {
		return nil
	}

	b := psql.Update("agenda")
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Status != nil {
		b = b.Set("agenda_status", params.Status.String())
	}
	if params.InitiateAt != nil {
		b = b.Set("initiate_at", *params.InitiateAt)
	}
	if params.TerminateAt != nil {
		b = b.Set("terminate_at", *params.TerminateAt)
	}

	sqlStr, args, err := b.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build agenda update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "agenda", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agenda %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// RenameID changes the agenda primary key from oldID to newID. Callers must
// run it in the same transaction as the log reference rewrite (the FK check
// is deferred to commit, so intra-transaction ordering is free).
// Returns domain.ErrNotFound if oldID is absent, domain.ErrAlreadyExists if
// newID is taken.
func (r *Repo) RenameID(ctx context.Context, oldID, newID string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, renameIDSQL, oldID, newID)
	if err != nil {
		return postgres.MapError(err, "agenda", oldID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agenda %s: %w", oldID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an agenda row. Referencing logs are untouched here; the
// service clears their references first, inside the same transaction.
// Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "agenda", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agenda %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an agenda by primary key.
// Returns domain.ErrNotFound if the row does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Agenda, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		a      domain.Agenda
		status string
	)
	err := querier.QueryRow(ctx, getByIDSQL, id).
		Scan(&a.ID, &a.Title, &status, &a.InitiateAt, &a.TerminateAt)
	if err != nil {
		return nil, postgres.MapError(err, "agenda", id)
	}
	a.Status = domain.AgendaStatus(status)

	return &a, nil
}

// List returns a lazy sequence of agendas matching the filter, in insertion
// order. Each range over the sequence re-issues the query, so the sequence
// is restartable. A scan or query failure is yielded once as the second
// element and the sequence stops.
func (r *Repo) List(ctx context.Context, filter domain.AgendaFilter) iter.Seq2[domain.Agenda, error] {
	return func(yield func(domain.Agenda, error) bool) {
		b := psql.
			Select("id", "title", "agenda_status", "initiate_at", "terminate_at").
			From("agenda").
			OrderBy("seq")

		if filter.Title != nil {
			b = b.Where(sq.Eq{"title": *filter.Title})
		}
		if filter.Status != nil {
			b = b.Where(sq.Eq{"agenda_status": filter.Status.String()})
		}
		if filter.TerminateFrom != nil {
			b = b.Where(sq.GtOrEq{"terminate_at": *filter.TerminateFrom})
		}
		if filter.TerminateTo != nil {
			b = b.Where(sq.LtOrEq{"terminate_at": *filter.TerminateTo})
		}

		sqlStr, args, err := b.ToSql()
		if err != nil {
			yield(domain.Agenda{}, fmt.Errorf("build agenda list: %w", err))
			return
		}

		rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
		if err != nil {
			yield(domain.Agenda{}, fmt.Errorf("list agendas: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var (
				a      domain.Agenda
				status string
			)
			if err := rows.Scan(&a.ID, &a.Title, &status, &a.InitiateAt, &a.TerminateAt); err != nil {
				yield(domain.Agenda{}, fmt.Errorf("scan agenda: %w", err))
				return
			}
			a.Status = domain.AgendaStatus(status)

			if !yield(a, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.Agenda{}, fmt.Errorf("iterate agendas: %w", err))
		}
	}
}

// CountByStatus returns the number of agendas with the given status, or of
// all agendas when status is nil.
func (r *Repo) CountByStatus(ctx context.Context, status *domain.AgendaStatus) (int64, error) {
	b := psql.Select("count(*)").From("agenda")
	if status != nil {
		b = b.Where(sq.Eq{"agenda_status": status.String()})
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build agenda count: %w", err)
	}

	var count int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count agendas: %w", err)
	}

	return count, nil
}
