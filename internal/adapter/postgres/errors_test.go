package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/finiate/finiate/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	if got := MapError(nil, "agenda", "a1"); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	err := MapError(pgx.ErrNoRows, "agenda", "a1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMapError_SQLStates(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"23505", domain.ErrAlreadyExists},
		{"23503", domain.ErrReferenceViolation},
		{"23514", domain.ErrValidation},
		{"40001", domain.ErrTxConflict},
		{"40P01", domain.ErrTxConflict},
	}

	for _, tc := range cases {
		pgErr := &pgconn.PgError{Code: tc.code}
		err := MapError(fmt.Errorf("exec: %w", pgErr), "log", "l1")
		if !errors.Is(err, tc.want) {
			t.Errorf("code %s: got %v, want %v", tc.code, err, tc.want)
		}
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	for _, ctxErr := range []error{context.Canceled, context.DeadlineExceeded} {
		err := MapError(ctxErr, "agenda", "a1")
		if !errors.Is(err, ctxErr) {
			t.Errorf("expected %v to pass through, got %v", ctxErr, err)
		}
		if errors.Is(err, domain.ErrNotFound) {
			t.Errorf("context error must not map to a domain error, got %v", err)
		}
	}
}

func TestMapError_UnknownWrapped(t *testing.T) {
	cause := errors.New("connection refused")
	err := MapError(cause, "agenda", "a1")
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be preserved, got %v", err)
	}
}
