package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	err := NewValidationError("title", "required")

	want := "validation: title — required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("expected errors.Is(err, ErrValidation) to be true")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	err := NewValidationErrors([]FieldError{
		{Field: "title", Message: "required"},
		{Field: "terminate_at", Message: "must be >= initiate_at"},
	})

	want := "validation: 2 errors"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationError_AsTarget(t *testing.T) {
	wrapped := fmt.Errorf("create agenda: %w", NewValidationError("title", "max 250 characters"))

	var vErr *ValidationError
	if !errors.As(wrapped, &vErr) {
		t.Fatal("expected errors.As to find *ValidationError")
	}
	if vErr.Errors[0].Field != "title" {
		t.Errorf("Field = %q, want %q", vErr.Errors[0].Field, "title")
	}
}

func TestSentinels_Distinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrAlreadyExists, ErrValidation, ErrReferenceViolation, ErrTxConflict}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}
