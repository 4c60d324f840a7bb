package agenda

import (
	"strings"
	"unicode/utf8"

	"github.com/finiate/finiate/internal/domain"
)

// CreateAgendaInput holds the parameters for creating an agenda.
// The id is assigned by the caller and must never be reused.
type CreateAgendaInput struct {
	ID          string
	Title       string
	Status      domain.AgendaStatus
	InitiateAt  int64
	TerminateAt int64
}

// Validate checks all fields and collects all errors.
func (i CreateAgendaInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	// The bound counts characters, matching char_length in the schema.
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(i.Title) > domain.MaxAgendaTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 250 characters"})
	}

	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "agenda_status", Message: "unknown status"})
	}

	if i.TerminateAt < i.InitiateAt {
		errs = append(errs, domain.FieldError{Field: "terminate_at", Message: "must be >= initiate_at"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateAgendaInput holds a partial update of mutable agenda fields.
// nil = don't change. The identifier is renamed via RenameAgendaInput.
type UpdateAgendaInput struct {
	ID     string
	Params domain.AgendaUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateAgendaInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if i.Params.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "fields", Message: "at least one field required"})
	}

	if i.Params.Title != nil {
		if strings.TrimSpace(*i.Params.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if utf8.RuneCountInString(*i.Params.Title) > domain.MaxAgendaTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 250 characters"})
		}
	}

	if i.Params.Status != nil && !i.Params.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "agenda_status", Message: "unknown status"})
	}

	// The window rule is only checkable without a read when both ends move.
	if i.Params.InitiateAt != nil && i.Params.TerminateAt != nil &&
		*i.Params.TerminateAt < *i.Params.InitiateAt {
		errs = append(errs, domain.FieldError{Field: "terminate_at", Message: "must be >= initiate_at"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameAgendaInput holds the parameters for an identifier change.
type RenameAgendaInput struct {
	OldID string
	NewID string
}

// Validate checks all fields and collects all errors.
func (i RenameAgendaInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.OldID) == "" {
		errs = append(errs, domain.FieldError{Field: "old_id", Message: "required"})
	}
	if strings.TrimSpace(i.NewID) == "" {
		errs = append(errs, domain.FieldError{Field: "new_id", Message: "required"})
	}
	if i.OldID != "" && i.OldID == i.NewID {
		errs = append(errs, domain.FieldError{Field: "new_id", Message: "must differ from old_id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
