package eventlog

import (
	"strings"

	"github.com/finiate/finiate/internal/domain"
)

// RecordLogInput holds the parameters for recording an event log entry.
type RecordLogInput struct {
	ID       string
	CreateAt int64
	Content  string
	Type     domain.LogType

	// AgendaID tags the entry to an agenda; nil records an untagged entry.
	AgendaID *string
}

// Validate checks all fields and collects all errors.
func (i RecordLogInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "log_type", Message: "unknown type"})
	}
	if i.AgendaID != nil && strings.TrimSpace(*i.AgendaID) == "" {
		errs = append(errs, domain.FieldError{Field: "agenda_id", Message: "must be absent or non-empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
