package domain

// MaxAgendaTitleLen is the storage bound for agenda titles.
const MaxAgendaTitleLen = 250

// Agenda is a scheduled item with a time window and status.
// The id is assigned by the caller and never reused after deletion.
type Agenda struct {
	ID          string
	Title       string
	Status      AgendaStatus
	InitiateAt  int64 // epoch milliseconds
	TerminateAt int64 // epoch milliseconds
}

// AgendaUpdateParams describes a partial update of mutable agenda fields.
// nil means "don't change". The identifier itself is renamed through a
// separate operation because it cascades to referencing logs.
type AgendaUpdateParams struct {
	Title       *string
	Status      *AgendaStatus
	InitiateAt  *int64
	TerminateAt *int64
}

// IsEmpty returns true if no field is set.
func (p AgendaUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Status == nil && p.InitiateAt == nil && p.TerminateAt == nil
}

// AgendaFilter narrows ListAgendas. Zero value means "all agendas,
// insertion order".
type AgendaFilter struct {
	Title  *string
	Status *AgendaStatus

	// TerminateFrom/TerminateTo select agendas whose terminate_at falls
	// inside the inclusive range.
	TerminateFrom *int64
	TerminateTo   *int64
}
