package domain

// Log is a timestamped event record, optionally tagged to an agenda.
// Logs are append-only: once written, the only field the system ever
// rewrites is AgendaID, and only as part of an agenda delete or rename.
type Log struct {
	ID       string
	CreateAt int64 // epoch milliseconds
	Content  string
	Type     LogType

	// AgendaID references Agenda.ID. nil means the log entry is not
	// associated with any agenda item.
	AgendaID *string
}
