package domain

// AgendaStatus represents the lifecycle state of an agenda item.
type AgendaStatus string

const (
	AgendaStatusStored     AgendaStatus = "stored"
	AgendaStatusOngoing    AgendaStatus = "ongoing"
	AgendaStatusTerminated AgendaStatus = "terminated"
)

func (s AgendaStatus) String() string { return string(s) }

func (s AgendaStatus) IsValid() bool {
	switch s {
	case AgendaStatusStored, AgendaStatusOngoing, AgendaStatusTerminated:
		return true
	}
	return false
}

// LogType distinguishes the kinds of event log entries.
type LogType string

const (
	LogTypeActivate  LogType = "activate"
	LogTypePutOff    LogType = "put_off"
	LogTypeTerminate LogType = "terminate"
	LogTypeCommon    LogType = "common_log"
)

func (t LogType) String() string { return string(t) }

func (t LogType) IsValid() bool {
	switch t {
	case LogTypeActivate, LogTypePutOff, LogTypeTerminate, LogTypeCommon:
		return true
	}
	return false
}
