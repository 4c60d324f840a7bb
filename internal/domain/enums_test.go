package domain

import "testing"

func TestAgendaStatus_IsValid(t *testing.T) {
	valid := []AgendaStatus{AgendaStatusStored, AgendaStatusOngoing, AgendaStatusTerminated}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []AgendaStatus{"", "STORED", "done", "scheduled"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestLogType_IsValid(t *testing.T) {
	valid := []LogType{LogTypeActivate, LogTypePutOff, LogTypeTerminate, LogTypeCommon}
	for _, lt := range valid {
		if !lt.IsValid() {
			t.Errorf("expected %q to be valid", lt)
		}
	}

	invalid := []LogType{"", "common", "INFO", "putoff"}
	for _, lt := range invalid {
		if lt.IsValid() {
			t.Errorf("expected %q to be invalid", lt)
		}
	}
}

func TestAgendaUpdateParams_IsEmpty(t *testing.T) {
	if !(AgendaUpdateParams{}).IsEmpty() {
		t.Error("zero params should be empty")
	}

	title := "retro"
	if (AgendaUpdateParams{Title: &title}).IsEmpty() {
		t.Error("params with a title should not be empty")
	}
}
