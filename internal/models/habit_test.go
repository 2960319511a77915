package models

import "testing"

func TestRepeatCycleIsValid(t *testing.T) {
	if !RepeatDaily.IsValid() || !RepeatWeekly.IsValid() {
		t.Error("expected known cycles to be valid")
	}
	if RepeatCycle("MONTHLY").IsValid() {
		t.Error("expected unknown cycle to be invalid")
	}
	if RepeatCycle("").IsValid() {
		t.Error("expected empty cycle to be invalid")
	}
}

func TestSupervisionMethodIsValid(t *testing.T) {
	if !SupervisionLocalNotification.IsValid() || !SupervisionSMSReporting.IsValid() {
		t.Error("expected known methods to be valid")
	}
	if SupervisionMethod("EMAIL").IsValid() {
		t.Error("expected unknown method to be invalid")
	}
}

func TestDisplayNames(t *testing.T) {
	if got := RepeatDaily.DisplayName(); got != "Daily" {
		t.Errorf("RepeatDaily.DisplayName() = %q", got)
	}
	if got := RepeatWeekly.DisplayName(); got != "Weekly" {
		t.Errorf("RepeatWeekly.DisplayName() = %q", got)
	}
	if got := SupervisionSMSReporting.DisplayName(); got != "SMS reporting" {
		t.Errorf("SupervisionSMSReporting.DisplayName() = %q", got)
	}
	if got := RepeatCycle("bogus").DisplayName(); got != "Unknown" {
		t.Errorf("unknown cycle DisplayName() = %q", got)
	}
}
