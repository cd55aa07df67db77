package model

import (
	"testing"
	"time"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	if s.Onboarded {
		t.Fatal("default state must not be onboarded")
	}
	if s.Profile != nil || s.Persona != nil {
		t.Fatalf("default state carries profile or persona: %+v", s)
	}
	if len(s.History) != 0 {
		t.Fatalf("default history not empty: %+v", s.History)
	}
	if s.Language != LanguageCN {
		t.Fatalf("default language should be cn, got %q", s.Language)
	}
	if s.Theme != DefaultTheme() {
		t.Fatalf("unexpected default theme: %+v", s.Theme)
	}
}

func TestCurrentAndPreviousWeight(t *testing.T) {
	s := AppState{History: []WeightRecord{
		{Date: "2024-01-01", Weight: 80},
		{Date: "2024-01-02", Weight: 79},
	}}
	if got := s.CurrentWeight(); got != 79 {
		t.Fatalf("current weight = %v, want 79", got)
	}
	prev, ok := s.PreviousWeight()
	if !ok || prev != 80 {
		t.Fatalf("previous weight = %v ok=%v, want 80 true", prev, ok)
	}

	empty := AppState{}
	if got := empty.CurrentWeight(); got != 0 {
		t.Fatalf("empty history current weight = %v, want 0", got)
	}
	if _, ok := empty.PreviousWeight(); ok {
		t.Fatal("expected no previous weight for empty history")
	}
}

func TestProfileValidate(t *testing.T) {
	good := UserProfile{InitialWeight: 80, TargetWeight: 70, TargetDays: 30, StartDate: "2024-01-01"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected valid profile, got: %v", err)
	}
	bad := good
	bad.StartDate = "jan 1"
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for malformed start date")
	}
}

func TestTodayFormat(t *testing.T) {
	now := time.Date(2024, 1, 11, 23, 30, 0, 0, time.Local)
	if got := Today(now); got != "2024-01-11" {
		t.Fatalf("Today = %q, want 2024-01-11", got)
	}
}

func TestGradientStops(t *testing.T) {
	theme := DefaultTheme()
	start, end := theme.GradientStops()
	if start != "#6366f1" || end != "#a855f7" {
		t.Fatalf("unexpected stops: %s %s", start, end)
	}
	theme.PrimaryGradient = "no colors here"
	start, end = theme.GradientStops()
	if start != "#6366f1" || end != "#ec4899" {
		t.Fatalf("expected fallback stops, got: %s %s", start, end)
	}
}
