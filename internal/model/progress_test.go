package model

import (
	"math"
	"testing"
)

func TestCurrentDayElapsed(t *testing.T) {
	profile := UserProfile{InitialWeight: 80, TargetWeight: 70, TargetDays: 30, StartDate: "2024-01-01"}
	cases := []struct {
		today string
		want  int
	}{
		{"2024-01-01", 1},
		{"2024-01-02", 2},
		{"2024-01-11", 11},
		{"2024-02-01", 32},
	}
	for _, tc := range cases {
		if got := CurrentDay(profile, tc.today); got != tc.want {
			t.Fatalf("CurrentDay(%s) = %d, want %d", tc.today, got, tc.want)
		}
	}
}

func TestCurrentDayClampsBeforeStart(t *testing.T) {
	profile := UserProfile{InitialWeight: 80, TargetWeight: 70, TargetDays: 30, StartDate: "2024-01-10"}
	if got := CurrentDay(profile, "2024-01-05"); got != 1 {
		t.Fatalf("expected day 1 before start date, got %d", got)
	}
	if got := CurrentDay(profile, "not-a-date"); got != 1 {
		t.Fatalf("expected day 1 for malformed date, got %d", got)
	}
}

func TestPercentLostScenarios(t *testing.T) {
	profile := UserProfile{InitialWeight: 80, TargetWeight: 70, TargetDays: 30, StartDate: "2024-01-01"}
	cases := []struct {
		name    string
		history []WeightRecord
		want    float64
	}{
		{"halfway", []WeightRecord{{Date: "2024-01-01", Weight: 80}, {Date: "2024-01-02", Weight: 75}}, 50},
		{"no loss", []WeightRecord{{Date: "2024-01-01", Weight: 80}}, 0},
		{"goal reached", []WeightRecord{{Date: "2024-01-01", Weight: 80}, {Date: "2024-01-20", Weight: 70}}, 100},
		{"overshoot clamps", []WeightRecord{{Date: "2024-01-01", Weight: 80}, {Date: "2024-01-25", Weight: 65}}, 100},
		{"gain is not negative progress", []WeightRecord{{Date: "2024-01-01", Weight: 80}, {Date: "2024-01-02", Weight: 83}}, 0},
	}
	for _, tc := range cases {
		got := PercentLost(tc.history, profile)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s: PercentLost = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPercentLostGuardsInvertedGoal(t *testing.T) {
	profile := UserProfile{InitialWeight: 70, TargetWeight: 80, TargetDays: 30, StartDate: "2024-01-01"}
	history := []WeightRecord{{Date: "2024-01-01", Weight: 70}, {Date: "2024-01-02", Weight: 60}}
	got := PercentLost(history, profile)
	if got < 0 || got > 100 {
		t.Fatalf("percent out of range with inverted goal: %v", got)
	}
	if got != 100 {
		t.Fatalf("expected clamp to 100 with inverted goal, got %v", got)
	}
}

func TestPercentLostEmptyHistory(t *testing.T) {
	profile := UserProfile{InitialWeight: 80, TargetWeight: 70, TargetDays: 30, StartDate: "2024-01-01"}
	got := PercentLost(nil, profile)
	if got != 100 {
		t.Fatalf("empty history treats current weight as 0, expected clamp to 100, got %v", got)
	}
}
