package model

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyOnboarded = errors.New("model: onboarding already completed")
	ErrNotOnboarded     = errors.New("model: onboarding not completed")
	ErrEntryExists      = errors.New("model: today already has a weight entry")
)

// Transitions are pure: each computes a complete new state from the current
// state and the action's input, leaving the input state untouched. Callers
// persist every returned state in full.

// CompleteOnboarding marks the user onboarded and seeds the history with a
// single record carrying the initial weight on today's date.
func CompleteOnboarding(s AppState, profile UserProfile, today string) (AppState, error) {
	if s.Onboarded {
		return s, ErrAlreadyOnboarded
	}
	if err := profile.Validate(); err != nil {
		return s, err
	}
	next := s
	next.Onboarded = true
	p := profile
	next.Profile = &p
	next.History = []WeightRecord{{Date: today, Weight: profile.InitialWeight}}
	return next, nil
}

// RecordWeighIn appends today's weight. Rejected when a record for today
// already exists, keeping the daily gate idempotent.
func RecordWeighIn(s AppState, weight float64, today string) (AppState, error) {
	if !s.Onboarded {
		return s, ErrNotOnboarded
	}
	if weight <= 0 {
		return s, fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}
	if HasEntryFor(s.History, today) {
		return s, fmt.Errorf("%w: %s", ErrEntryExists, today)
	}
	next := s
	next.History = make([]WeightRecord, 0, len(s.History)+1)
	next.History = append(next.History, s.History...)
	next.History = append(next.History, WeightRecord{Date: today, Weight: weight})
	return next, nil
}

// SelectPersona replaces the coach persona. A nil persona clears the
// selection; the ephemeral chat transcript is owned by the UI layer and
// reset there on any persona change.
func SelectPersona(s AppState, persona *Persona) (AppState, error) {
	if persona != nil && !persona.IsValid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidPersona, *persona)
	}
	next := s
	if persona == nil {
		next.Persona = nil
		return next, nil
	}
	p := *persona
	next.Persona = &p
	return next, nil
}

// UpdateTheme shallow-merges the patch into the theme.
func UpdateTheme(s AppState, patch ThemePatch) (AppState, error) {
	next := s
	next.Theme = s.Theme.Merge(patch)
	return next, nil
}

// ToggleLanguage flips between the two supported language codes.
func ToggleLanguage(s AppState) (AppState, error) {
	next := s
	next.Language = s.Language.Toggle()
	return next, nil
}
