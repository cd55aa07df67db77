package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidLanguage = errors.New("model: invalid language")
	ErrInvalidPersona  = errors.New("model: invalid persona")
	ErrInvalidWeight   = errors.New("model: weight must be positive")
)

const DateLayout = "2006-01-02"

type Language string

const (
	LanguageEN Language = "en"
	LanguageCN Language = "cn"
)

func (l Language) IsValid() bool {
	switch l {
	case LanguageEN, LanguageCN:
		return true
	default:
		return false
	}
}

// Toggle flips between the two supported language codes.
func (l Language) Toggle() Language {
	if l == LanguageEN {
		return LanguageCN
	}
	return LanguageEN
}

type Persona string

const (
	PersonaStrict Persona = "strict"
	PersonaPoetic Persona = "poetic"
	PersonaGentle Persona = "gentle"
)

func (p Persona) IsValid() bool {
	switch p {
	case PersonaStrict, PersonaPoetic, PersonaGentle:
		return true
	default:
		return false
	}
}

type UserProfile struct {
	InitialWeight float64
	TargetWeight  float64
	TargetDays    int
	StartDate     string
}

func (p UserProfile) Validate() error {
	if p.InitialWeight <= 0 {
		return fmt.Errorf("%w: initial %v", ErrInvalidWeight, p.InitialWeight)
	}
	if p.TargetWeight <= 0 {
		return fmt.Errorf("%w: target %v", ErrInvalidWeight, p.TargetWeight)
	}
	if p.TargetDays < 1 {
		return errors.New("model: target days must be at least 1")
	}
	if _, err := time.Parse(DateLayout, p.StartDate); err != nil {
		return fmt.Errorf("model: invalid start date %q: %w", p.StartDate, err)
	}
	return nil
}

type WeightRecord struct {
	Date   string
	Weight float64
}

func (r WeightRecord) Validate() error {
	if r.Weight <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, r.Weight)
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("model: invalid record date %q: %w", r.Date, err)
	}
	return nil
}

// AppState is the single persisted application state. History is
// append-only; insertion order is chronological under normal use.
type AppState struct {
	Language  Language
	Onboarded bool
	Profile   *UserProfile
	History   []WeightRecord
	Theme     ThemeSettings
	Persona   *Persona
}

func DefaultState() AppState {
	return AppState{
		Language:  LanguageCN,
		Onboarded: false,
		Profile:   nil,
		History:   nil,
		Theme:     DefaultTheme(),
		Persona:   nil,
	}
}

// CurrentWeight is the weight field of the last history record, or 0 when
// the history is empty (does not occur post-onboarding, since onboarding
// seeds one record).
func (s AppState) CurrentWeight() float64 {
	if len(s.History) == 0 {
		return 0
	}
	return s.History[len(s.History)-1].Weight
}

// PreviousWeight is the weight recorded before the most recent one.
func (s AppState) PreviousWeight() (float64, bool) {
	if len(s.History) < 2 {
		return 0, false
	}
	return s.History[len(s.History)-2].Weight, true
}

// Today formats the client-local wall-clock date at day granularity.
func Today(now time.Time) string {
	return now.In(time.Local).Format(DateLayout)
}
