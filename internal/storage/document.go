package storage

import (
	"encoding/json"
	"fmt"

	"github.com/fitfocus/fitfocus/internal/model"
)

// The persisted document mirrors the state shape field for field, with
// camelCase keys so an exported blob stays readable alongside the
// in-memory model.

type stateDocument struct {
	Language  string           `json:"language"`
	Onboarded bool             `json:"onboarded"`
	Profile   *profileDocument `json:"profile"`
	History   []recordDocument `json:"history"`
	Theme     themeDocument    `json:"theme"`
	Persona   *string          `json:"persona"`
}

type profileDocument struct {
	InitialWeight float64 `json:"initialWeight"`
	TargetWeight  float64 `json:"targetWeight"`
	TargetDays    int     `json:"targetDays"`
	StartDate     string  `json:"startDate"`
}

type recordDocument struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type themeDocument struct {
	FontFamily      string `json:"fontFamily"`
	PrimaryGradient string `json:"primaryGradient"`
	FontSize        string `json:"fontSize"`
	FontColor       string `json:"fontColor"`
}

func encodeState(state model.AppState) ([]byte, error) {
	doc := stateDocument{
		Language:  string(state.Language),
		Onboarded: state.Onboarded,
		Theme: themeDocument{
			FontFamily:      string(state.Theme.FontFamily),
			PrimaryGradient: state.Theme.PrimaryGradient,
			FontSize:        string(state.Theme.FontSize),
			FontColor:       state.Theme.FontColor,
		},
		History: make([]recordDocument, 0, len(state.History)),
	}
	if state.Profile != nil {
		doc.Profile = &profileDocument{
			InitialWeight: state.Profile.InitialWeight,
			TargetWeight:  state.Profile.TargetWeight,
			TargetDays:    state.Profile.TargetDays,
			StartDate:     state.Profile.StartDate,
		}
	}
	for _, r := range state.History {
		doc.History = append(doc.History, recordDocument{Date: r.Date, Weight: r.Weight})
	}
	if state.Persona != nil {
		p := string(*state.Persona)
		doc.Persona = &p
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("storage: encode state: %w", err)
	}
	return payload, nil
}

func decodeState(payload []byte) (model.AppState, error) {
	var doc stateDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return model.AppState{}, fmt.Errorf("storage: decode state: %w", err)
	}
	lang := model.Language(doc.Language)
	if !lang.IsValid() {
		return model.AppState{}, fmt.Errorf("storage: decode state: unknown language %q", doc.Language)
	}
	state := model.AppState{
		Language:  lang,
		Onboarded: doc.Onboarded,
		Theme: model.ThemeSettings{
			FontFamily:      model.FontStyle(doc.Theme.FontFamily),
			PrimaryGradient: doc.Theme.PrimaryGradient,
			FontSize:        model.FontSize(doc.Theme.FontSize),
			FontColor:       doc.Theme.FontColor,
		},
	}
	if doc.Profile != nil {
		state.Profile = &model.UserProfile{
			InitialWeight: doc.Profile.InitialWeight,
			TargetWeight:  doc.Profile.TargetWeight,
			TargetDays:    doc.Profile.TargetDays,
			StartDate:     doc.Profile.StartDate,
		}
	}
	if len(doc.History) > 0 {
		state.History = make([]model.WeightRecord, 0, len(doc.History))
		for _, r := range doc.History {
			state.History = append(state.History, model.WeightRecord{Date: r.Date, Weight: r.Weight})
		}
	}
	if doc.Persona != nil {
		p := model.Persona(*doc.Persona)
		if !p.IsValid() {
			return model.AppState{}, fmt.Errorf("storage: decode state: unknown persona %q", *doc.Persona)
		}
		state.Persona = &p
	}
	return state, nil
}
