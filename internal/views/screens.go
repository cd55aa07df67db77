package views

import (
	"fmt"
	"strings"
)

type OnboardingPanelData struct {
	Title     string
	Tagline   string
	Prompts   []string
	Values    []string
	Step      int
	InputView string
	Hint      string
}

type ProgressPanelData struct {
	DayLabel  string
	Day       int
	TotalDays int
	BarView   string
}

type WeightPanelData struct {
	CurrentLabel string
	Current      float64
	LostLabel    string
	LostPercent  float64
	TargetLabel  string
	Target       float64
	GoalReached  string
	Plateau      string
}

type WeighInPanelData struct {
	Title       string
	Prompt      string
	InputView   string
	ConfirmHint string
	Pending     bool
	SpinnerView string
	Feedback    string
}

type PersonaCardData struct {
	Title    string
	Desc     string
	Icon     string
	Selected bool
}

type PersonaPickerData struct {
	Title string
	Cards []PersonaCardData
}

type ChatPanelData struct {
	Greeting       string
	TranscriptView string
	InputView      string
	Pending        bool
	SpinnerView    string
	SendHint       string
	SwitchHint     string
}

type CustomizeOptionData struct {
	Label    string
	Value    string
	Selected bool
}

type CustomizePanelData struct {
	Title   string
	Options []CustomizeOptionData
	Hint    string
}

func RenderOnboardingPanel(data OnboardingPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	b.WriteString(data.Tagline + "\n\n")
	for i, prompt := range data.Prompts {
		marker := "  "
		value := data.Values[i]
		if i == data.Step {
			marker = "> "
			value = data.InputView
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, prompt, value))
	}
	b.WriteString("\n" + data.Hint)
	return strings.TrimSpace(b.String())
}

func RenderProgressPanel(data ProgressPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %d / %d\n", data.DayLabel, data.Day, data.TotalDays))
	b.WriteString(data.BarView)
	return strings.TrimSpace(b.String())
}

func RenderWeightPanel(data WeightPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %.1f kg\n", data.CurrentLabel, data.Current))
	b.WriteString(fmt.Sprintf("%s: %.0f%%\n", data.LostLabel, data.LostPercent))
	b.WriteString(fmt.Sprintf("%s: %.1f kg\n", data.TargetLabel, data.Target))
	if data.LostPercent >= 100 && data.GoalReached != "" {
		b.WriteString(data.GoalReached + "\n")
	} else if data.Plateau != "" {
		b.WriteString(data.Plateau + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderWeighInPanel(data WeighInPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	b.WriteString(data.Prompt + "\n")
	b.WriteString(data.InputView + "\n")
	if data.Pending {
		b.WriteString(data.SpinnerView + "\n")
	}
	if data.Feedback != "" {
		b.WriteString("\n" + data.Feedback + "\n")
	}
	b.WriteString("\n" + data.ConfirmHint)
	return strings.TrimSpace(b.String())
}

func RenderPersonaPicker(data PersonaPickerData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n\n")
	for _, card := range data.Cards {
		marker := "  "
		if card.Selected {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, card.Icon, card.Title))
		b.WriteString(fmt.Sprintf("    %s\n", card.Desc))
	}
	b.WriteString("\nactions: [j/k]move [enter]choose [esc]back")
	return strings.TrimSpace(b.String())
}

func RenderChatPanel(data ChatPanelData) string {
	var b strings.Builder
	b.WriteString(data.Greeting + "\n\n")
	b.WriteString(data.TranscriptView + "\n")
	if data.Pending {
		b.WriteString(data.SpinnerView + "\n")
	}
	b.WriteString("\n" + data.InputView + "\n")
	b.WriteString(fmt.Sprintf("%s | %s", data.SendHint, data.SwitchHint))
	return strings.TrimSpace(b.String())
}

func RenderCustomizePanel(data CustomizePanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n\n")
	for _, opt := range data.Options {
		marker := "  "
		if opt.Selected {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", marker, opt.Label, opt.Value))
	}
	b.WriteString("\n" + data.Hint)
	return strings.TrimSpace(b.String())
}

// RenderTranscript formats chat turns with a speaker prefix per line.
func RenderTranscript(lines []TranscriptLine) string {
	if len(lines) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	for _, line := range lines {
		prefix := "coach"
		if line.IsUser {
			prefix = "  you"
		}
		b.WriteString(fmt.Sprintf("%s | %s\n", prefix, line.Text))
	}
	return strings.TrimSpace(b.String())
}

type TranscriptLine struct {
	Text   string
	IsUser bool
}
