package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitfocus/fitfocus/internal/clock"
	"github.com/fitfocus/fitfocus/internal/coach"
	"github.com/fitfocus/fitfocus/internal/model"
)

// Every state transition replaces the whole in-memory state value and
// persists it in full. Saves are best-effort: a failure surfaces on the
// status bar, never interrupts the flow.

func (m *Model) applyTransition(next model.AppState, err error) tea.Cmd {
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
		return nil
	}
	m.State = next
	return m.persistCmd()
}

func (m Model) persistCmd() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	state := m.State
	return func() tea.Msg {
		if err := store.Save(context.Background(), state); err != nil {
			return AppErrorMsg{Err: err}
		}
		return StateSavedMsg{}
	}
}

func (m Model) feedbackCmd(weight float64, priorHistory []model.WeightRecord) tea.Cmd {
	if m.coach == nil {
		return func() tea.Msg { return FeedbackMsg{Err: coach.ErrNoAPIKey} }
	}
	client := m.coach
	req := coach.FeedbackRequest{
		CurrentWeight: weight,
		History:       priorHistory,
		Profile:       *m.State.Profile,
		Language:      m.State.Language,
		Persona:       m.personaOrDefault(),
	}
	return func() tea.Msg {
		text, err := client.DailyFeedback(context.Background(), req)
		return FeedbackMsg{Text: text, Err: err}
	}
}

func (m Model) chatCmd(message string, priorTurns []coach.Turn) tea.Cmd {
	if m.coach == nil {
		return func() tea.Msg { return ChatReplyMsg{Err: coach.ErrNoAPIKey} }
	}
	client := m.coach
	lang := m.State.Language
	persona := m.personaOrDefault()
	turns := make([]coach.Turn, len(priorTurns))
	copy(turns, priorTurns)
	return func() tea.Msg {
		text, err := client.Chat(context.Background(), message, turns, lang, persona)
		return ChatReplyMsg{Text: text, Err: err}
	}
}

func waitForDayChangeCmd(events <-chan clock.DayEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return DayChangedMsg{Date: ev.Date}
	}
}
