package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitfocus/fitfocus/internal/coach"
	"github.com/fitfocus/fitfocus/internal/i18n"
	"github.com/fitfocus/fitfocus/internal/model"
	"github.com/fitfocus/fitfocus/internal/views"
)

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.State.Persona == nil {
		return m.handlePersonaPickerKey(msg)
	}

	switch msg.String() {
	case "esc":
		m.Screen = ScreenDashboard
		m.Chat.Input.Blur()
		return m, nil
	case "ctrl+p":
		// Switching guides clears the ephemeral transcript.
		m.Chat.Turns = nil
		m.Chat.Input.SetValue("")
		m.Chat.Cursor = 0
		cmd := m.applyTransition(model.SelectPersona(m.State, nil))
		return m, cmd
	case "enter":
		return m.sendChatMessage()
	}
	if m.Chat.Pending {
		return m, nil
	}
	var cmd tea.Cmd
	m.Chat.Input, cmd = m.Chat.Input.Update(msg)
	return m, cmd
}

func (m Model) handlePersonaPickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cards := i18n.PersonaCards(m.State.Language)
	switch msg.String() {
	case "esc":
		m.Screen = ScreenDashboard
		return m, nil
	case "up", "k":
		if m.Chat.Cursor > 0 {
			m.Chat.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Chat.Cursor < len(cards)-1 {
			m.Chat.Cursor++
		}
		return m, nil
	case "enter":
		persona := cards[m.Chat.Cursor].Persona
		m.Chat.Turns = nil
		cmd := m.applyTransition(model.SelectPersona(m.State, &persona))
		if m.State.Persona != nil {
			m.Chat.Input.Focus()
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) sendChatMessage() (tea.Model, tea.Cmd) {
	if m.Chat.Pending {
		return m, nil
	}
	message := strings.TrimSpace(m.Chat.Input.Value())
	if message == "" {
		return m, nil
	}
	prior := m.Chat.Turns
	m.Chat.Turns = append(append([]coach.Turn{}, prior...), coach.Turn{Text: message, IsUser: true})
	m.Chat.Input.SetValue("")
	m.Chat.Pending = true
	return m, tea.Batch(m.chatCmd(message, prior), m.waitSpinner.Tick)
}

func (m Model) onChatReply(msg ChatReplyMsg) (tea.Model, tea.Cmd) {
	m.Chat.Pending = false
	text := msg.Text
	if msg.Err != nil {
		text = coach.ChatFallback(m.State.Language)
	}
	m.Chat.Turns = append(append([]coach.Turn{}, m.Chat.Turns...), coach.Turn{Text: text, IsUser: false})
	return m, nil
}

func (m Model) renderChatView() string {
	t := i18n.T(m.State.Language)
	if m.State.Persona == nil {
		cards := make([]views.PersonaCardData, 0, 3)
		for i, card := range i18n.PersonaCards(m.State.Language) {
			cards = append(cards, views.PersonaCardData{
				Title:    card.Title,
				Desc:     card.Desc,
				Icon:     card.Icon,
				Selected: i == m.Chat.Cursor,
			})
		}
		return views.RenderPersonaPicker(views.PersonaPickerData{
			Title: t.MentorTip,
			Cards: cards,
		})
	}

	lines := make([]views.TranscriptLine, 0, len(m.Chat.Turns))
	for _, turn := range m.Chat.Turns {
		lines = append(lines, views.TranscriptLine{Text: turn.Text, IsUser: turn.IsUser})
	}
	m.transcript.SetContent(views.RenderTranscript(lines))
	m.transcript.GotoBottom()

	return views.RenderChatPanel(views.ChatPanelData{
		Greeting:       t.ChatbotGreeting,
		TranscriptView: m.transcript.View(),
		InputView:      m.Chat.Input.View(),
		Pending:        m.Chat.Pending,
		SpinnerView:    m.waitSpinner.View(),
		SendHint:       t.PressEnter,
		SwitchHint:     "ctrl+p " + t.ChangePersona,
	})
}
