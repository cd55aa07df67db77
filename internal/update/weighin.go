package update

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitfocus/fitfocus/internal/coach"
	"github.com/fitfocus/fitfocus/internal/i18n"
	"github.com/fitfocus/fitfocus/internal/model"
	"github.com/fitfocus/fitfocus/internal/views"
)

func (m Model) handleWeighInKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.WeighIn.Pending {
		// A feedback request is outstanding; no duplicate submission.
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.Screen = ScreenDashboard
		m.WeighIn.Input.Blur()
		return m, nil
	case "enter":
		return m.confirmWeighIn()
	}
	var cmd tea.Cmd
	m.WeighIn.Input, cmd = m.WeighIn.Input.Update(msg)
	return m, cmd
}

func (m Model) confirmWeighIn() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.WeighIn.Input.Value())
	weight, err := strconv.ParseFloat(value, 64)
	if err != nil || weight <= 0 {
		// Confirm stays disabled until the input parses; not an error path.
		return m, nil
	}

	priorHistory := m.State.History
	next, err := model.RecordWeighIn(m.State, weight, m.today())
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
		return m, nil
	}
	m.State = next
	m.WeighIn.Pending = true
	m.WeighIn.Input.Blur()
	return m, tea.Batch(m.persistCmd(), m.feedbackCmd(weight, priorHistory), m.waitSpinner.Tick)
}

func (m Model) onFeedback(msg FeedbackMsg) (tea.Model, tea.Cmd) {
	m.WeighIn.Pending = false
	text := msg.Text
	if msg.Err != nil {
		text = coach.Fallback(m.State.Language)
	}
	m.WeighIn.Feedback = text
	return m, nil
}

func (m Model) renderWeighInView() string {
	t := i18n.T(m.State.Language)
	hint := "[enter] " + t.Confirm
	if m.WeighIn.Feedback != "" {
		hint = "[esc] " + t.Continue
	}
	return views.RenderWeighInPanel(views.WeighInPanelData{
		Title:       t.TodayWeight,
		Prompt:      t.RecordToday,
		InputView:   m.WeighIn.Input.View(),
		ConfirmHint: hint,
		Pending:     m.WeighIn.Pending,
		SpinnerView: m.waitSpinner.View(),
		Feedback:    m.WeighIn.Feedback,
	})
}
