package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitfocus/fitfocus/internal/i18n"
	"github.com/fitfocus/fitfocus/internal/model"
	"github.com/fitfocus/fitfocus/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForDayChangeCmd(m.watcher.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.Screen {
		case ScreenOnboarding:
			return m.handleOnboardingKey(typed)
		case ScreenWeighIn:
			return m.handleWeighInKey(typed)
		case ScreenChat:
			return m.handleChatKey(typed)
		case ScreenCustomize:
			return m.handleCustomizeKey(typed)
		default:
			return m.handleDashboardKey(typed)
		}

	case spinner.TickMsg:
		if m.WeighIn.Pending || m.Chat.Pending {
			var cmd tea.Cmd
			m.waitSpinner, cmd = m.waitSpinner.Update(typed)
			return m, cmd
		}
		return m, nil

	case FeedbackMsg:
		return m.onFeedback(typed)

	case ChatReplyMsg:
		return m.onChatReply(typed)

	case DayChangedMsg:
		var cmd tea.Cmd
		if model.EntryDue(m.State, typed.Date) && m.Screen == ScreenDashboard {
			m.openWeighIn()
		}
		if m.watcher != nil {
			cmd = waitForDayChangeCmd(m.watcher.C())
		}
		return m, cmd

	case StateSavedMsg:
		t := i18n.T(m.State.Language)
		m.Status = StatusBar{Text: t.DataSynced, IsError: false}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := i18n.T(m.State.Language)
	switch msg.String() {
	case m.Keys.WeighIn:
		if !model.EntryDue(m.State, m.today()) {
			m.Status = StatusBar{Text: t.TodayWeight + " ✓", IsError: false}
			return m, nil
		}
		m.openWeighIn()
		return m, nil
	case m.Keys.Chat:
		m.Screen = ScreenChat
		if m.State.Persona != nil {
			m.Chat.Input.Focus()
		}
		return m, nil
	case m.Keys.Customize:
		m.Screen = ScreenCustomize
		m.Customize.Cursor = 0
		return m, nil
	case m.Keys.Language:
		cmd := m.applyTransition(model.ToggleLanguage(m.State))
		return m, cmd
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	t := i18n.T(m.State.Language)

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	header := "fitfocus"
	if m.State.Onboarded && m.State.Profile != nil {
		header = fmt.Sprintf("fitfocus | %s %d | %s", t.Day, model.CurrentDay(*m.State.Profile, m.today()), m.State.Language)
	}

	body := ""
	side := ""
	switch m.Screen {
	case ScreenOnboarding:
		body = m.renderOnboardingView()
	case ScreenWeighIn:
		body = m.renderWeighInView()
	case ScreenChat:
		body = m.renderChatView()
	case ScreenCustomize:
		body = m.renderCustomizeView()
	default:
		body = m.renderDashboardView()
	}
	if m.HelpVisible {
		side = m.renderHelpView()
	}

	start, end := m.State.Theme.GradientStops()
	return views.RenderApp(views.AppData{
		Header:        header,
		Body:          body,
		SidePane:      side,
		StatusLine:    status,
		Footer:        m.footer(),
		GradientStart: start,
		GradientEnd:   end,
		FontColor:     m.State.Theme.FontColor,
	})
}

func (m Model) footer() string {
	if m.Screen != ScreenDashboard {
		return "keys: [esc]back | ctrl+c quit"
	}
	return fmt.Sprintf("keys: %s weigh-in | %s coach | %s theme | %s lang | %s help | %s quit",
		m.Keys.WeighIn, m.Keys.Chat, m.Keys.Customize, m.Keys.Language, m.Keys.Help, m.Keys.Quit)
}
