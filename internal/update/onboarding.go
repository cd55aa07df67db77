package update

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitfocus/fitfocus/internal/i18n"
	"github.com/fitfocus/fitfocus/internal/model"
	"github.com/fitfocus/fitfocus/internal/views"
)

const (
	onboardStepInitial = iota
	onboardStepTarget
	onboardStepDays
)

func (m Model) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.advanceOnboarding()
	case "esc":
		if m.Onboarding.Step > 0 {
			m.Onboarding.Fields[m.Onboarding.Step].Blur()
			m.Onboarding.Step--
			m.Onboarding.Fields[m.Onboarding.Step].Focus()
			m.Onboarding.Err = ""
		}
		return m, nil
	}
	var cmd tea.Cmd
	step := m.Onboarding.Step
	m.Onboarding.Fields[step], cmd = m.Onboarding.Fields[step].Update(msg)
	return m, cmd
}

// advanceOnboarding validates the current field before moving on; the
// submit stays refused until the input is well-formed, so invalid input is
// never a runtime error path.
func (m Model) advanceOnboarding() (tea.Model, tea.Cmd) {
	step := m.Onboarding.Step
	value := strings.TrimSpace(m.Onboarding.Fields[step].Value())

	switch step {
	case onboardStepInitial, onboardStepTarget:
		weigh, err := strconv.ParseFloat(value, 64)
		if err != nil || weigh <= 0 {
			m.Onboarding.Err = i18n.T(m.State.Language).WeightPlaceholder + "?"
			return m, nil
		}
	case onboardStepDays:
		days, err := strconv.Atoi(value)
		if err != nil || days < 1 {
			m.Onboarding.Err = i18n.T(m.State.Language).EnterTargetDays
			return m, nil
		}
	}
	m.Onboarding.Err = ""

	if step < onboardStepDays {
		m.Onboarding.Fields[step].Blur()
		m.Onboarding.Step++
		m.Onboarding.Fields[m.Onboarding.Step].Focus()
		return m, nil
	}

	initial, _ := strconv.ParseFloat(strings.TrimSpace(m.Onboarding.Fields[onboardStepInitial].Value()), 64)
	target, _ := strconv.ParseFloat(strings.TrimSpace(m.Onboarding.Fields[onboardStepTarget].Value()), 64)
	days, _ := strconv.Atoi(strings.TrimSpace(m.Onboarding.Fields[onboardStepDays].Value()))

	today := m.today()
	profile := model.UserProfile{
		InitialWeight: initial,
		TargetWeight:  target,
		TargetDays:    days,
		StartDate:     today,
	}
	cmd := m.applyTransition(model.CompleteOnboarding(m.State, profile, today))
	if m.State.Onboarded {
		m.Screen = ScreenDashboard
		m.Status = StatusBar{Text: i18n.T(m.State.Language).BeginPlan, IsError: false}
	}
	return m, cmd
}

func (m Model) renderOnboardingView() string {
	t := i18n.T(m.State.Language)
	values := make([]string, len(m.Onboarding.Fields))
	for i, field := range m.Onboarding.Fields {
		values[i] = field.Value()
	}
	hint := "[enter] " + t.Continue
	if m.Onboarding.Err != "" {
		hint = hint + " | " + m.Onboarding.Err
	}
	return views.RenderOnboardingPanel(views.OnboardingPanelData{
		Title:     t.LetsStart,
		Tagline:   t.BeginPlan,
		Prompts:   []string{t.EnterInitial, t.EnterTarget, t.EnterTargetDays},
		Values:    values,
		Step:      m.Onboarding.Step,
		InputView: m.Onboarding.Fields[m.Onboarding.Step].View(),
		Hint:      hint,
	})
}
