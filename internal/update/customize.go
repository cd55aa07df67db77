package update

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitfocus/fitfocus/internal/i18n"
	"github.com/fitfocus/fitfocus/internal/model"
	"github.com/fitfocus/fitfocus/internal/views"
)

// Preset cycles offered by the customization screen. Free-form gradients
// stay supported at the model level; the TUI offers curated choices.
var (
	fontStyles = []model.FontStyle{
		model.FontSans, model.FontSerif, model.FontMono,
		model.FontLora, model.FontEB, model.FontMontserrat,
	}
	fontSizes = []model.FontSize{model.FontSizeSmall, model.FontSizeMedium, model.FontSizeLarge}

	gradientPresets = []string{
		model.DefaultGradient,
		"linear-gradient(90deg, #22d3ee, #818cf8)",
		"linear-gradient(90deg, #f59e0b, #ef4444)",
		"linear-gradient(90deg, #10b981, #3b82f6)",
	}
	colorPresets = []string{model.DefaultFontColor, "#e2e8f0", "#fef3c7", "#a7f3d0"}
)

const (
	customizeFont = iota
	customizeSize
	customizeGradient
	customizeColor
	customizeReset
	customizeOptionCount
)

func (m Model) handleCustomizeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Screen = ScreenDashboard
		return m, nil
	case "up", "k":
		if m.Customize.Cursor > 0 {
			m.Customize.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Customize.Cursor < customizeOptionCount-1 {
			m.Customize.Cursor++
		}
		return m, nil
	case "left", "h":
		return m.cycleCustomizeValue(-1)
	case "right", "l", "enter":
		return m.cycleCustomizeValue(1)
	}
	return m, nil
}

func (m Model) cycleCustomizeValue(dir int) (tea.Model, tea.Cmd) {
	theme := m.State.Theme
	var patch model.ThemePatch
	switch m.Customize.Cursor {
	case customizeFont:
		next := cycle(fontStyles, theme.FontFamily, dir)
		patch.FontFamily = &next
	case customizeSize:
		next := cycle(fontSizes, theme.FontSize, dir)
		patch.FontSize = &next
	case customizeGradient:
		next := cycle(gradientPresets, theme.PrimaryGradient, dir)
		patch.PrimaryGradient = &next
	case customizeColor:
		next := cycle(colorPresets, theme.FontColor, dir)
		patch.FontColor = &next
	case customizeReset:
		defaults := model.DefaultTheme()
		patch = model.ThemePatch{
			FontFamily:      &defaults.FontFamily,
			PrimaryGradient: &defaults.PrimaryGradient,
			FontSize:        &defaults.FontSize,
			FontColor:       &defaults.FontColor,
		}
	}
	cmd := m.applyTransition(model.UpdateTheme(m.State, patch))
	m.refreshThemedComponents()
	return m, cmd
}

// cycle steps through a preset list, starting from the current value, or
// from the first entry when the stored value is not a preset.
func cycle[T comparable](options []T, current T, dir int) T {
	index := 0
	for i, opt := range options {
		if opt == current {
			index = i + dir
			break
		}
	}
	index = (index + len(options)) % len(options)
	return options[index]
}

// The plan progress bar bakes the gradient in at construction time.
func (m *Model) refreshThemedComponents() {
	start, end := m.State.Theme.GradientStops()
	m.planProgress = progress.New(progress.WithGradient(start, end))
}

func (m Model) renderCustomizeView() string {
	t := i18n.T(m.State.Language)
	theme := m.State.Theme
	options := []views.CustomizeOptionData{
		{Label: t.SelectFont, Value: string(theme.FontFamily), Selected: m.Customize.Cursor == customizeFont},
		{Label: t.FontSize, Value: string(theme.FontSize), Selected: m.Customize.Cursor == customizeSize},
		{Label: t.ThemeColor, Value: theme.PrimaryGradient, Selected: m.Customize.Cursor == customizeGradient},
		{Label: t.FontColor, Value: theme.FontColor, Selected: m.Customize.Cursor == customizeColor},
		{Label: t.Reset, Value: "", Selected: m.Customize.Cursor == customizeReset},
	}
	return views.RenderCustomizePanel(views.CustomizePanelData{
		Title:   t.Customize,
		Options: options,
		Hint:    "actions: [j/k]move [h/l]change [enter]" + t.Apply + " [esc]back",
	})
}
