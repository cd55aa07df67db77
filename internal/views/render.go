package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header        string
	Body          string
	SidePane      string
	StatusLine    string
	Footer        string
	GradientStart string
	GradientEnd   string
	FontColor     string
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderApp lays out the screen body with the active theme colors. The
// gradient stops tint the header and panel borders; unrecognized colors
// degrade to lipgloss defaults rather than failing.
func RenderApp(data AppData) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(data.GradientStart))
	bodyStyle := panelStyle.BorderForeground(lipgloss.Color(data.GradientEnd)).Width(58)
	if data.FontColor != "" {
		bodyStyle = bodyStyle.Foreground(lipgloss.Color(data.FontColor))
	}

	row := bodyStyle.Render(data.Body)
	if data.SidePane != "" {
		side := panelStyle.BorderForeground(lipgloss.Color(data.GradientStart)).Width(58).Render(data.SidePane)
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, side)
	}

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders help and about copy through glamour, falling back
// to the raw text when the terminal renderer fails.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
