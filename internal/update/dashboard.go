package update

import (
	"strings"

	"github.com/fitfocus/fitfocus/internal/i18n"
	"github.com/fitfocus/fitfocus/internal/model"
	"github.com/fitfocus/fitfocus/internal/views"
)

func (m Model) renderDashboardView() string {
	t := i18n.T(m.State.Language)
	if m.State.Profile == nil {
		return t.LetsStart
	}
	profile := *m.State.Profile

	day := model.CurrentDay(profile, m.today())
	pct := model.PercentLost(m.State.History, profile)

	barPct := float64(day) / float64(profile.TargetDays)
	if barPct > 1 {
		barPct = 1
	}
	progressPanel := views.RenderProgressPanel(views.ProgressPanelData{
		DayLabel:  t.Day,
		Day:       day,
		TotalDays: profile.TargetDays,
		BarView:   m.planProgress.ViewAs(barPct),
	})

	plateau := ""
	if prev, ok := m.State.PreviousWeight(); ok && m.State.CurrentWeight() >= prev {
		plateau = t.Plateau
	}
	weightPanel := views.RenderWeightPanel(views.WeightPanelData{
		CurrentLabel: t.CurrentWeight,
		Current:      m.State.CurrentWeight(),
		LostLabel:    t.Lost,
		LostPercent:  pct,
		TargetLabel:  t.Remaining,
		Target:       profile.TargetWeight,
		GoalReached:  t.GoalReached,
		Plateau:      plateau,
	})

	feedback := ""
	if m.WeighIn.Feedback != "" {
		feedback = m.WeighIn.Feedback
	}
	return strings.TrimSpace(strings.Join([]string{progressPanel, "", weightPanel, "", feedback}, "\n"))
}
