package update

import (
	"fmt"

	"github.com/fitfocus/fitfocus/internal/views"
)

const helpMarkdown = `# fitfocus

A quiet companion for a weight-loss plan.

## Keys

- **%s** — record today's weigh-in
- **%s** — talk to your coach
- **%s** — personalize fonts and colors
- **%s** — switch language
- **%s** — toggle this help
- **%s** — quit

## Daily rhythm

Each day gets one entry. The check-in prompt opens on the first
visit of a new day and closes once the number is saved.
`

func (m Model) renderHelpView() string {
	md := fmt.Sprintf(helpMarkdown,
		m.Keys.WeighIn, m.Keys.Chat, m.Keys.Customize, m.Keys.Language, m.Keys.Help, m.Keys.Quit)
	return views.RenderMarkdown(md)
}
