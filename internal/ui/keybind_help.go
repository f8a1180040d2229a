package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help box shown after SPC.
// When the handler already holds a partial sequence (e.g. "SPC x"), the
// next-level hints are shown instead.
func RenderKeybindHelp(keyHandler *KeyHandler, styles Styles) string {
	if keyHandler == nil {
		return ""
	}
	bindings := leaderKeyMap{handler: keyHandler}.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = styles.HelpKey
	helpModel.Styles.ShortDesc = styles.HelpDesc
	helpModel.Styles.ShortSeparator = styles.HelpDesc

	prefix := keyHandler.CurrentSeq()
	if prefix == "" {
		prefix = keyHandler.LeaderSeq
	}
	content := styles.Hint.Render(prefix) + " " + helpModel.ShortHelpView(bindings)
	return styles.LeaderBox.Render(content)
}

// leaderBoxStyle frames the leader help.
func leaderBoxStyle(accent lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		MarginTop(1)
}
