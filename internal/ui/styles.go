package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI. The accent is configurable; the rest
// are fixed 256-colour codes.
const (
	ColorHighlight = "205" // Magenta - drop target border
	ColorMuted     = "241" // Gray - idle borders, hints
	ColorText      = "252" // Light gray - body text
	ColorDim       = "243" // Darker gray - subtitles, dates
)

// Styles holds every style the résumé view renders with.
type Styles struct {
	Accent lipgloss.Color

	// Header
	Name    lipgloss.Style // Contact name, bold accent
	Role    lipgloss.Style // Contact title
	Contact lipgloss.Style // Email / phone / profile line

	// Section cards
	Card        lipgloss.Style // Idle card, muted rounded border
	CardFocused lipgloss.Style // Card under the cursor
	CardGrabbed lipgloss.Style // Card being dragged
	CardTarget  lipgloss.Style // Card the drag is currently over
	CardTitle   lipgloss.Style

	// Entries
	EntryTitle lipgloss.Style
	Subtitle   lipgloss.Style
	Link       lipgloss.Style
	Date       lipgloss.Style
	Point      lipgloss.Style

	// Footer
	Status    lipgloss.Style
	Hint      lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	LeaderBox lipgloss.Style
}

// NewStyles builds the style set around accent. The accent string is passed
// to lipgloss unmodified.
func NewStyles(accent string) Styles {
	a := lipgloss.Color(accent)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1)

	return Styles{
		Accent: a,

		Name: lipgloss.NewStyle().
			Bold(true).
			Foreground(a),
		Role: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
		Contact: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)),

		Card:        card,
		CardFocused: card.BorderForeground(a),
		CardGrabbed: card.Border(lipgloss.ThickBorder()).BorderForeground(a),
		CardTarget:  card.Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color(ColorHighlight)),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(a).
			Underline(true),

		EntryTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorText)),
		Subtitle: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(ColorDim)),
		Link: lipgloss.NewStyle().
			Foreground(a).
			Underline(true),
		Date: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)),
		Point: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),

		Status: lipgloss.NewStyle().
			Foreground(a),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		HelpKey: lipgloss.NewStyle().
			Foreground(a).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		LeaderBox: leaderBoxStyle(a),
	}
}
