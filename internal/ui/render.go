package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"resumeview/internal/resume"
	"resumeview/internal/ui/textutil"
)

// columnGap is the number of blank cells between the two columns.
const columnGap = 2

// minCardWidth is the narrowest card drawn, border included.
const minCardWidth = 16

// FormatDate renders d as day/month/year without zero padding, e.g. 1/3/2021.
func FormatDate(d resume.Date) string {
	return fmt.Sprintf("%d/%d/%d", d.Day(), int(d.Month()), d.Year())
}

// DateRange renders "start - end", or "" unless both dates are present.
func DateRange(e resume.Entry) string {
	if !e.HasDateRange() {
		return ""
	}
	return FormatDate(*e.StartDate) + " - " + FormatDate(*e.EndDate)
}

// renderer turns résumé payloads into styled blocks of a fixed width.
type renderer struct {
	styles   Styles
	markdown bool
}

// contact renders the name, role and contact line of c, each only if set.
func (r renderer) contact(c *resume.Contact, width int) string {
	if c.IsZero() {
		return ""
	}
	var lines []string
	if c.Name != "" {
		lines = append(lines, r.styles.Name.Render(textutil.Truncate(c.Name, width)))
	}
	if c.Title != "" {
		lines = append(lines, r.styles.Role.Render(textutil.Truncate(c.Title, width)))
	}
	if line := textutil.JoinNonEmpty(" · ", c.Email, c.Phone, c.LinkedIn, c.GitHub); line != "" {
		lines = append(lines, r.styles.Contact.Render(textutil.Truncate(line, width)))
	}
	return strings.Join(lines, "\n")
}

// entry renders one entry to at most width cells.
func (r renderer) entry(e resume.Entry, width int) string {
	var lines []string
	if e.Title != "" {
		lines = append(lines, r.styles.EntryTitle.Width(width).Render(e.Title))
	}
	if e.Subtitle != "" {
		lines = append(lines, r.styles.Subtitle.Render(textutil.Truncate(e.Subtitle, width)))
	}
	if e.Link != "" {
		lines = append(lines, r.styles.Link.Render(textutil.Truncate(e.Link, width)))
	}
	if dates := DateRange(e); dates != "" {
		lines = append(lines, r.styles.Date.Render(dates))
	}
	if points := r.points(e.Points, width); points != "" {
		lines = append(lines, points)
	}
	return strings.Join(lines, "\n")
}

func (r renderer) points(points []string, width int) string {
	if len(points) == 0 {
		return ""
	}
	if r.markdown {
		if out, ok := RenderMarkdown(points, max(width-4, 8)); ok {
			return out
		}
	}

	bodyWidth := max(width-2, 1)
	var lines []string
	for _, p := range points {
		wrapped := r.styles.Point.Width(bodyWidth).Render(strings.TrimSpace(p))
		for i, l := range strings.Split(wrapped, "\n") {
			if i == 0 {
				lines = append(lines, "• "+l)
			} else {
				lines = append(lines, "  "+l)
			}
		}
	}
	return strings.Join(lines, "\n")
}

// section renders s as a card of outer width cardWidth using style. A nil
// or hidden section renders as "".
func (r renderer) section(s *resume.Section, style lipgloss.Style, cardWidth int) string {
	if s == nil || s.Hidden() {
		return ""
	}
	inner := max(cardWidth-style.GetHorizontalFrameSize(), 1)

	blocks := []string{r.styles.CardTitle.Render(textutil.Truncate(s.Title, inner))}
	if c := r.contact(s.Contact, inner); c != "" {
		blocks = append(blocks, c)
	}
	for _, e := range s.Entries {
		if body := r.entry(e, inner); body != "" {
			blocks = append(blocks, body)
		}
	}
	return style.Width(cardWidth - style.GetHorizontalBorderSize()).
		Render(strings.Join(blocks, "\n\n"))
}
