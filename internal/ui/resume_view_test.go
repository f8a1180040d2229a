package ui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"resumeview/internal/layout"
	"resumeview/internal/resume"
	"resumeview/internal/section"
	"resumeview/internal/telemetry"
)

const testDoc = `
basicInfo:
  title: Basic Info
  contact:
    name: Ada Lovelace
    title: Analyst
    email: ada@example.com
    github: github.com/ada
workExp:
  title: Work Experience
  entries:
    - title: Engine programmer
      subtitle: Babbage & Co
      startDate: 2021-03-01
      endDate: 2022-12-31
      points:
        - Wrote the first published algorithm
project:
  title: Projects
  entries:
    - title: Notes
      link: https://example.com/notes
achievement:
  title: Achievements
  entries:
    - title: First programmer
education:
  title: Education
  entries:
    - title: Private tutoring
summary:
  title: Summary
  entries:
    - points: [Mathematician and writer]
other:
  title: Other
  entries:
    - title: Poetical science
`

func testDocument(t *testing.T, src string) resume.Document {
	t.Helper()
	doc, err := resume.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func newTestView(t *testing.T, src string) *ResumeView {
	t.Helper()
	v := NewResumeView(Options{Document: testDocument(t, src)})
	v.Update(tea.WindowSizeMsg{Width: 120, Height: 200})
	return v
}

func press(t *testing.T, v *ResumeView, keys ...string) {
	t.Helper()
	for _, k := range keys {
		v.Update(keyMsg(k))
	}
}

func hitFor(t *testing.T, v *ResumeView, id section.ID) hitRegion {
	t.Helper()
	for _, h := range v.hits {
		if h.ID == id {
			return h
		}
	}
	t.Fatalf("no card drawn for %s", id)
	return hitRegion{}
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func columns(v *ResumeView) ([]section.ID, []section.ID) {
	return v.Engine().Columns()
}

func TestNewResumeView_DefaultLayout(t *testing.T) {
	v := newTestView(t, testDoc)

	a, b := columns(v)
	assert.Equal(t, []section.ID{section.Project, section.Education, section.Summary}, a)
	assert.Equal(t, []section.ID{section.WorkExp, section.Achievement, section.Other}, b)
	assert.Equal(t, section.Project, v.CursorID())
	assert.Equal(t, ModeBrowse, v.Mode())
	assert.Len(t, v.hits, 6)
}

func TestView_RendersHeaderAndSections(t *testing.T) {
	v := newTestView(t, testDoc)
	out := ansi.Strip(v.View())

	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "ada@example.com · github.com/ada")
	for _, title := range []string{"Work Experience", "Projects", "Achievements", "Education", "Summary", "Other"} {
		assert.Contains(t, out, title)
	}
	assert.Contains(t, out, "1/3/2021 - 31/12/2022")
	assert.Contains(t, out, "• Mathematician and writer")
}

func TestKeyboardGesture_SwapsAcrossColumns(t *testing.T) {
	v := newTestView(t, testDoc)

	// Grab workExp in the right column, carry it onto project, drop.
	press(t, v, "tab")
	require.Equal(t, section.WorkExp, v.CursorID())
	press(t, v, "m")
	assert.Equal(t, ModeDragging, v.Mode())
	assert.Equal(t, section.WorkExp, v.Grabbed())

	press(t, v, "tab")
	assert.Equal(t, layout.Pending{Target: section.Project}, v.Engine().Pending())

	press(t, v, "enter")
	a, b := columns(v)
	assert.Equal(t, []section.ID{section.WorkExp, section.Education, section.Summary}, a)
	assert.Equal(t, []section.ID{section.Project, section.Achievement, section.Other}, b)
	assert.Equal(t, ModeBrowse, v.Mode())
	assert.Equal(t, section.WorkExp, v.CursorID(), "cursor follows the moved section")

	res, ok := v.LastSwap()
	require.True(t, ok)
	assert.True(t, res.Moved())
	assert.Contains(t, ansi.Strip(v.View()), "swapped workExp ↔ project")
}

func TestNextColumn_WrapsAndLogsFocus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v := NewResumeView(Options{Document: testDocument(t, testDoc), Logger: logger})
	v.Update(tea.WindowSizeMsg{Width: 120, Height: 200})

	press(t, v, "tab")
	assert.Equal(t, section.WorkExp, v.CursorID())
	press(t, v, "tab")
	assert.Equal(t, section.Project, v.CursorID(), "tab wraps back to the left column")

	out := buf.String()
	assert.Contains(t, out, "from=left to=right")
	assert.Contains(t, out, "from=right to=left")
}

func TestKeyboardGesture_WithinColumn(t *testing.T) {
	v := newTestView(t, testDoc)

	press(t, v, "m", "j", "j", "enter")

	a, _ := columns(v)
	assert.Equal(t, []section.ID{section.Summary, section.Education, section.Project}, a)
}

func TestKeyboardGesture_CancelRaisesNoDragEnd(t *testing.T) {
	v := newTestView(t, testDoc)
	wantA, wantB := columns(v)

	press(t, v, "m", "tab", "esc")

	a, b := columns(v)
	assert.Equal(t, wantA, a)
	assert.Equal(t, wantB, b)
	assert.Equal(t, ModeBrowse, v.Mode())
	_, ok := v.LastSwap()
	assert.False(t, ok)

	// The stale target is replaced by the next gesture.
	press(t, v, "m", "enter")
	a, b = columns(v)
	assert.Equal(t, wantA, a)
	assert.Equal(t, wantB, b)
}

func TestKeyboardGesture_DropWithoutGrabIsIgnored(t *testing.T) {
	v := newTestView(t, testDoc)
	wantA, _ := columns(v)

	press(t, v, "enter", "j", "k")

	a, _ := columns(v)
	assert.Equal(t, wantA, a)
	_, ok := v.LastSwap()
	assert.False(t, ok)
}

func TestMouseGesture_SwapsAcrossColumns(t *testing.T) {
	v := newTestView(t, testDoc)

	src := hitFor(t, v, section.WorkExp)
	dst := hitFor(t, v, section.Project)

	v.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, src.X0+1, src.Y0+1))
	assert.Equal(t, section.WorkExp, v.Grabbed())

	v.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, dst.X0+1, dst.Y0+1))
	assert.Equal(t, section.Project, v.Engine().Pending().Target)

	v.Update(mouse(tea.MouseActionRelease, tea.MouseButtonNone, dst.X0+1, dst.Y0+1))

	a, b := columns(v)
	assert.Equal(t, []section.ID{section.WorkExp, section.Education, section.Summary}, a)
	assert.Equal(t, []section.ID{section.Project, section.Achievement, section.Other}, b)
	assert.Equal(t, layout.Pending{}, v.Engine().Pending())
}

func TestMouseGesture_PressOutsideCardsIsIgnored(t *testing.T) {
	v := newTestView(t, testDoc)

	v.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, 0, 0)) // header
	assert.Equal(t, section.ID(""), v.Grabbed())

	v.Update(mouse(tea.MouseActionRelease, tea.MouseButtonNone, 0, 0))
	_, ok := v.LastSwap()
	assert.False(t, ok)
}

func TestMouseGesture_ReleaseOverGapKeepsLastTarget(t *testing.T) {
	v := newTestView(t, testDoc)

	src := hitFor(t, v, section.Other)
	dst := hitFor(t, v, section.Summary)

	v.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, src.X0+1, src.Y0+1))
	v.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, dst.X0+1, dst.Y0+1))
	// Between the columns: no card, no new drag-over.
	v.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, dst.X1, dst.Y0+1))
	v.Update(mouse(tea.MouseActionRelease, tea.MouseButtonNone, dst.X1, dst.Y0+1))

	a, b := columns(v)
	assert.Equal(t, section.Other, a[2])
	assert.Equal(t, section.Summary, b[2])
}

func TestMissingSection_RendersEmptyAndSkipsSlot(t *testing.T) {
	doc := strings.Replace(testDoc, "achievement:\n  title: Achievements\n  entries:\n    - title: First programmer\n", "", 1)
	v := newTestView(t, doc)

	_, ok := v.Registry().Lookup(section.Achievement)
	assert.False(t, ok)
	assert.Equal(t, "", v.RenderSection(section.Achievement))

	// The slot stays in the column but the cursor never lands on it.
	_, b := columns(v)
	assert.Contains(t, b, section.Achievement)
	press(t, v, "tab", "j")
	assert.Equal(t, section.Other, v.CursorID())
	assert.Len(t, v.hits, 5)
}

func TestHiddenSection_RendersEmpty(t *testing.T) {
	doc := strings.Replace(testDoc, "  title: Summary\n", "  title: \"\"\n", 1)
	v := newTestView(t, doc)

	_, ok := v.Registry().Lookup(section.Summary)
	assert.True(t, ok, "untitled sections with entries are registered")
	assert.Equal(t, "", v.RenderSection(section.Summary))
	assert.NotContains(t, ansi.Strip(v.View()), "Mathematician")
}

func TestDragEndMsg_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	v := NewResumeView(Options{
		Document: testDocument(t, testDoc),
		Tracer:   telemetry.NewWithTracerProvider(tp).Tracer(),
	})

	v.Update(DragOverMsg{ID: section.WorkExp})
	v.Update(DragEndMsg{ID: section.Project})

	a, _ := columns(v)
	assert.Equal(t, section.WorkExp, a[0])

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, telemetry.SpanSwap, spans[0].Name())
}

func TestNarrowTerminal_ShrinksColumns(t *testing.T) {
	v := newTestView(t, testDoc)
	v.Update(tea.WindowSizeMsg{Width: 50, Height: 200})

	assert.Equal(t, 24, v.columnWidth())
	for _, line := range strings.Split(v.viewport.View(), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 50)
	}
}

func TestScrollTop(t *testing.T) {
	v := newTestView(t, testDoc)
	v.Update(tea.WindowSizeMsg{Width: 120, Height: 12})
	v.viewport.SetYOffset(5)
	require.Positive(t, v.viewport.YOffset)

	v.Update(ScrollTopMsg{})
	assert.Equal(t, 0, v.viewport.YOffset)
}

func TestToggleHelp(t *testing.T) {
	v := newTestView(t, testDoc)
	short := ansi.Strip(v.footer())
	assert.NotContains(t, short, "cancel drag")

	press(t, v, "?")
	assert.Contains(t, ansi.Strip(v.footer()), "cancel drag")
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2021-03-01", want: "1/3/2021"},
		{in: "1999-12-31", want: "31/12/1999"},
		{in: "2020-02", want: "1/2/2020"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := resume.ParseDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatDate(d))
		})
	}
}

func TestDateRange_RequiresBothDates(t *testing.T) {
	start, err := resume.ParseDate("2021-03-01")
	require.NoError(t, err)

	assert.Equal(t, "", DateRange(resume.Entry{StartDate: &start}))
	assert.Equal(t, "", DateRange(resume.Entry{EndDate: &start}))
	assert.Equal(t, "1/3/2021 - 1/3/2021", DateRange(resume.Entry{StartDate: &start, EndDate: &start}))
}
