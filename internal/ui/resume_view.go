package ui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	oteltrace "go.opentelemetry.io/otel/trace"

	"resumeview/internal/config"
	"resumeview/internal/layout"
	"resumeview/internal/logging"
	"resumeview/internal/resume"
	"resumeview/internal/section"
	"resumeview/internal/telemetry"
	"resumeview/internal/ui/textutil"
)

// Options configures a ResumeView. Zero values fall back to defaults.
type Options struct {
	Document    resume.Document
	Names       section.Names  // nil uses section.DefaultNames
	Engine      *layout.Engine // nil uses layout.New
	Accent      string
	ColumnWidth int
	Markdown    bool
	Keys        config.KeyMappings
	Tracer      oteltrace.Tracer
	Logger      *slog.Logger
	Context     context.Context
}

// hitRegion is the area a card occupies in content coordinates. X1 and Y1
// are exclusive.
type hitRegion struct {
	ID     section.ID
	Column int
	X0, X1 int
	Y0, Y1 int
}

func (h hitRegion) contains(x, y int) bool {
	return x >= h.X0 && x < h.X1 && y >= h.Y0 && y < h.Y1
}

// ResumeView shows the header and the two section columns, and translates
// mouse and keyboard gestures into drag events on the layout engine.
type ResumeView struct {
	engine   *layout.Engine
	registry section.Registry
	render   renderer
	styles   Styles
	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	focus    *FocusManager

	cursor    [layout.NumColumns]int
	visible   [layout.NumColumns][]section.ID
	hits      []hitRegion
	grabbed   section.ID
	mouseDrag bool
	last      *SwapResult

	prefWidth     int
	width, height int

	ctx    context.Context
	tracer oteltrace.Tracer
	logger *slog.Logger
}

// Ensure ResumeView implements View.
var _ View = (*ResumeView)(nil)

// NewResumeView builds the view and renders it at a default size; the first
// tea.WindowSizeMsg replaces that size.
func NewResumeView(opts Options) *ResumeView {
	if opts.Engine == nil {
		opts.Engine = layout.New()
	}
	if opts.Accent == "" {
		opts.Accent = config.DefaultAccent
	}
	if opts.ColumnWidth <= 0 {
		opts.ColumnWidth = config.DefaultColumnWidth
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.Noop().Tracer()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	styles := NewStyles(opts.Accent)
	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc

	width := 2*opts.ColumnWidth + columnGap
	v := &ResumeView{
		engine:    opts.Engine,
		registry:  section.Build(opts.Document, opts.Names),
		render:    renderer{styles: styles, markdown: opts.Markdown},
		styles:    styles,
		keys:      NewKeyMap(opts.Keys),
		help:      h,
		viewport:  viewport.New(width, 40),
		focus:     NewColumnFocus(),
		prefWidth: opts.ColumnWidth,
		width:     width,
		height:    40,
		ctx:       opts.Context,
		tracer:    opts.Tracer,
		logger:    opts.Logger,
	}
	v.help.Width = width
	v.focus.OnChange = func(from, to string) {
		v.logger.Debug("column focus", "from", from, "to", to)
	}
	v.refresh()

	if len(v.visible[0]) == 0 && len(v.visible[1]) > 0 {
		v.focus.SetIndex(1)
		v.refresh()
	}
	v.logger.Debug("resume view ready",
		"registered", len(v.registry),
		"left", len(v.visible[0]),
		"right", len(v.visible[1]))
	return v
}

// Init implements View.
func (v *ResumeView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ResumeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.viewport.Width = msg.Width
		v.help.Width = msg.Width
		v.refresh()
		return v, nil
	case DragOverMsg:
		v.dragOver(msg.ID)
		return v, nil
	case DragEndMsg:
		v.dragEnd(msg.ID)
		return v, nil
	case CancelDragMsg:
		v.cancelDrag()
		return v, nil
	case ToggleHelpMsg:
		v.toggleHelp()
		return v, nil
	case ScrollTopMsg:
		v.viewport.GotoTop()
		return v, nil
	case tea.MouseMsg:
		return v, v.handleMouse(msg)
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

// View implements View.
func (v *ResumeView) View() string {
	return v.viewport.View() + "\n" + v.footer()
}

// Engine returns the layout engine driving the columns.
func (v *ResumeView) Engine() *layout.Engine {
	return v.engine
}

// Registry returns the sections registered from the document.
func (v *ResumeView) Registry() section.Registry {
	return v.registry
}

// Mode reports whether a section is currently grabbed.
func (v *ResumeView) Mode() AppMode {
	if v.grabbed != "" {
		return ModeDragging
	}
	return ModeBrowse
}

// Grabbed returns the section being dragged, or "".
func (v *ResumeView) Grabbed() section.ID {
	return v.grabbed
}

// LastSwap returns the outcome of the most recent drag end.
func (v *ResumeView) LastSwap() (SwapResult, bool) {
	if v.last == nil {
		return SwapResult{}, false
	}
	return *v.last, true
}

// CursorID returns the section under the keyboard cursor, or "" when the
// focused column shows nothing.
func (v *ResumeView) CursorID() section.ID {
	c := v.focus.Index()
	if c < 0 || c >= layout.NumColumns || len(v.visible[c]) == 0 {
		return ""
	}
	return v.visible[c][min(v.cursor[c], len(v.visible[c])-1)]
}

// RenderSection renders the card for id as it would appear idle. IDs with
// no registered payload, or a hidden one, render as "".
func (v *ResumeView) RenderSection(id section.ID) string {
	payload, ok := v.registry.Lookup(id)
	if !ok {
		return ""
	}
	return v.render.section(payload, v.styles.Card, v.columnWidth())
}

// HitTest returns the section drawn at terminal cell (x, y), or "".
func (v *ResumeView) HitTest(x, y int) section.ID {
	if y < 0 || y >= v.viewport.Height {
		return ""
	}
	cy := y + v.viewport.YOffset
	for _, h := range v.hits {
		if h.contains(x, cy) {
			return h.ID
		}
	}
	return ""
}

func (v *ResumeView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return tea.Quit
	case key.Matches(msg, v.keys.Help):
		v.toggleHelp()
	case key.Matches(msg, v.keys.Up):
		v.moveCursor(-1)
	case key.Matches(msg, v.keys.Down):
		v.moveCursor(1)
	case key.Matches(msg, v.keys.Left):
		v.switchColumn(v.focus.Index() - 1)
	case key.Matches(msg, v.keys.Right):
		v.switchColumn(v.focus.Index() + 1)
	case key.Matches(msg, v.keys.NextColumn):
		v.focus.Next()
		v.afterCursorMove()
	case key.Matches(msg, v.keys.Grab):
		if v.grabbed == "" {
			if id := v.CursorID(); id != "" {
				v.grab(id)
			}
		}
	case key.Matches(msg, v.keys.Drop):
		if v.grabbed != "" {
			v.drop()
		}
	case key.Matches(msg, v.keys.Cancel):
		if v.grabbed != "" {
			v.cancelDrag()
		}
	}
	return nil
}

func (v *ResumeView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return cmd
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		id := v.HitTest(msg.X, msg.Y)
		if id == "" {
			return nil
		}
		v.mouseDrag = true
		v.moveCursorTo(id)
		v.grab(id)
	case msg.Action == tea.MouseActionMotion && v.mouseDrag:
		id := v.HitTest(msg.X, msg.Y)
		if id != "" && id != v.engine.Pending().Target {
			v.dragOver(id)
		}
	case msg.Action == tea.MouseActionRelease && v.mouseDrag:
		v.mouseDrag = false
		if v.grabbed != "" {
			v.drop()
		}
	}
	return nil
}

// grab starts a gesture on id. The gesture begins over its own card, so a
// drop without moving is a self-swap.
func (v *ResumeView) grab(id section.ID) {
	v.grabbed = id
	v.last = nil
	v.logger.Debug("drag start", "section", id)
	v.dragOver(id)
}

func (v *ResumeView) drop() {
	id := v.grabbed
	v.dragEnd(id)
	v.moveCursorTo(id)
}

func (v *ResumeView) cancelDrag() {
	if v.grabbed == "" && !v.mouseDrag {
		return
	}
	v.logger.Debug("drag cancelled", "section", v.grabbed)
	v.grabbed = ""
	v.mouseDrag = false
	v.refresh()
}

func (v *ResumeView) dragOver(id section.ID) {
	v.engine.RecordDragOver(id)
	v.refresh()
}

func (v *ResumeView) dragEnd(id section.ID) {
	target := v.engine.Pending().Target
	applied := v.engine.RecordDragEnd(id)
	telemetry.RecordSwap(v.ctx, v.tracer, id, target, applied)

	result := SwapResult{Source: id, Target: target, Applied: applied}
	v.last = &result
	if v.grabbed == id {
		v.grabbed = ""
	}
	if applied {
		v.logger.Info("swap", "source", id, "target", target)
	} else {
		v.logger.Debug("swap ignored", "source", id, "target", target)
	}
	v.refresh()
}

func (v *ResumeView) toggleHelp() {
	v.help.ShowAll = !v.help.ShowAll
	v.refresh()
}

// moveCursor moves within the focused column; while a section is grabbed
// the gesture follows the cursor.
func (v *ResumeView) moveCursor(delta int) {
	c := v.focus.Index()
	n := len(v.visible[c])
	if n == 0 {
		return
	}
	v.cursor[c] = max(0, min(n-1, min(v.cursor[c], n-1)+delta))
	v.afterCursorMove()
}

func (v *ResumeView) switchColumn(c int) {
	if !v.focus.SetIndex(c) {
		return
	}
	v.afterCursorMove()
}

func (v *ResumeView) afterCursorMove() {
	if id := v.CursorID(); v.grabbed != "" && id != "" {
		v.dragOver(id)
	} else {
		v.refresh()
	}
	v.scrollToCursor()
}

// moveCursorTo puts the cursor on id if it is drawn.
func (v *ResumeView) moveCursorTo(id section.ID) {
	for c, ids := range v.visible {
		for i, vid := range ids {
			if vid == id {
				v.focus.SetIndex(c)
				v.cursor[c] = i
				v.refresh()
				v.scrollToCursor()
				return
			}
		}
	}
}

func (v *ResumeView) scrollToCursor() {
	id := v.CursorID()
	for _, h := range v.hits {
		if h.ID != id {
			continue
		}
		switch {
		case h.Y0 < v.viewport.YOffset:
			v.viewport.SetYOffset(h.Y0)
		case h.Y1 > v.viewport.YOffset+v.viewport.Height:
			v.viewport.SetYOffset(h.Y1 - v.viewport.Height)
		}
		return
	}
}

// columnWidth is the outer card width, shrunk to fit narrow terminals.
func (v *ResumeView) columnWidth() int {
	w := v.prefWidth
	if avail := (v.width - columnGap) / 2; avail < w {
		w = avail
	}
	return max(w, minCardWidth)
}

func (v *ResumeView) isVisible(id section.ID) bool {
	payload, ok := v.registry.Lookup(id)
	return ok && !payload.Hidden()
}

func (v *ResumeView) cardStyle(id section.ID) lipgloss.Style {
	switch {
	case id == v.grabbed:
		return v.styles.CardGrabbed
	case v.grabbed != "" && id == v.engine.Pending().Target:
		return v.styles.CardTarget
	case id == v.CursorID():
		return v.styles.CardFocused
	default:
		return v.styles.Card
	}
}

// refresh re-renders the content, rebuilds the hit map and resizes the
// viewport around the footer.
func (v *ResumeView) refresh() {
	for c := range layout.NumColumns {
		v.visible[c] = v.visible[c][:0]
		for _, id := range v.engine.Column(c) {
			if v.isVisible(id) {
				v.visible[c] = append(v.visible[c], id)
			}
		}
		if n := len(v.visible[c]); v.cursor[c] >= n {
			v.cursor[c] = max(n-1, 0)
		}
	}

	colWidth := v.columnWidth()
	totalWidth := layout.NumColumns*colWidth + columnGap

	var top []string
	y := 0
	if header := v.header(totalWidth); header != "" {
		top = append(top, header, "")
		y = lipgloss.Height(header) + 1
	}

	v.hits = v.hits[:0]
	cols := make([]string, layout.NumColumns)
	for c := range layout.NumColumns {
		x := c * (colWidth + columnGap)
		cy := y
		var cards []string
		for _, id := range v.visible[c] {
			card := v.render.section(v.registry[id], v.cardStyle(id), colWidth)
			h := lipgloss.Height(card)
			v.hits = append(v.hits, hitRegion{ID: id, Column: c, X0: x, X1: x + colWidth, Y0: cy, Y1: cy + h})
			cards = append(cards, card)
			cy += h
		}
		cols[c] = lipgloss.NewStyle().Width(colWidth).Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols[0], strings.Repeat(" ", columnGap), cols[1])

	v.viewport.SetContent(strings.Join(append(top, body), "\n"))
	v.viewport.Height = max(v.height-lipgloss.Height(v.footer()), 1)
}

// header renders the basicInfo contact block, or "" when there is none.
func (v *ResumeView) header(width int) string {
	info, ok := v.registry.Lookup(section.BasicInfo)
	if !ok || info.Contact.IsZero() {
		return ""
	}
	return v.render.contact(info.Contact, width)
}

func (v *ResumeView) statusLine() string {
	var s string
	switch {
	case v.grabbed != "":
		target := v.engine.Pending().Target
		if target == "" || target == v.grabbed {
			s = "moving " + v.grabbed.String()
		} else {
			s = "moving " + v.grabbed.String() + " → " + target.String()
		}
	case v.last != nil && v.last.Moved():
		s = "swapped " + v.last.Source.String() + " ↔ " + v.last.Target.String()
	case v.last != nil && !v.last.Applied:
		s = "nothing to swap"
	default:
		return v.styles.Hint.Render(textutil.Truncate("drag a section onto another to swap them", v.width))
	}
	return v.styles.Status.Render(textutil.Truncate(s, v.width))
}

func (v *ResumeView) footer() string {
	var km help.KeyMap = v.keys
	if v.grabbed != "" {
		km = dragHelp{v.keys}
	}
	return v.statusLine() + "\n" + v.help.View(km)
}
