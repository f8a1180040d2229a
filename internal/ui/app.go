package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model. Keys go through the leader-key handler first;
// everything else, and every key it does not consume, reaches the résumé
// view.
type AppModel struct {
	Resume     *ResumeView
	KeyHandler *KeyHandler
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Resume.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && a.KeyHandler != nil {
		a.KeyHandler.Mode = a.Mode()
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return a, keyCmd
		}
	}

	v, cmd := a.Resume.Update(msg)
	if r, ok := v.(*ResumeView); ok {
		a.Resume = r
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Resume.View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Resume.styles)
	}
	return base
}

// Mode returns the current interaction mode.
func (a *AppModel) Mode() AppMode {
	return a.Resume.Mode()
}

// NewAppModel creates the root application model around a résumé view.
func NewAppModel(opts Options) *AppModel {
	view := NewResumeView(opts)
	quit := view.keys.Quit.Keys()

	reg := NewKeybindRegistry()
	for _, k := range quit {
		reg.BindWithDesc(k, tea.Quit, "Quit")
	}
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC ?", func() tea.Msg { return ToggleHelpMsg{} }, "Toggle help")
	reg.BindWithDesc("SPC g", func() tea.Msg { return ScrollTopMsg{} }, "Scroll to top")
	reg.BindWithDescForMode("SPC c", func() tea.Msg { return CancelDragMsg{} }, "Cancel drag", []AppMode{ModeDragging})

	return &AppModel{
		Resume:     view,
		KeyHandler: NewKeyHandler(reg),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
