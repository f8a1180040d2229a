package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"resumeview/internal/config"
)

// KeyMap holds the résumé view bindings built from the configured key
// mappings. Arrow keys always work alongside the configured keys.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NextColumn key.Binding
	Grab       key.Binding
	Drop       key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var _ help.KeyMap = KeyMap{}

// NewKeyMap converts config key mappings to bindings.
func NewKeyMap(m config.KeyMappings) KeyMap {
	m = m.WithDefaults()
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(m.Up, "up"),
			key.WithHelp("↑/"+m.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(m.Down, "down"),
			key.WithHelp("↓/"+m.Down, "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(m.Left, "left"),
			key.WithHelp("←/"+m.Left, "left column"),
		),
		Right: key.NewBinding(
			key.WithKeys(m.Right, "right"),
			key.WithHelp("→/"+m.Right, "right column"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys(m.NextColumn),
			key.WithHelp(m.NextColumn, "switch column"),
		),
		Grab: key.NewBinding(
			key.WithKeys(m.Grab),
			key.WithHelp(m.Grab, "grab section"),
		),
		Drop: key.NewBinding(
			key.WithKeys(m.Drop),
			key.WithHelp(m.Drop, "drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(m.Cancel),
			key.WithHelp(m.Cancel, "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys(m.ShowHelp),
			key.WithHelp(m.ShowHelp, "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys(m.Quit, "ctrl+c"),
			key.WithHelp(m.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Drop, k.NextColumn, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.NextColumn},
		{k.Grab, k.Drop, k.Cancel},
		{k.Help, k.Quit},
	}
}

// dragHelp is shown while a section is grabbed.
type dragHelp struct{ KeyMap }

func (d dragHelp) ShortHelp() []key.Binding {
	return []key.Binding{d.Up, d.Down, d.Left, d.Right, d.Drop, d.Cancel}
}
