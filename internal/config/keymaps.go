package config

// KeyMappings defines the configurable key bindings of the résumé view
type KeyMappings struct {
	// Drag gesture
	Grab   string `yaml:"grab"`
	Drop   string `yaml:"drop"`
	Cancel string `yaml:"cancel"`

	// Navigation
	Up         string `yaml:"up"`
	Down       string `yaml:"down"`
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	NextColumn string `yaml:"next_column"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Grab:   "m",
		Drop:   "enter",
		Cancel: "esc",

		Up:         "k",
		Down:       "j",
		Left:       "h",
		Right:      "l",
		NextColumn: "tab",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Grab == "" {
		k.Grab = defaults.Grab
	}
	if k.Drop == "" {
		k.Drop = defaults.Drop
	}
	if k.Cancel == "" {
		k.Cancel = defaults.Cancel
	}
	if k.Up == "" {
		k.Up = defaults.Up
	}
	if k.Down == "" {
		k.Down = defaults.Down
	}
	if k.Left == "" {
		k.Left = defaults.Left
	}
	if k.Right == "" {
		k.Right = defaults.Right
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}

// WithDefaults returns a copy of k with every unset key filled in.
func (k KeyMappings) WithDefaults() KeyMappings {
	k.applyDefaults()
	return k
}
