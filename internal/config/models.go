package config

import (
	"fmt"
	"sort"

	"github.com/muurk/segbox/internal/segbox"
)

// CurrentVersion is the config file format version
const CurrentVersion = 1

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int                `yaml:"version"`
	Presets     map[string]*Preset `yaml:"presets,omitempty"` // Keyed by preset name
	Preferences *Preferences       `yaml:"preferences,omitempty"`

	path string // file the registry was loaded from, empty for the default
}

// Preset is a named box layout.
type Preset struct {
	Template    string `yaml:"template"`              // e.g. "__hello___"
	Editable    string `yaml:"editable,omitempty"`    // one character, defaults to "_"
	Hidden      string `yaml:"hidden,omitempty"`      // one character, defaults to " " ("_" when editable is " ")
	Title       string `yaml:"title,omitempty"`       // shown above the box
	Description string `yaml:"description,omitempty"` // shown by `segbox presets`
}

// Preferences represents application-wide display preferences.
type Preferences struct {
	DefaultPreset string     `yaml:"default_preset,omitempty"` // Preset used when none is given
	Style         *StyleSpec `yaml:"style,omitempty"`
}

// StyleSpec is the visual style of the box. Colors are lipgloss color strings.
type StyleSpec struct {
	Border      string `yaml:"border,omitempty"` // rounded, normal, double, thick, none
	BorderColor string `yaml:"border_color,omitempty"`
	CellColor   string `yaml:"cell_color,omitempty"`
	FocusColor  string `yaml:"focus_color,omitempty"`
	FixedColor  string `yaml:"fixed_color,omitempty"`
	Padding     int    `yaml:"padding,omitempty"`
}

// DefaultPresetName is the preset selected by a fresh registry
const DefaultPresetName = "hello"

// defaultPresets returns the presets shipped with a new registry
func defaultPresets() map[string]*Preset {
	return map[string]*Preset{
		"hello": {
			Template:    "__hello___",
			Title:       "Enter code",
			Description: "Two characters, the word hello, three characters",
		},
		"otp": {
			Template:    "___ ___",
			Title:       "One-time password",
			Description: "Six digits in two groups",
		},
		"license": {
			Template:    "_____-_____-_____",
			Title:       "License key",
			Description: "Three groups of five separated by dashes",
		},
		"date": {
			Template:    "____-__-__",
			Title:       "Date (YYYY-MM-DD)",
			Description: "ISO 8601 calendar date",
		},
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		DefaultPreset: DefaultPresetName,
		Style: &StyleSpec{
			Border:      "rounded",
			BorderColor: "#7D56F4",
			FocusColor:  "#43BF6D",
			Padding:     1,
		},
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		Presets:     defaultPresets(),
		Preferences: defaultPreferences(),
	}
}

// GetPreset retrieves a preset by name.
// Returns nil if the preset doesn't exist in the registry.
func (r *Registry) GetPreset(name string) *Preset {
	return r.Presets[name]
}

// SetPreset adds or replaces a preset.
func (r *Registry) SetPreset(name string, p *Preset) {
	if r.Presets == nil {
		r.Presets = make(map[string]*Preset)
	}
	r.Presets[name] = p
}

// RemovePreset deletes a preset. Returns false if it did not exist.
func (r *Registry) RemovePreset(name string) bool {
	if _, ok := r.Presets[name]; !ok {
		return false
	}
	delete(r.Presets, name)
	return true
}

// PresetNames returns preset names in sorted order
func (r *Registry) PresetNames() []string {
	names := make([]string, 0, len(r.Presets))
	for name := range r.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolvePreset returns the named preset, or the default preset when name is
// empty.
func (r *Registry) ResolvePreset(name string) (*Preset, error) {
	if name == "" && r.Preferences != nil {
		name = r.Preferences.DefaultPreset
	}
	if name == "" {
		return nil, fmt.Errorf("no preset given and no default_preset configured")
	}
	p := r.GetPreset(name)
	if p == nil {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	return p, nil
}

// fallbackPreset picks the default for a file without preferences: the
// shipped default if defined, else the first preset by name, else none.
func (r *Registry) fallbackPreset() string {
	if r.GetPreset(DefaultPresetName) != nil {
		return DefaultPresetName
	}
	if names := r.PresetNames(); len(names) > 0 {
		return names[0]
	}
	return ""
}

// Style returns the configured style, or the zero StyleSpec
func (r *Registry) Style() StyleSpec {
	if r.Preferences == nil || r.Preferences.Style == nil {
		return StyleSpec{}
	}
	return *r.Preferences.Style
}

// Markers returns the preset's editable and hidden marker runes.
func (p *Preset) Markers() (editable, hidden rune, err error) {
	editable = segbox.DefaultEditable
	if p.Editable != "" {
		if editable, err = segbox.ParseMarker("editable", p.Editable); err != nil {
			return 0, 0, err
		}
	}
	hidden = segbox.HiddenFor(editable)
	if p.Hidden != "" {
		if hidden, err = segbox.ParseMarker("hidden", p.Hidden); err != nil {
			return 0, 0, err
		}
	}
	return editable, hidden, nil
}

// Validate checks that the preset describes a usable box.
func (p *Preset) Validate() error {
	editable, hidden, err := p.Markers()
	if err != nil {
		return err
	}
	_, err = segbox.ParseTemplate(p.Template, editable, hidden)
	return err
}

// Validate checks every preset and the default preset reference.
func (r *Registry) Validate() error {
	for _, name := range r.PresetNames() {
		if err := r.Presets[name].Validate(); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
	}
	if r.Preferences != nil && r.Preferences.DefaultPreset != "" {
		if r.GetPreset(r.Preferences.DefaultPreset) == nil {
			return fmt.Errorf("default_preset %q is not defined", r.Preferences.DefaultPreset)
		}
	}
	return nil
}
