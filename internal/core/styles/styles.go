// Package styles maps alert severities to lipgloss styles for the CLI and TUI.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/devboard/internal/core/alert"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Danger     lipgloss.Color
	Info       lipgloss.Color
	Dark       lipgloss.Color
	Light      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Danger:     lipgloss.Color("#f7768e"),
		Info:       lipgloss.Color("#7dcfff"),
		Dark:       lipgloss.Color("#1a1b26"),
		Light:      lipgloss.Color("#a9b1d6"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Danger:     lipgloss.Color("#fb4934"),
		Info:       lipgloss.Color("#8ec07c"),
		Dark:       lipgloss.Color("#282828"),
		Light:      lipgloss.Color("#d5c4a1"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// Override replaces the colors of one severity. Empty fields keep the
// palette color.
type Override struct {
	Foreground string
	Background string
}

// Severities resolves the style for an alert severity. Unknown severities get
// a neutral style; the label itself is never validated.
type Severities struct {
	palette  Palette
	styles   map[alert.Severity]lipgloss.Style
	fallback lipgloss.Style
}

// NewSeverities builds the severity styles from a palette and per-severity
// overrides keyed by severity label.
func NewSeverities(p Palette, overrides map[string]Override) *Severities {
	base := lipgloss.NewStyle().Padding(0, 1)

	s := &Severities{
		palette:  p,
		fallback: base.Foreground(p.Foreground).Background(p.Surface),
		styles: map[alert.Severity]lipgloss.Style{
			alert.SeveritySuccess: base.Foreground(p.Dark).Background(p.Success),
			alert.SeverityDanger:  base.Foreground(p.Dark).Background(p.Danger),
			alert.SeverityWarning: base.Foreground(p.Dark).Background(p.Warning),
			alert.SeverityInfo:    base.Foreground(p.Dark).Background(p.Info),
			alert.SeverityPrimary: base.Foreground(p.Dark).Background(p.Primary),
			alert.SeverityDark:    base.Foreground(p.Light).Background(p.Dark),
			alert.SeverityLight:   base.Foreground(p.Dark).Background(p.Light),
		},
	}

	for label, o := range overrides {
		sev := alert.Severity(label)
		style, ok := s.styles[sev]
		if !ok {
			style = s.fallback
		}
		if o.Foreground != "" {
			style = style.Foreground(lipgloss.Color(o.Foreground))
		}
		if o.Background != "" {
			style = style.Background(lipgloss.Color(o.Background))
		}
		s.styles[sev] = style
	}

	return s
}

// Style returns the style for sev.
func (s *Severities) Style(sev alert.Severity) lipgloss.Style {
	if style, ok := s.styles[sev]; ok {
		return style
	}
	return s.fallback
}

// Palette returns the palette the styles were built from.
func (s *Severities) Palette() Palette {
	return s.palette
}
