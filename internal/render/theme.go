package render

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
)

// Theme holds the colors used to draw trees
type Theme struct {
	Name   string
	IsDark bool

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color

	FgBase   color.Color
	FgMuted  color.Color
	FgSubtle color.Color

	Selected color.Color
	Marked   color.Color

	styles *Styles
}

// Styles are the lipgloss styles derived from a Theme
type Styles struct {
	Root       lipgloss.Style
	Branch     lipgloss.Style
	Leaf       lipgloss.Style
	Enumerator lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Marked     lipgloss.Style
}

// S returns the theme's styles, building them on first use
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().
		Foreground(t.FgBase)

	return &Styles{
		Root: base.
			Foreground(t.Accent).
			Bold(true),

		Branch: base.
			Foreground(t.Primary).
			Bold(true),

		Leaf: base,

		Enumerator: base.
			Foreground(t.FgSubtle).
			MarginRight(1),

		Title: base.
			Foreground(t.Secondary).
			Bold(true).
			MarginBottom(1),

		Muted: base.Foreground(t.FgMuted),

		Selected: base.
			Foreground(t.Selected).
			Bold(true).
			Underline(true),

		Marked: base.
			Foreground(t.Marked).
			Italic(true),
	}
}

// NewDarkTheme creates the default dark theme
func NewDarkTheme() *Theme {
	return &Theme{
		Name:   "dark",
		IsDark: true,

		Primary:   ParseHex("#60a5fa"), // Sky blue
		Secondary: ParseHex("#a78bfa"), // Violet
		Accent:    ParseHex("#f59e0b"), // Amber

		FgBase:   ParseHex("#f5f6fa"),
		FgMuted:  ParseHex("#a0a0a0"),
		FgSubtle: ParseHex("#6f6f70"),

		Selected: ParseHex("#34d399"), // Emerald
		Marked:   ParseHex("#f472b6"), // Pink
	}
}

// NewLightTheme creates a theme for light terminals
func NewLightTheme() *Theme {
	return &Theme{
		Name:   "light",
		IsDark: false,

		Primary:   ParseHex("#1d4ed8"),
		Secondary: ParseHex("#6d28d9"),
		Accent:    ParseHex("#b45309"),

		FgBase:   ParseHex("#1e1e1e"),
		FgMuted:  ParseHex("#4b5563"),
		FgSubtle: ParseHex("#9ca3af"),

		Selected: ParseHex("#047857"),
		Marked:   ParseHex("#be185d"),
	}
}

// ThemeByName returns the named theme, falling back to dark
func ThemeByName(name string) *Theme {
	if name == "light" {
		return NewLightTheme()
	}
	return NewDarkTheme()
}

// ParseHex converts a #rrggbb string into a color
func ParseHex(hex string) color.Color {
	var r, g, b uint8
	fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
