// Package theme holds the color palette and shared lipgloss styles.
// Two palettes exist, dark and light; Apply swaps every style in place so
// screens always render with the active palette.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one complete color scheme.
type Palette struct {
	Name string

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default palette.
var Dark = Palette{
	Name:      "dark",
	Primary:   lipgloss.Color("#818CF8"), // Indigo
	Secondary: lipgloss.Color("#22D3EE"), // Cyan
	Accent:    lipgloss.Color("#FBBF24"), // Amber
	Success:   lipgloss.Color("#34D399"), // Emerald
	Error:     lipgloss.Color("#FB7185"), // Rose
	Text:      lipgloss.Color("#F1F5F9"), // Near white
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	Bg:        lipgloss.Color("#0F172A"), // Deep navy
	BgCard:    lipgloss.Color("#1E293B"), // Dark slate
	Border:    lipgloss.Color("#334155"), // Slate
}

// Light is the alternate palette.
var Light = Palette{
	Name:      "light",
	Primary:   lipgloss.Color("#4F46E5"), // Indigo
	Secondary: lipgloss.Color("#0891B2"), // Cyan
	Accent:    lipgloss.Color("#D97706"), // Amber
	Success:   lipgloss.Color("#059669"), // Emerald
	Error:     lipgloss.Color("#E11D48"), // Rose
	Text:      lipgloss.Color("#0F172A"), // Near black
	TextDim:   lipgloss.Color("#64748B"), // Slate
	Bg:        lipgloss.Color("#F8FAFC"), // Off white
	BgCard:    lipgloss.Color("#E2E8F0"), // Light slate
	Border:    lipgloss.Color("#CBD5E1"), // Slate
}

// ByName resolves a stored palette name, defaulting to Dark.
func ByName(name string) Palette {
	if name == Light.Name {
		return Light
	}
	return Dark
}

var current = Dark

// Current returns the active palette.
func Current() Palette {
	return current
}

// Toggle switches between the dark and light palettes and returns the newly
// active one.
func Toggle() Palette {
	if current.Name == Dark.Name {
		Apply(Light)
	} else {
		Apply(Dark)
	}
	return current
}

// Colors, rebound by Apply.
var (
	Primary   = Dark.Primary
	Secondary = Dark.Secondary
	Accent    = Dark.Accent
	Success   = Dark.Success
	Error     = Dark.Error
	Text      = Dark.Text
	TextDim   = Dark.TextDim
	Bg        = Dark.Bg
	BgCard    = Dark.BgCard
	Border    = Dark.Border
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

func init() {
	Apply(Dark)
}

// Apply activates a palette and rebuilds every shared style from it.
func Apply(p Palette) {
	current = p

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	Bg = p.Bg
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
}
