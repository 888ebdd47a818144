// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Relevance tier colours, matching the emoji markers used in CLI
	// output: green, blue, orange, gray.
	TierHigh    lipgloss.Color
	TierMedium  lipgloss.Color
	TierLow     lipgloss.Color
	TierMinimal lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:     lipgloss.Color("#7C3AED"), // Purple
		Foreground:  lipgloss.Color("#CDD6F4"), // Light gray
		Muted:       lipgloss.Color("#6C7086"), // Medium gray
		Error:       lipgloss.Color("#F38BA8"), // Red
		Border:      lipgloss.Color("#45475A"), // Border gray
		TierHigh:    lipgloss.Color("#A6E3A1"), // Green
		TierMedium:  lipgloss.Color("#89B4FA"), // Blue
		TierLow:     lipgloss.Color("#FAB387"), // Orange
		TierMinimal: lipgloss.Color("#6C7086"), // Gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	tierStyles map[domain.Tier]lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		tierStyles: map[domain.Tier]lipgloss.Style{
			domain.TierHigh:    lipgloss.NewStyle().Foreground(theme.TierHigh),
			domain.TierMedium:  lipgloss.NewStyle().Foreground(theme.TierMedium),
			domain.TierLow:     lipgloss.NewStyle().Foreground(theme.TierLow),
			domain.TierMinimal: lipgloss.NewStyle().Foreground(theme.TierMinimal),
		},
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Tier returns the style for a relevance tier.
func (s *Styles) Tier(t domain.Tier) lipgloss.Style {
	if style, ok := s.tierStyles[t]; ok {
		return style
	}
	return s.Normal
}
