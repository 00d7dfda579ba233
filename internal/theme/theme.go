package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/anshpatel080/kanban/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the top header bar and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// ErrorBarStyle replaces the status bar styling when showing a warning.
var ErrorBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorRed).
	Padding(0, 1)

// LaneStyle wraps a single board column.
var LaneStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

// SelectedLaneStyle highlights the currently focused column.
var SelectedLaneStyle = LaneStyle.
	BorderForeground(ColorBlue)

// DropTargetLaneStyle highlights the column an item would be dropped onto.
var DropTargetLaneStyle = LaneStyle.
	BorderForeground(ColorYellow)

// CardStyle is the base style for an item card.
var CardStyle = lipgloss.NewStyle().
	PaddingLeft(1)

// SelectedCardStyle highlights the currently focused item card.
var SelectedCardStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// MovingCardStyle marks the card currently being moved.
var MovingCardStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorYellow).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorYellow)

// CardMetaStyle renders secondary card text (dates, owner).
var CardMetaStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// ColumnHeaderStyle returns the lane header style for a column, using its
// accent triple when present and a neutral fallback otherwise.
func ColumnHeaderStyle(col model.Column) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	if col.Color == "" {
		return base.Foreground(ColorGray)
	}

	style := base.Background(lipgloss.Color(col.Color))
	if col.TextColor != "" {
		return style.Foreground(lipgloss.Color(col.TextColor))
	}
	return style.Foreground(ColorWhite)
}
