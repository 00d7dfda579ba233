package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/anshpatel080/kanban/internal/theme"
)

// minLaneWidth is the narrowest a board lane is allowed to get before the
// board stops splitting the width further.
const minLaneWidth = 18

// Layout manages the terminal layout dimensions for the board frame.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the board lanes,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// LaneWidth splits the content width evenly across n lanes, never going
// below minLaneWidth. Lanes that do not fit scroll off to the right.
func (l Layout) LaneWidth(n int) int {
	if n <= 0 {
		return l.ContentWidth()
	}
	w := l.ContentWidth() / n
	if w < minLaneWidth {
		return minLaneWidth
	}
	return w
}

// RenderHeader renders the top header bar with the board title on the left
// and the board summary (item and column counts) on the right.
func (l Layout) RenderHeader(title string, summary string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	summaryRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(summary)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(summaryRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		summaryRendered,
	)
}

// RenderStatusBar renders the bottom status bar. When warn is true the bar
// uses the error styling to make degraded states visible.
func (l Layout) RenderStatusBar(hints string, warn bool) string {
	style := theme.StatusBarStyle
	if warn {
		style = theme.ErrorBarStyle
	}

	rendered := style.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := style.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(style.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
