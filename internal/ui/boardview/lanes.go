package boardview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anshpatel080/kanban/internal/model"
	"github.com/anshpatel080/kanban/internal/theme"
	"github.com/anshpatel080/kanban/internal/ui"
)

// View renders the board lanes side by side.
func (m Model) View() string {
	if m.store == nil {
		return ""
	}

	cols := m.store.Columns()
	if len(cols) == 0 {
		return theme.HelpStyle.Render("Board is empty. Press n to add a column.")
	}

	layout := ui.NewLayout(m.width, m.height)
	laneWidth := layout.LaneWidth(len(cols))

	lanes := make([]string, 0, len(cols))
	for i, col := range cols {
		lanes = append(lanes, m.renderLane(i, col, laneWidth))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, lanes...)
}

// renderLane renders one column: an accent-styled header with the item
// count, followed by the column's cards.
func (m Model) renderLane(idx int, col model.Column, width int) string {
	items := m.store.ItemsIn(col.ID)

	laneStyle := theme.LaneStyle
	switch {
	case m.moving && idx == m.targetCol:
		laneStyle = theme.DropTargetLaneStyle
	case !m.moving && idx == m.selectedCol:
		laneStyle = theme.SelectedLaneStyle
	}

	innerWidth := width - laneStyle.GetHorizontalFrameSize()
	if innerWidth < 4 {
		innerWidth = 4
	}

	header := theme.ColumnHeaderStyle(col).Render(
		truncate(fmt.Sprintf("%s (%d)", col.Name, len(items)), innerWidth-2),
	)

	lines := []string{header, ""}
	for row, item := range items {
		lines = append(lines, m.renderCard(idx, row, item, innerWidth))
	}
	if len(items) == 0 {
		lines = append(lines, theme.CardMetaStyle.Render("no items"))
	}

	laneHeight := m.height - laneStyle.GetVerticalFrameSize()
	if laneHeight < 3 {
		laneHeight = 3
	}

	content := strings.Join(lines, "\n")
	return laneStyle.Width(innerWidth).Height(laneHeight).Render(content)
}

// renderCard renders a single item card: the name, then a muted meta line
// with the scheduled window and owner when available.
func (m Model) renderCard(colIdx, row int, item model.Item, width int) string {
	style := theme.CardStyle
	switch {
	case m.moving && item.ID == m.movingID:
		style = theme.MovingCardStyle
	case !m.moving && colIdx == m.selectedCol && row == m.selectedRow:
		style = theme.SelectedCardStyle
	}

	name := truncate(item.Name, width-2)
	meta := cardMeta(item)

	if meta == "" {
		return style.Render(name)
	}
	return style.Render(name) + "\n" +
		theme.CardMetaStyle.PaddingLeft(1).Render(truncate(meta, width-2))
}

// cardMeta builds the secondary card line from the item's scheduled window
// and owner. Zero times (the invalid-instant sentinel) are skipped.
func cardMeta(item model.Item) string {
	var parts []string

	if !item.StartAt.IsZero() && !item.EndAt.IsZero() {
		parts = append(parts, fmt.Sprintf(
			"%s – %s",
			item.StartAt.Format("Jan 2"),
			item.EndAt.Format("Jan 2"),
		))
	}
	if item.Owner.Name != "" {
		parts = append(parts, item.Owner.Name)
	}

	return strings.Join(parts, " · ")
}

// truncate cuts s to at most width runes, appending an ellipsis when it
// had to cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
