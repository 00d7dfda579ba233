// Package boardview renders the board lanes and translates key input into
// board mutation intents. It never mutates the store directly; drops, adds,
// and deletes are emitted as messages carrying stable IDs for the root
// model to apply.
package boardview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anshpatel080/kanban/internal/board"
	"github.com/anshpatel080/kanban/internal/keys"
)

// ReassignMsg is sent when the user drops the moving item onto a column.
// The target is identified by column ID, never by display name.
type ReassignMsg struct {
	ItemID   string
	ColumnID string
}

// AddColumnRequestMsg is sent when the user asks to create a new column.
type AddColumnRequestMsg struct{}

// DeleteColumnRequestMsg is sent when the user asks to delete the selected
// column.
type DeleteColumnRequestMsg struct {
	ColumnID string
	Name     string
}

// Model is the board lane view component.
type Model struct {
	store       *board.Store
	keys        *keys.KeyMap
	selectedCol int
	selectedRow int
	moving      bool
	movingID    string
	targetCol   int
	width       int
	height      int
}

// New creates a new board view. The store is attached later, once the
// initial payload has been ingested.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		keys:   k,
		width:  width,
		height: height,
	}
}

// SetStore attaches the board store and resets the selection.
func (m *Model) SetStore(s *board.Store) {
	m.store = s
	m.selectedCol = 0
	m.selectedRow = 0
	m.moving = false
	m.movingID = ""
}

// SetSize updates the available rendering area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Moving reports whether an item is currently being moved.
func (m Model) Moving() bool {
	return m.moving
}

// FocusColumn moves the selection to the column with the given ID, used
// after a new column is created so the user lands on it.
func (m *Model) FocusColumn(columnID string) {
	if m.store == nil {
		return
	}
	for i, c := range m.store.Columns() {
		if c.ID == columnID {
			m.selectedCol = i
			m.selectedRow = 0
			return
		}
	}
}

// Update handles key input for the board view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.store == nil {
		return m, nil
	}

	if m.moving {
		return m.handleMoveKeys(keyMsg)
	}
	return m.handleNormalKeys(keyMsg)
}

// handleNormalKeys processes key input while browsing the board.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.selectedCol > 0 {
			m.selectedCol--
			m.clampRow()
		}

	case key.Matches(msg, m.keys.Right):
		if m.selectedCol < m.store.ColumnCount()-1 {
			m.selectedCol++
			m.clampRow()
		}

	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < m.selectedColumnLen()-1 {
			m.selectedRow++
		}

	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}

	case key.Matches(msg, m.keys.Move):
		if item, ok := m.selectedItem(); ok {
			m.moving = true
			m.movingID = item.ID
			m.targetCol = m.selectedCol
		}

	case key.Matches(msg, m.keys.NewColumn):
		return m, func() tea.Msg { return AddColumnRequestMsg{} }

	case key.Matches(msg, m.keys.DeleteColumn):
		cols := m.store.Columns()
		if m.selectedCol < len(cols) {
			col := cols[m.selectedCol]
			return m, func() tea.Msg {
				return DeleteColumnRequestMsg{ColumnID: col.ID, Name: col.Name}
			}
		}
	}

	return m, nil
}

// handleMoveKeys processes key input while an item is being moved: left and
// right pick the drop target, enter drops, esc cancels.
func (m Model) handleMoveKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.targetCol > 0 {
			m.targetCol--
		}

	case key.Matches(msg, m.keys.Right):
		if m.targetCol < m.store.ColumnCount()-1 {
			m.targetCol++
		}

	case key.Matches(msg, m.keys.Drop):
		cols := m.store.Columns()
		if m.targetCol >= len(cols) {
			m.moving = false
			return m, nil
		}
		itemID := m.movingID
		colID := cols[m.targetCol].ID

		// Follow the item into its new column.
		m.moving = false
		m.movingID = ""
		m.selectedCol = m.targetCol
		m.selectedRow = 0

		return m, func() tea.Msg {
			return ReassignMsg{ItemID: itemID, ColumnID: colID}
		}

	case key.Matches(msg, m.keys.Back):
		m.moving = false
		m.movingID = ""
	}

	return m, nil
}

// clampRow keeps the row selection inside the newly selected column.
func (m *Model) clampRow() {
	if n := m.selectedColumnLen(); m.selectedRow >= n {
		if n == 0 {
			m.selectedRow = 0
		} else {
			m.selectedRow = n - 1
		}
	}
}

// selectedColumnLen returns the number of items in the selected column.
func (m Model) selectedColumnLen() int {
	cols := m.store.Columns()
	if m.selectedCol >= len(cols) {
		return 0
	}
	return len(m.store.ItemsIn(cols[m.selectedCol].ID))
}

// selectedItem returns the currently highlighted item, if any.
func (m Model) selectedItem() (itm boardItem, ok bool) {
	cols := m.store.Columns()
	if m.selectedCol >= len(cols) {
		return boardItem{}, false
	}
	items := m.store.ItemsIn(cols[m.selectedCol].ID)
	if m.selectedRow >= len(items) {
		return boardItem{}, false
	}
	return boardItem{ID: items[m.selectedRow].ID}, true
}

// boardItem is the minimal handle the view keeps on a selected item.
type boardItem struct {
	ID string
}
