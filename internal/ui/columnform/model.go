// Package columnform implements the small form used to name a new column.
package columnform

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/anshpatel080/kanban/internal/theme"
)

// ColumnSubmittedMsg is dispatched when the user submits a column name.
type ColumnSubmittedMsg struct {
	Name string
}

// ColumnFormCancelMsg is dispatched when the user cancels the form.
type ColumnFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name string
}

// Model is the Bubble Tea model for the add-column form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new column form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// SetSize updates the available rendering area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Start initializes the form for a new column.
func (m *Model) Start() tea.Cmd {
	m.fb.name = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Column name").
				Placeholder("e.g. In Review").
				CharLimit(50).
				Value(&m.fb.name),
		),
	).WithShowHelp(false)
	return m.form.Init()
}

// Update handles messages for the column form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		name := strings.TrimSpace(m.fb.name)
		m.form = nil
		return m, func() tea.Msg { return ColumnSubmittedMsg{Name: name} }
	}
	if m.form.State == huh.StateAborted {
		m.form = nil
		return m, func() tea.Msg { return ColumnFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the column form centered in the content area.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	title := theme.HeaderStyle.Render("New Column")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		body,
	)
}
