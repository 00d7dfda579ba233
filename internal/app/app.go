// Package app wires the board store, payload source, and views into the
// root Bubble Tea model.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anshpatel080/kanban/internal/board"
	"github.com/anshpatel080/kanban/internal/keys"
	"github.com/anshpatel080/kanban/internal/source"
	"github.com/anshpatel080/kanban/internal/theme"
	"github.com/anshpatel080/kanban/internal/ui"
	"github.com/anshpatel080/kanban/internal/ui/boardview"
	"github.com/anshpatel080/kanban/internal/ui/columnform"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewColumnForm
	ViewConfirmDelete
	ViewHelp
)

// Model is the root Bubble Tea model. It owns the board store and routes
// messages between the views; all board mutations funnel through here.
type Model struct {
	currentView  ViewState
	layout       ui.Layout
	keys         *keys.KeyMap
	store        *board.Store
	src          source.PayloadSource
	cache        payloadCache
	fetchTimeout time.Duration

	boardView  boardview.Model
	columnForm columnform.Model
	spinner    spinner.Model

	loading       bool
	ready         bool
	statusMessage string
	statusWarn    bool

	pendingDeleteID   string
	pendingDeleteName string
}

// New creates the root application model. cache may be nil when the
// payload cache is disabled.
func New(src source.PayloadSource, cache payloadCache, fetchTimeout time.Duration) Model {
	k := keys.DefaultKeyMap()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorBlue)

	return Model{
		currentView:  ViewBoard,
		keys:         k,
		src:          src,
		cache:        cache,
		fetchTimeout: fetchTimeout,
		boardView:    boardview.New(k, 80, 24),
		columnForm:   columnform.New(80, 24),
		spinner:      sp,
		loading:      true,
	}
}

// Init kicks off the initial payload fetch and the loading spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadBoard(), m.spinner.Tick)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.boardView.SetSize(contentWidth, contentHeight)
		m.columnForm.SetSize(contentWidth, contentHeight)
		return m.updateActiveView(msg)

	case BoardLoadedMsg:
		m.store = board.New(msg.Columns, msg.Items)
		m.boardView.SetStore(m.store)
		m.loading = false
		m.statusMessage, m.statusWarn = loadStatus(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case boardview.ReassignMsg:
		// The drop target arrives as a column ID; an unknown target is
		// a silent no-op and the item stays where it was.
		m.store.Reassign(msg.ItemID, msg.ColumnID)
		m.statusMessage = ""
		return m, nil

	case boardview.AddColumnRequestMsg:
		m.currentView = ViewColumnForm
		return m, m.columnForm.Start()

	case boardview.DeleteColumnRequestMsg:
		m.currentView = ViewConfirmDelete
		m.pendingDeleteID = msg.ColumnID
		m.pendingDeleteName = msg.Name
		return m, nil

	case columnform.ColumnSubmittedMsg:
		m.currentView = ViewBoard
		id, err := m.store.AddColumn(msg.Name)
		if err != nil {
			m.statusMessage = err.Error()
			m.statusWarn = true
			return m, nil
		}
		m.boardView.FocusColumn(id)
		m.statusMessage = fmt.Sprintf("Added column %q", msg.Name)
		m.statusWarn = false
		return m, nil

	case columnform.ColumnFormCancelMsg:
		m.currentView = ViewBoard
		return m, nil

	case tea.KeyMsg:
		if handled, mdl, cmd := m.handleGlobalKeys(msg); handled {
			return mdl, cmd
		}
	}

	return m.updateActiveView(msg)
}

// handleGlobalKeys processes keys that work regardless of the active view,
// plus the confirm-delete prompt which is owned by the root model.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.currentView == ViewConfirmDelete {
		return true, m.handleConfirmDelete(msg), nil
	}

	switch msg.String() {
	case "ctrl+c":
		return true, m, tea.Quit

	case "q":
		if m.currentView == ViewBoard && !m.boardView.Moving() {
			return true, m, tea.Quit
		}

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = ViewBoard
			return true, m, nil
		}
		if m.currentView == ViewBoard {
			m.currentView = ViewHelp
			return true, m, nil
		}

	case "esc":
		if m.currentView == ViewHelp {
			m.currentView = ViewBoard
			return true, m, nil
		}

	case "r":
		if m.currentView == ViewBoard && !m.loading && !m.boardView.Moving() {
			m.loading = true
			m.statusMessage = ""
			return true, m, tea.Batch(m.loadBoard(), m.spinner.Tick)
		}
	}

	return false, m, nil
}

// handleConfirmDelete processes the delete-column confirmation prompt.
func (m Model) handleConfirmDelete(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "enter":
		err := m.store.RemoveColumn(m.pendingDeleteID)
		switch {
		case errors.Is(err, board.ErrColumnNotEmpty):
			m.statusMessage = fmt.Sprintf(
				"%q still has items — move them to another column first",
				m.pendingDeleteName,
			)
			m.statusWarn = true
		case errors.Is(err, board.ErrColumnNotFound):
			m.statusMessage = "Column no longer exists"
			m.statusWarn = true
		case err == nil:
			m.statusMessage = fmt.Sprintf("Deleted column %q", m.pendingDeleteName)
			m.statusWarn = false
			m.boardView.SetStore(m.store)
		}
	case "n", "esc":
		// Keep the column.
	default:
		return m
	}

	m.currentView = ViewBoard
	m.pendingDeleteID = ""
	m.pendingDeleteName = ""
	return m
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewBoard:
		m.boardView, cmd = m.boardView.Update(msg)
	case ViewColumnForm:
		m.columnForm, cmd = m.columnForm.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Roadmap", m.boardSummary())
	content := m.renderContent()

	hints := m.keyHints()
	warn := m.statusWarn && m.statusMessage != ""
	statusBar := m.layout.RenderStatusBar(hints, warn)

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	if m.loading {
		return lipgloss.Place(
			m.layout.ContentWidth(), m.layout.ContentHeight(),
			lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" fetching roadmap…",
		)
	}

	switch m.currentView {
	case ViewColumnForm:
		return m.columnForm.View()
	case ViewConfirmDelete:
		return m.renderConfirmDelete()
	case ViewHelp:
		return m.renderHelp()
	default:
		return m.boardView.View()
	}
}

// renderConfirmDelete renders the delete-column confirmation prompt.
func (m Model) renderConfirmDelete() string {
	prompt := lipgloss.JoinVertical(
		lipgloss.Left,
		theme.HeaderStyle.Render("Delete Column"),
		"",
		fmt.Sprintf("Delete column %q?", m.pendingDeleteName),
		theme.HelpStyle.Render("Items must be moved out before a column can be deleted."),
		"",
		theme.HelpStyle.Render("y confirm · n cancel"),
	)

	return lipgloss.Place(
		m.layout.ContentWidth(), m.layout.ContentHeight(),
		lipgloss.Center, lipgloss.Center,
		prompt,
	)
}

// renderHelp renders the expanded keybinding help.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(theme.HeaderStyle.Render("Keybindings"))
	b.WriteString("\n\n")

	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	return lipgloss.Place(
		m.layout.ContentWidth(), m.layout.ContentHeight(),
		lipgloss.Center, lipgloss.Center,
		b.String(),
	)
}

// boardSummary returns the header-right summary with global counts.
func (m Model) boardSummary() string {
	if m.loading || m.store == nil {
		return "loading"
	}
	return fmt.Sprintf(
		"%d items · %d columns",
		m.store.ItemCount(),
		m.store.ColumnCount(),
	)
}

// keyHints returns the status bar content for the current view. A pending
// status message takes precedence over the hint line.
func (m Model) keyHints() string {
	if m.statusMessage != "" && m.currentView == ViewBoard {
		return m.statusMessage
	}

	switch m.currentView {
	case ViewColumnForm:
		return "enter submit | esc cancel"
	case ViewConfirmDelete:
		return "y confirm | n cancel"
	case ViewHelp:
		return "? close help | esc back"
	default:
		if m.boardView.Moving() {
			return "h/l pick column | enter drop | esc cancel"
		}
		return "q quit | ? help | m move | n new column | d delete column | r refresh"
	}
}

// loadStatus turns a load result into the status bar message shown when
// the board first renders.
func loadStatus(msg BoardLoadedMsg) (string, bool) {
	switch {
	case msg.Stale:
		return fmt.Sprintf(
			"Offline — showing cached roadmap from %s",
			msg.FetchedAt.Local().Format("Jan 2 15:04"),
		), true
	case msg.Err != nil && source.IsAuthError(msg.Err):
		return "Authentication failed — set a new API token and press r", true
	case msg.Err != nil:
		return "Could not reach the roadmap service — press r to retry", true
	default:
		return "", false
	}
}
