package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pdxmph/contacts-board/internal/contacts"
	"github.com/pdxmph/contacts-board/internal/export"
	"github.com/pdxmph/contacts-board/internal/query"
	"github.com/pdxmph/contacts-board/internal/theme"
)

const exportTimeout = 30 * time.Second

type mode int

const (
	modeTable mode = iota
	modeSearch
	modeMenu
	modeConfirmDelete
	modeDetails
)

// Options configures a new Model
type Options struct {
	Store       *contacts.Store
	Palette     *theme.Provider
	PaletteMode string
	PageSize    int
	Exporter    export.Exporter
	ExportDir   string
	Logger      *zap.Logger
	// Now defaults to time.Now; export file names are derived from it.
	Now func() time.Time
}

// Model represents the contacts screen
type Model struct {
	store       *contacts.Store
	palette     *theme.Provider
	paletteMode string
	exporter    export.Exporter
	exportDir   string
	logger      *zap.Logger
	now         func() time.Time

	state  ViewState
	screen mode
	search textinput.Model
	help   help.Model
	keys   keyMap

	width  int
	height int

	status    string
	statusErr bool
}

type exportDoneMsg struct {
	path string
	err  error
}

// New creates a new application model
func New(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Store == nil {
		opts.Store = contacts.NewStore(contacts.IDPolicyLength, opts.Logger)
	}
	if opts.Exporter == nil {
		opts.Exporter = export.NewNoopExporter()
	}
	if opts.PaletteMode == "" {
		opts.PaletteMode = theme.ModeDark
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "Search contacts..."
	ti.Prompt = "⌕ "
	ti.Width = 30
	ti.CharLimit = 60
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	return &Model{
		store:       opts.Store,
		palette:     opts.Palette,
		paletteMode: opts.PaletteMode,
		exporter:    opts.Exporter,
		exportDir:   opts.ExportDir,
		logger:      opts.Logger.Named("tui"),
		now:         opts.Now,
		state:       newViewState(opts.PageSize),
		search:      ti,
		help:        help.New(),
		keys:        defaultKeyMap(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current view state
func (m Model) State() ViewState {
	return m.state
}

// Frame returns the render instructions for the current state
func (m Model) Frame() Frame {
	return buildFrame(m.store.Contacts(), m.state, m.tokens())
}

func (m Model) tokens() theme.Tokens {
	return m.palette.Tokens(m.paletteMode)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			m.setStatus("Exported to " + msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case modeSearch:
			return m.updateSearch(msg)
		case modeMenu:
			return m.updateMenu(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeDetails:
			m.closeMenu()
			return m, nil
		}
		return m.updateTable(msg)
	}

	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.state.Cursor > 0 {
			m.state.Cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.state.Cursor < len(m.Frame().Rows)-1 {
			m.state.Cursor++
		}

	case key.Matches(msg, m.keys.NextPage):
		f := m.Frame()
		if m.state.Page < f.PageCount-1 {
			m.state.Page++
			m.state.Cursor = 0
		}

	case key.Matches(msg, m.keys.PrevPage):
		if m.state.Page > 0 {
			m.state.Page--
			m.state.Cursor = 0
		}

	case key.Matches(msg, m.keys.Search):
		m.screen = modeSearch
		m.search.SetValue(m.state.Search)
		m.search.CursorEnd()
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		if m.state.Search != "" {
			m.setSearch("")
		}

	case key.Matches(msg, m.keys.Filter):
		m.state.Access = query.NextAccessFilter(m.state.Access)
		m.state.Page = 0
		m.state.Cursor = 0

	case key.Matches(msg, m.keys.PageSize):
		m.state.PageSize = query.NextPageSize(m.state.PageSize)
		m.state.Page = 0
		m.state.Cursor = 0

	case key.Matches(msg, m.keys.Menu):
		rows := m.Frame().Rows
		if m.state.Cursor < len(rows) {
			m.state.Target = rows[m.state.Cursor].Contact.ID
			m.state.HasTarget = true
			m.screen = modeMenu
		}

	case key.Matches(msg, m.keys.Add):
		c := m.store.Add()
		m.setStatus(fmt.Sprintf("Added %s (id %d)", c.Name, c.ID))

	case key.Matches(msg, m.keys.Export):
		if m.exporter.Name() == "noop" {
			m.setStatus("Export is disabled")
			return m, nil
		}
		m.setStatus("Exporting...")
		return m, m.exportCmd()

	case key.Matches(msg, m.keys.ToggleMode):
		m.paletteMode = theme.ToggleMode(m.paletteMode)
		m.setStatus("Palette: " + m.paletteMode)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.Reset()
		m.search.Blur()
		m.screen = modeTable
		m.setSearch("")
		return m, nil
	case tea.KeyEnter:
		m.search.Blur()
		m.screen = modeTable
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.state.Search {
		m.setSearch(v)
	}
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Details):
		m.screen = modeDetails

	case key.Matches(msg, m.keys.Edit):
		m.store.Edit(m.state.Target)
		if c, ok := m.store.Get(m.state.Target); ok {
			m.setStatus("Editing is not available for " + c.Name)
		}
		m.closeMenu()

	case key.Matches(msg, m.keys.Delete):
		m.screen = modeConfirmDelete

	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Quit):
		m.closeMenu()
	}
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) && m.state.HasTarget {
		c, _ := m.store.Get(m.state.Target)
		if m.store.Delete(m.state.Target) {
			m.setStatus("Deleted " + c.Name)
		}
		m.clampPage()
	}
	// Any other key cancels
	m.closeMenu()
	return m, nil
}

func (m *Model) setSearch(term string) {
	m.state.Search = term
	m.state.Page = 0
	m.state.Cursor = 0
}

func (m *Model) closeMenu() {
	m.screen = modeTable
	m.state.Target = 0
	m.state.HasTarget = false
}

// clampPage keeps the page and cursor inside the filtered set after the
// store shrinks
func (m *Model) clampPage() {
	f := m.Frame()
	if last := query.LastPage(f.Total, m.state.PageSize); m.state.Page > last {
		m.state.Page = last
	}
	rows := len(m.Frame().Rows)
	if m.state.Cursor >= rows {
		m.state.Cursor = max(rows-1, 0)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

// exportCmd snapshots the filtered set and writes it off the event loop
func (m Model) exportCmd() tea.Cmd {
	rows := query.Filtered(m.store.Contacts(), query.Filter{Search: m.state.Search, Access: m.state.Access})
	exporter, dir, logger, at := m.exporter, m.exportDir, m.logger, m.now()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		path, err := export.ToDir(ctx, exporter, dir, rows, at, logger)
		return exportDoneMsg{path: path, err: err}
	}
}
