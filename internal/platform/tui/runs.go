package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const maxRuns = 100

// RunsKeyMap defines the key bindings for the runs browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Order  key.Binding
	Verify key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Order, k.Verify, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Order},
		{k.Verify, k.Delete, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Order: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/top"),
		),
		Verify: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "verify replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing recorded runs.
type RunsModel struct {
	store    *storage.Store
	runs     []storage.RunSummary
	top      bool // order by score instead of date
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	status   string
	width    int
	height   int
	quitting bool
}

// NewRunsModel creates a runs browser and loads the first page.
func NewRunsModel(store *storage.Store, width, height int, top bool) RunsModel {
	m := RunsModel{
		store:  store,
		top:    top,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Date", Width: 14},
		{Title: "ID", Width: 36},
	}

	// Trim the id column on narrow terminals
	if avail := m.width - 4 - (4 + 7 + 8 + 14) - 10; avail < 36 {
		columns[4].Width = max(avail, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reloads the runs in the current order.
func (m *RunsModel) loadRuns() {
	m.runs = nil
	if m.store != nil {
		var err error
		if m.top {
			m.runs, err = m.store.TopRuns(maxRuns)
		} else {
			m.runs, err = m.store.RecentRuns(maxRuns)
		}
		if err != nil {
			m.status = err.Error()
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			r.ID,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selected returns the run under the cursor.
func (m RunsModel) selected() (storage.RunSummary, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.RunSummary{}, false
	}
	return m.runs[i], true
}

// verify replays the selected run and reports the result in the status line.
func (m *RunsModel) verify() {
	r, ok := m.selected()
	if !ok || m.store == nil {
		return
	}
	j, err := m.store.LoadRun(r.ID)
	if err != nil {
		m.status = err.Error()
		return
	}
	switch err := replay.Verify(j, nil); {
	case err == nil:
		m.status = fmt.Sprintf("run %d: replay matches (score %d)", m.table.Cursor()+1, j.Score)
	case errors.Is(err, replay.ErrReplayMismatch):
		m.status = fmt.Sprintf("run %d: replay diverged", m.table.Cursor()+1)
	default:
		m.status = err.Error()
	}
}

// remove deletes the selected run.
func (m *RunsModel) remove() {
	r, ok := m.selected()
	if !ok || m.store == nil {
		return
	}
	if err := m.store.DeleteRun(r.ID); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "deleted " + r.ID
	m.loadRuns()
}

// Init initializes the runs model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Order):
			m.top = !m.top
			m.status = ""
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Verify):
			m.verify()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.remove()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRuns()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs browser.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := "RECENT RUNS"
	if m.top {
		title = "TOP RUNS"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No runs recorded yet.\nPlay a game to record one!")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.status != "" {
		b.WriteString(mutedStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Status returns the last status message.
func (m RunsModel) Status() string {
	return m.status
}

// RunRuns runs the runs browser.
func RunRuns(store *storage.Store, width, height int, top bool) error {
	p := tea.NewProgram(NewRunsModel(store, width, height, top), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
