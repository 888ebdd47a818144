// Package tui provides the interactive terminal interface.
//
// The app has two screens: a project picker and a search screen. The
// search screen embeds the query asynchronously through a tea.Cmd so the
// interface stays responsive while the embedding backend works.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/insyte-labs/insyte-cli/internal/adapters/driving/tui/styles"
	"github.com/insyte-labs/insyte-cli/internal/core/domain"
	"github.com/insyte-labs/insyte-cli/internal/core/ports/driving"
)

// Config holds the services the TUI drives.
type Config struct {
	ProjectService driving.ProjectService
	IndexService   driving.IndexService
	SearchService  driving.SearchService
	Settings       domain.SearchSettings
}

// screen identifies which view is active.
type screen int

const (
	screenProjects screen = iota
	screenSearch
)

// Messages produced by async commands.
type (
	projectsLoaded struct {
		projects []domain.Project
		err      error
	}

	searchCompleted struct {
		results *domain.RankedResults
		err     error
	}
)

// Model is the root bubbletea model.
type Model struct {
	cfg    Config
	styles *styles.Styles
	ctx    context.Context

	screen   screen
	projects []domain.Project
	cursor   int
	project  *domain.Project

	input     textinput.Model
	searching bool
	results   *domain.RankedResults
	err       error

	width  int
	height int
}

// New creates the TUI model.
func New(cfg Config) *Model {
	input := textinput.New()
	input.Placeholder = "Type a question and press Enter"
	input.CharLimit = 512

	return &Model{
		cfg:    cfg,
		styles: styles.DefaultStyles(),
		ctx:    context.Background(),
		screen: screenProjects,
		input:  input,
		width:  80,
		height: 24,
	}
}

// Run starts the TUI and blocks until it exits.
func (m *Model) Run() error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init loads the project list.
func (m *Model) Init() tea.Cmd {
	return m.loadProjects()
}

func (m *Model) loadProjects() tea.Cmd {
	return func() tea.Msg {
		projects, err := m.cfg.ProjectService.List(m.ctx)
		return projectsLoaded{projects: projects, err: err}
	}
}

func (m *Model) performSearch(projectID, query string) tea.Cmd {
	return func() tea.Msg {
		index, err := m.cfg.IndexService.BuildIndex(m.ctx, projectID)
		if err != nil {
			return searchCompleted{err: err}
		}

		opts := domain.SearchOptions{
			TopK:         m.cfg.Settings.TopK,
			TopNPrimary:  m.cfg.Settings.TopNPrimary,
			MinRelevance: m.cfg.Settings.MinRelevance,
		}
		results, err := m.cfg.SearchService.Search(m.ctx, index, query, opts)
		return searchCompleted{results: results, err: err}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
		return m, nil

	case projectsLoaded:
		m.err = msg.err
		m.projects = msg.projects
		if m.cursor >= len(m.projects) {
			m.cursor = 0
		}
		return m, nil

	case searchCompleted:
		m.searching = false
		m.err = msg.err
		m.results = msg.results
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.screen {
	case screenProjects:
		return m.handleProjectsKey(msg)
	case screenSearch:
		return m.handleSearchKey(msg)
	}
	return m, nil
}

func (m *Model) handleProjectsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.projects) == 0 {
			return m, nil
		}
		m.project = &m.projects[m.cursor]
		m.screen = screenSearch
		m.results = nil
		m.err = nil
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenProjects
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		query := strings.TrimSpace(m.input.Value())
		if query == "" || m.searching {
			return m, nil
		}
		m.searching = true
		m.err = nil
		return m, m.performSearch(m.project.ID, query)
	default:
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the active screen.
func (m *Model) View() string {
	switch m.screen {
	case screenSearch:
		return m.viewSearch()
	default:
		return m.viewProjects()
	}
}

func (m *Model) viewProjects() string {
	sections := []string{
		m.styles.Title.Render("Insyte"),
		"",
		m.styles.Subtitle.Render("Select a project"),
		"",
	}

	if m.err != nil {
		sections = append(sections, m.styles.Error.Render("Error: "+m.err.Error()), "")
	}

	if len(m.projects) == 0 {
		sections = append(sections, m.styles.Muted.Render("No projects yet. Create one with 'insyte project create <name>'."))
	}

	for i := range m.projects {
		p := &m.projects[i]
		line := fmt.Sprintf("%s (%d docs)", p.Name, p.DocumentCount)
		if i == m.cursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = m.styles.Normal.Render("  " + line)
		}
		sections = append(sections, line)
	}

	sections = append(sections, "",
		m.styles.Help.Render("↑/k ↓/j navigate · enter select · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewSearch() string {
	sections := []string{
		m.styles.Title.Render("Insyte") + m.styles.Muted.Render(" · "+m.project.Name),
		"",
		m.styles.InputField.Render(m.input.View()),
		"",
	}

	switch {
	case m.searching:
		sections = append(sections, m.styles.Muted.Render("Searching..."))
	case m.err != nil:
		sections = append(sections, m.styles.Error.Render("Error: "+m.err.Error()))
	case m.results != nil:
		sections = append(sections, m.viewResults())
	}

	sections = append(sections, "",
		m.styles.Help.Render("enter search · esc back · ctrl+c quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewResults() string {
	if m.results.Total() == 0 {
		return m.styles.Muted.Render("No results found.")
	}

	sections := []string{m.styles.Subtitle.Render("Top matches"), ""}
	sections = append(sections, m.renderGroup(m.results.Primary)...)

	if len(m.results.Overflow) > 0 {
		sections = append(sections, m.styles.Subtitle.Render("Additional matches"), "")
		sections = append(sections, m.renderGroup(m.results.Overflow)...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderGroup(results []domain.SearchResult) []string {
	lines := make([]string, 0, len(results)*3)
	for i := range results {
		r := &results[i]
		header := m.styles.Tier(r.Tier).Render(fmt.Sprintf("%s %d%%", r.Tier.Emoji(), r.Percentage)) +
			" " + m.styles.Normal.Render(r.Passage.Filename)
		lines = append(lines, header,
			m.styles.Muted.Render("  "+snippet(r.Passage.Text, m.width-4)),
			"")
	}
	return lines
}

// snippet truncates passage text to fit a single display line.
func snippet(text string, width int) string {
	if width < 20 {
		width = 20
	}
	text = strings.ReplaceAll(text, "\n", " ")
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return string(runes[:width-3]) + "..."
}
