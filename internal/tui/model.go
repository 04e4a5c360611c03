// Package tui is a terminal viewer for calculation results: it loads a
// profile, runs the engine, and shows the full report in a scrollable
// viewport.
package tui

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxprep/taxengine/internal/calculation"
	"github.com/taxprep/taxengine/internal/config"
	"github.com/taxprep/taxengine/internal/domain"
	"github.com/taxprep/taxengine/internal/output"
)

// Model is the viewer state.
type Model struct {
	profilePath string

	taxReturn *domain.TaxReturn
	report    string

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	err error
}

// NewModel creates a viewer for the given profile path.
func NewModel(profilePath string) Model {
	return Model{profilePath: profilePath, width: 80, height: 24}
}

// resultMsg carries a completed calculation into the update loop.
type resultMsg struct {
	taxReturn *domain.TaxReturn
	report    string
}

type errorMsg struct{ err error }

func calculateCmd(profilePath string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		profile, err := parser.LoadFromFile(profilePath)
		if err != nil {
			return errorMsg{err}
		}
		tr, err := profile.ToTaxReturn()
		if err != nil {
			return errorMsg{err}
		}
		if err := calculation.NewEngine().Calculate(tr); err != nil {
			return errorMsg{err}
		}
		var buf bytes.Buffer
		if err := output.NewReportGenerator(&buf).GenerateConsoleReport(tr); err != nil {
			return errorMsg{err}
		}
		return resultMsg{taxReturn: tr, report: buf.String()}
	}
}

// Init starts the calculation.
func (m Model) Init() tea.Cmd {
	return calculateCmd(m.profilePath)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, calculateCmd(m.profilePath)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.viewport.SetContent(m.report)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}

	case resultMsg:
		m.taxReturn = msg.taxReturn
		m.report = msg.report
		m.err = nil
		if m.ready {
			m.viewport.SetContent(m.report)
			m.viewport.GotoTop()
		}

	case errorMsg:
		m.err = msg.err
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewer.
func (m Model) View() string {
	title := titleStyle.Render("Tax Calculation Viewer")
	if m.err != nil {
		return fmt.Sprintf("%s\n\n%s\n\n%s\n", title,
			errorStyle.Render("Error: "+m.err.Error()),
			statusStyle.Render("r: retry  q: quit"))
	}
	if !m.ready || m.report == "" {
		return fmt.Sprintf("%s\n\n%s\n", title, statusStyle.Render("Calculating..."))
	}
	status := statusStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll  r: recalculate  q: quit", m.viewport.ScrollPercent()*100))
	return fmt.Sprintf("%s\n%s\n%s", title, m.viewport.View(), status)
}

// Run starts the viewer program.
func Run(profilePath string) error {
	program := tea.NewProgram(NewModel(profilePath), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
