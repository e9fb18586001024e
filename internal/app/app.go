package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/limitz/internal/coach"
	"github.com/abhisek/limitz/internal/problem"
	"github.com/abhisek/limitz/internal/router"
	"github.com/abhisek/limitz/internal/screen"
	"github.com/abhisek/limitz/internal/screens/home"
	"github.com/abhisek/limitz/internal/store"
	"github.com/abhisek/limitz/internal/ui/layout"
)

// Options carries the wired dependencies for a TUI run.
type Options struct {
	Generator    *problem.Generator
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo

	// Coach may be nil when no provider is configured; the drill
	// screen degrades to the built-in worked solution.
	Coach *coach.Coach

	// Shared is a problem decoded from a share code, queued for the
	// first practice session.
	Shared *problem.Problem
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Generator, opts.EventRepo, opts.SnapshotRepo, opts.Coach, opts.Shared)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Quit is global; everything else, Esc included, belongs to
		// the active screen so the drill can confirm before ending.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	streak, solved := 0, 0
	if sp, ok := active.(screen.StreakProvider); ok {
		streak, solved = sp.HeaderCounts()
	}
	header := layout.RenderHeader(title, streak, solved, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
