package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/limitz/internal/coach"
	"github.com/abhisek/limitz/internal/problem"
	"github.com/abhisek/limitz/internal/router"
	"github.com/abhisek/limitz/internal/screen"
	"github.com/abhisek/limitz/internal/screens/drill"
	"github.com/abhisek/limitz/internal/screens/stats"
	"github.com/abhisek/limitz/internal/store"
	"github.com/abhisek/limitz/internal/ui/components"
	"github.com/abhisek/limitz/internal/ui/layout"
	"github.com/abhisek/limitz/internal/ui/theme"
)

// snapshotLoadedMsg carries the lifetime progress line for the banner.
type snapshotLoadedMsg struct {
	snap *store.Snapshot
}

// HomeScreen is the main menu.
type HomeScreen struct {
	gen       *problem.Generator
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	coach     *coach.Coach

	// shared holds a problem decoded from a share code on the command
	// line; the first Practice launch consumes it.
	shared *problem.Problem

	menu components.Menu
	snap *store.Snapshot
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

func New(gen *problem.Generator, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, coachSvc *coach.Coach, shared *problem.Problem) *HomeScreen {
	h := &HomeScreen{
		gen:       gen,
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		coach:     coachSvc,
		shared:    shared,
	}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Practice", Action: h.startPractice},
		{Label: "Statistics", Action: h.openStats},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		snap, err := h.snapRepo.Latest(context.Background())
		if err != nil {
			return snapshotLoadedMsg{}
		}
		return snapshotLoadedMsg{snap: snap}
	}
}

func (h *HomeScreen) Title() string {
	return "Limit Drills"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotLoadedMsg:
		h.snap = msg.snap
		return h, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) startPractice() tea.Cmd {
	shared := h.shared
	h.shared = nil
	s := drill.New(h.gen, h.eventRepo, h.snapRepo, h.coach, shared)
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) openStats() tea.Cmd {
	s := stats.New(h.eventRepo)
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Limitz"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("one-sided limits, exact answers"))
	b.WriteString("\n\n")

	b.WriteString(theme.Math.
		Width(width).
		Align(lipgloss.Center).
		Render(problem.PromptTemplate))
	b.WriteString("\n\n")

	if h.shared != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("A shared problem is queued for your next session."))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	b.WriteString("\n")

	if h.snap != nil {
		d := h.snap.Data
		line := fmt.Sprintf("Lifetime: %d solved of %d served   best streak %d",
			d.TotalSolved, d.TotalProblems, d.BestStreak)
		b.WriteString(theme.Subtitle.Width(width).Render(line))
	}

	return b.String()
}
