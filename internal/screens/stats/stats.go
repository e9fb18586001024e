package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/limitz/internal/router"
	"github.com/abhisek/limitz/internal/screen"
	"github.com/abhisek/limitz/internal/store"
	"github.com/abhisek/limitz/internal/ui/components"
	"github.com/abhisek/limitz/internal/ui/layout"
	"github.com/abhisek/limitz/internal/ui/theme"
)

type statsLoadedMsg struct {
	stats *store.Stats
	err   error
}

// StatsScreen shows lifetime aggregates computed from the event log.
type StatsScreen struct {
	eventRepo store.EventRepo
	stats     *store.Stats
	err       error
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

func New(eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{eventRepo: eventRepo}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		st, err := s.eventRepo.Stats(context.Background())
		return statsLoadedMsg{stats: &st, err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.stats = msg.stats
		s.err = msg.err
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.err != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nCould not load statistics: " + s.err.Error())
	}
	if s.stats == nil {
		return theme.Subtitle.Width(width).Render("\n\nLoading...")
	}

	st := s.stats
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Lifetime statistics"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Problems served", fmt.Sprintf("%d", st.TotalProblems)},
		{"Solved", fmt.Sprintf("%d", st.TotalSolved)},
		{"Attempts", fmt.Sprintf("%d", st.TotalAttempts)},
		{"Parse errors", fmt.Sprintf("%d", st.ParseErrors)},
		{"Hints used", fmt.Sprintf("%d", st.HintsUsed)},
		{"Best streak", fmt.Sprintf("%d", st.BestStreak)},
	}

	var card strings.Builder
	for _, r := range rows {
		card.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(18).Render(r.label))
		card.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r.value))
		card.WriteString("\n")
	}
	card.WriteString("\n")
	bar := components.NewProgressBar("Accuracy", st.Accuracy(), true, 40)
	card.WriteString(bar.View())

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(card.String())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	b.WriteString("\n")

	if len(st.SolvedByA) > 0 {
		b.WriteString(theme.Subtitle.Width(width).Render("Solved by answer"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderByA(st.SolvedByA)))
	}

	return b.String()
}

// renderByA lists per-answer solve counts in ascending a order.
func renderByA(byA map[int]int) string {
	keys := make([]int, 0, len(byA))
	for a := range byA {
		keys = append(keys, a)
	}
	sort.Ints(keys)

	var b strings.Builder
	for _, a := range keys {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("1/%-3d", a)))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf(" %d", byA[a])))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
