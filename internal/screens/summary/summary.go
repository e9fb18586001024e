package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/limitz/internal/router"
	"github.com/abhisek/limitz/internal/screen"
	sess "github.com/abhisek/limitz/internal/session"
	"github.com/abhisek/limitz/internal/ui/components"
	"github.com/abhisek/limitz/internal/ui/layout"
	"github.com/abhisek/limitz/internal/ui/theme"
)

// SummaryScreen shows the end-of-session rollup after a drill ends.
type SummaryScreen struct {
	sum *sess.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)

func New(sum *sess.SessionSummary) *SummaryScreen {
	return &SummaryScreen{sum: sum}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to menu"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Session complete"))
	b.WriteString("\n\n")

	sum := s.sum

	rows := []struct {
		label string
		value string
	}{
		{"Problems served", fmt.Sprintf("%d", sum.TotalProblems)},
		{"Solved", fmt.Sprintf("%d", sum.TotalSolved)},
		{"Attempts", fmt.Sprintf("%d", sum.TotalAttempts)},
		{"Best streak", fmt.Sprintf("%d", sum.BestStreak)},
		{"Hints used", fmt.Sprintf("%d", sum.HintsUsed)},
		{"Time", sum.Duration.Round(time.Second).String()},
	}

	var card strings.Builder
	for _, r := range rows {
		card.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(18).Render(r.label))
		card.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r.value))
		card.WriteString("\n")
	}
	card.WriteString("\n")
	bar := components.NewProgressBar("Accuracy", sum.Accuracy(), true, 40)
	card.WriteString(bar.View())

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(strings.TrimRight(card.String(), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	b.WriteString("\n\n")

	note := encouragement(sum)
	b.WriteString(theme.Subtitle.Width(width).Render(note))

	return b.String()
}

// encouragement picks a closing line from the session's shape.
func encouragement(sum *sess.SessionSummary) string {
	switch {
	case sum.TotalProblems == 0:
		return "Come back when you're ready."
	case sum.Accuracy() == 1 && sum.HintsUsed == 0:
		return "Flawless. Every limit fell on the first pass."
	case sum.BestStreak >= 5:
		return fmt.Sprintf("A streak of %d without hints. Keep it rolling.", sum.BestStreak)
	case sum.HintsUsed > sum.TotalSolved:
		return "Leaning on hints is fine while the factoring settles in."
	default:
		return "Solid work. Conjugates and factoring get faster each session."
	}
}
