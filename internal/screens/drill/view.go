package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/limitz/internal/coach"
	"github.com/abhisek/limitz/internal/evaluate"
	"github.com/abhisek/limitz/internal/plot"
	"github.com/abhisek/limitz/internal/problem"
	sess "github.com/abhisek/limitz/internal/session"
	"github.com/abhisek/limitz/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	if d.errMsg != "" {
		return renderError(width, d.errMsg)
	}
	if d.quitConfirm {
		return renderQuitConfirm(width)
	}
	if d.state.Current == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing a problem...")
	}
	return d.renderProblem(width)
}

// renderProblem is the main play view: problem, input or solution,
// feedback, hint, and optionally the plot and coach walkthrough.
func (d *DrillScreen) renderProblem(width int) string {
	p := *d.state.Current
	var b strings.Builder

	// Progress line.
	info := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Problem %d   solved %d   streak %d   share %s",
			d.state.TotalProblems, d.state.TotalSolved, d.state.Streak,
			problem.EncodeShareCode(p)))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// The limit itself.
	b.WriteString(theme.Math.
		Width(width).
		Align(lipgloss.Center).
		Render(problem.Prompt(p)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("as x approaches -1 from the right"))
	b.WriteString("\n\n")

	if d.state.SolutionVisible() {
		b.WriteString(d.renderSolved(width))
	} else {
		b.WriteString(d.renderOpen(width))
	}

	if d.showPlot {
		b.WriteString("\n")
		b.WriteString(renderPlot(p, d.plots.Curve(p), width))
	}

	return b.String()
}

// renderOpen renders the answer input plus any feedback and hint.
func (d *DrillScreen) renderOpen(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + d.input.View()))
	b.WriteString("\n\n")

	if fb := d.feedback; fb != nil {
		switch fb.Attempt.Verdict {
		case evaluate.VerdictIncorrect:
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render("Not quite. Try again."))
		case evaluate.VerdictParseError:
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Render("Couldn't read that: " + fb.Attempt.Detail))
		}
		b.WriteString("\n")
	}

	if hint := d.currentHint(); hint != "" {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Padding(0, 1).
			Width(min(width-8, 66)).
			Foreground(theme.Text).
			Render(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Hint: ") + hint)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
		b.WriteString("\n")
	}

	return b.String()
}

// renderSolved renders the outcome, the worked solution, and the coach
// walkthrough when requested.
func (d *DrillScreen) renderSolved(width int) string {
	var b strings.Builder
	p := *d.state.Current

	if d.state.LockedCorrect {
		msg := "Correct!"
		if d.state.HintTier == sess.TierNone {
			msg = fmt.Sprintf("Correct! Streak %d", d.state.Streak)
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(msg))
	} else {
		msg := "The answer was " + p.TargetString()
		if d.state.Exhausted {
			msg = "Out of attempts. " + msg
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(msg))
	}
	b.WriteString("\n\n")

	// Worked solution.
	var sol strings.Builder
	sol.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Worked solution"))
	sol.WriteString("\n")
	for _, step := range problem.SolutionSteps(p) {
		sol.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(step))
		sol.WriteString("\n")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(strings.TrimRight(sol.String(), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	b.WriteString("\n")

	if d.explaining {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Asking the coach..."))
		b.WriteString("\n")
	}
	if d.explainErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Coach unavailable: " + d.explainErr))
		b.WriteString("\n")
	}
	if d.explanation != nil {
		b.WriteString(renderExplanation(d.explanation, width))
	}

	return b.String()
}

// currentHint returns the hint text for the current tier, empty at TierNone.
func (d *DrillScreen) currentHint() string {
	switch d.state.HintTier {
	case sess.TierStrategy:
		return problem.StrategyHint(*d.state.Current)
	case sess.TierAlgebra:
		return problem.AlgebraHint(*d.state.Current)
	}
	return ""
}

// renderExplanation renders the coach's structured walkthrough.
func renderExplanation(e *coach.Explanation, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Coach"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(e.KeyIdea))
	b.WriteString("\n")
	for i, step := range e.Steps {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("%d. %s", i+1, step.Title)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + step.Detail))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Italic(true).Render(e.Takeaway))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1).
		Width(min(width-8, 70)).
		Render(b.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box) + "\n"
}

// plotWidth/plotHeight bound the character grid of the ASCII plot.
const (
	plotWidth  = 56
	plotHeight = 12
)

// renderPlot draws the sampled curve as a character grid with the
// removable hole marked hollow.
func renderPlot(p problem.Problem, c plot.Curve, width int) string {
	if len(c.Points) == 0 {
		return ""
	}

	// Y range: from 0 to the largest finite sample, padded slightly.
	maxY := c.Hole.Y
	for _, pt := range c.Points {
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	maxY *= 1.1

	grid := make([][]rune, plotHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", plotWidth))
	}

	toCol := func(x float64) int {
		col := int((x - plot.WindowMin) / (plot.WindowMax - plot.WindowMin) * float64(plotWidth-1))
		return clamp(col, 0, plotWidth-1)
	}
	toRow := func(y float64) int {
		row := plotHeight - 1 - int(y/maxY*float64(plotHeight-1))
		return clamp(row, 0, plotHeight-1)
	}

	for _, pt := range c.Points {
		grid[toRow(pt.Y)][toCol(pt.X)] = '·'
	}
	// Hollow marker at the removable discontinuity.
	grid[toRow(c.Hole.Y)][toCol(c.Hole.X)] = '○'

	var b strings.Builder
	_, q := p.Factors()
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("y = √(1/(x + %d))  on  [%g, %g]", q, plot.WindowMin, plot.WindowMax)))
	b.WriteString("\n")
	for _, row := range grid {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(string(row)))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("hole at (-1, %.4g)", c.Hole.Y)))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress is saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press Esc to end the session.", errMsg))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
