package drill

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/limitz/internal/coach"
	"github.com/abhisek/limitz/internal/evaluate"
	"github.com/abhisek/limitz/internal/plot"
	"github.com/abhisek/limitz/internal/problem"
	"github.com/abhisek/limitz/internal/router"
	"github.com/abhisek/limitz/internal/screen"
	"github.com/abhisek/limitz/internal/screens/summary"
	sess "github.com/abhisek/limitz/internal/session"
	"github.com/abhisek/limitz/internal/store"
	"github.com/abhisek/limitz/internal/ui/components"
	"github.com/abhisek/limitz/internal/ui/layout"
)

// DrillScreen runs one practice session: serve a problem, take answers,
// escalate hints, show the worked solution, repeat.
type DrillScreen struct {
	state     *sess.SessionState
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	coach     *coach.Coach
	plots     *plot.Cache

	input    components.AnswerInput
	feedback *sess.SubmitResult

	showPlot    bool
	quitConfirm bool

	explanation *coach.Explanation
	explaining  bool
	explainErr  string

	errMsg       string
	problemStart time.Time

	// shared is a share-code problem consumed by the first serve.
	shared *problem.Problem
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.StreakProvider = (*DrillScreen)(nil)

// New creates a DrillScreen. coachSvc may be nil when no API key is
// configured; shared may carry a problem decoded from a share code.
func New(gen *problem.Generator, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, coachSvc *coach.Coach, shared *problem.Problem) *DrillScreen {
	return &DrillScreen{
		state:     sess.NewState(uuid.New().String(), gen, sess.DefaultConfig()),
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		coach:     coachSvc,
		plots:     plot.NewCache(),
		input:     components.NewAnswerInput("Exact answer, e.g. 1/3 or √2/2", 40),
		shared:    shared,
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	return tea.Batch(
		d.startSession(),
		d.input.Init(),
	)
}

func (d *DrillScreen) Title() string {
	return "Practice"
}

func (d *DrillScreen) HeaderCounts() (streak, solved int) {
	return d.state.Streak, d.state.TotalSolved
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	if d.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if d.state.SolutionVisible() {
		hints := []layout.KeyHint{
			{Key: "N", Description: "Next problem"},
		}
		if d.coach != nil {
			hints = append(hints, layout.KeyHint{Key: "C", Description: "Coach"})
		}
		hints = append(hints,
			layout.KeyHint{Key: "P", Description: "Plot"},
			layout.KeyHint{Key: "Esc", Description: "End"},
		)
		return hints
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+G", Description: "Give up"},
		{Key: "Ctrl+P", Description: "Plot"},
		{Key: "Esc", Description: "End"},
	}
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemServedMsg:
		return d.handleProblemServed(msg)

	case explanationMsg:
		d.explaining = false
		if msg.Err != nil {
			d.explainErr = msg.Err.Error()
		} else {
			d.explanation = msg.Explanation
		}
		return d, nil

	case persistDoneMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
		}
		return d, nil

	case endSessionMsg:
		return d.handleEnd()

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if !d.state.SolutionVisible() && !d.quitConfirm {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if d.quitConfirm {
		switch key {
		case "y", "Y":
			d.quitConfirm = false
			return d, func() tea.Msg { return endSessionMsg{} }
		case "n", "N", "esc":
			d.quitConfirm = false
		}
		return d, nil
	}

	if key == "esc" {
		d.quitConfirm = true
		return d, nil
	}

	if d.state.SolutionVisible() {
		switch key {
		case "n", "N", "enter":
			return d, d.serveNext()
		case "c", "C":
			if d.coach != nil && d.explanation == nil && !d.explaining {
				d.explaining = true
				d.explainErr = ""
				return d, d.requestExplanation()
			}
		case "p", "P":
			d.showPlot = !d.showPlot
		}
		return d, nil
	}

	// Problem still open.
	switch key {
	case "enter":
		return d.submit()
	case "ctrl+g":
		return d.giveUp()
	case "ctrl+p":
		d.showPlot = !d.showPlot
		return d, nil
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// startSession persists the session start event and serves the first
// problem (a shared one when present).
func (d *DrillScreen) startSession() tea.Cmd {
	state := d.state
	shared := d.shared
	d.shared = nil
	return func() tea.Msg {
		ctx := context.Background()
		_ = d.eventRepo.AppendSession(ctx, store.SessionEventData{
			SessionID: state.SessionID,
			EventType: "started",
		})

		if shared != nil {
			if err := sess.UseProblem(state, *shared); err != nil {
				return problemServedMsg{Err: err}
			}
			d.persistProblem(ctx, *shared, "shared")
			return problemServedMsg{Problem: state.Current}
		}

		p, err := sess.NextProblem(state)
		if err != nil {
			return problemServedMsg{Err: err}
		}
		d.persistProblem(ctx, *p, "generated")
		return problemServedMsg{Problem: p}
	}
}

// serveNext generates and installs the next problem.
func (d *DrillScreen) serveNext() tea.Cmd {
	state := d.state
	return func() tea.Msg {
		p, err := sess.NextProblem(state)
		if err != nil {
			return problemServedMsg{Err: err}
		}
		d.persistProblem(context.Background(), *p, "generated")
		return problemServedMsg{Problem: p}
	}
}

func (d *DrillScreen) persistProblem(ctx context.Context, p problem.Problem, source string) {
	_ = d.eventRepo.AppendProblem(ctx, store.ProblemEventData{
		SessionID:    d.state.SessionID,
		CoefficientA: p.A,
		CoefficientC: p.C,
		CoefficientB: p.B,
		Target:       p.TargetString(),
		Source:       source,
		ShareCode:    problem.EncodeShareCode(p),
	})
}

func (d *DrillScreen) handleProblemServed(msg problemServedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		d.errMsg = msg.Err.Error()
		return d, nil
	}
	d.feedback = nil
	d.explanation = nil
	d.explainErr = ""
	d.input.Reset()
	d.problemStart = time.Now()
	return d, d.input.Init()
}

// submit runs the current input through the session state machine and
// persists the attempt.
func (d *DrillScreen) submit() (screen.Screen, tea.Cmd) {
	raw := d.input.Value()
	if raw == "" {
		return d, nil
	}

	res, err := sess.Submit(d.state, raw)
	if err != nil {
		d.errMsg = err.Error()
		return d, nil
	}

	d.feedback = &res
	correct := res.Attempt.Verdict == evaluate.VerdictCorrect
	d.input.Submit(correct)

	timeMs := time.Since(d.problemStart).Milliseconds()
	state := d.state
	return d, func() tea.Msg {
		ctx := context.Background()

		var parsed string
		if res.Attempt.Value != nil {
			parsed = res.Attempt.Value.String()
		}
		if err := d.eventRepo.AppendAttempt(ctx, store.AttemptEventData{
			SessionID:    state.SessionID,
			CoefficientA: state.Current.A,
			RawInput:     raw,
			ParsedValue:  parsed,
			Verdict:      string(res.Attempt.Verdict),
			HintTier:     int(res.HintTier),
			Replayed:     res.Replayed,
			TimeMs:       timeMs,
		}); err != nil {
			return persistDoneMsg{Err: err}
		}

		if res.TierAdvanced {
			if err := d.eventRepo.AppendHint(ctx, store.HintEventData{
				SessionID:    state.SessionID,
				CoefficientA: state.Current.A,
				Tier:         int(res.HintTier),
			}); err != nil {
				return persistDoneMsg{Err: err}
			}
		}

		if correct && !res.Replayed {
			if err := d.eventRepo.AppendSession(ctx, store.SessionEventData{
				SessionID:   state.SessionID,
				EventType:   "solved",
				Streak:      state.Streak,
				BestStreak:  state.BestStreak,
				TotalSolved: state.TotalSolved,
			}); err != nil {
				return persistDoneMsg{Err: err}
			}
		}

		if res.Exhausted {
			if err := d.eventRepo.AppendSession(ctx, store.SessionEventData{
				SessionID:   state.SessionID,
				EventType:   "exhausted",
				Streak:      state.Streak,
				BestStreak:  state.BestStreak,
				TotalSolved: state.TotalSolved,
			}); err != nil {
				return persistDoneMsg{Err: err}
			}
		}

		return persistDoneMsg{}
	}
}

// giveUp abandons the current problem and reveals the solution.
func (d *DrillScreen) giveUp() (screen.Screen, tea.Cmd) {
	if d.state.SolutionVisible() {
		return d, nil
	}
	sess.Abandon(d.state)
	d.feedback = nil
	state := d.state
	return d, func() tea.Msg {
		err := d.eventRepo.AppendSession(context.Background(), store.SessionEventData{
			SessionID:   state.SessionID,
			EventType:   "abandoned",
			Streak:      state.Streak,
			BestStreak:  state.BestStreak,
			TotalSolved: state.TotalSolved,
		})
		return persistDoneMsg{Err: err}
	}
}

// requestExplanation asks the coach for a walkthrough of the current
// problem, including the student's wrong attempts.
func (d *DrillScreen) requestExplanation() tea.Cmd {
	state := d.state
	c := d.coach
	p := *state.Current

	var wrong []string
	for _, a := range state.Attempts {
		if a.Verdict == evaluate.VerdictIncorrect {
			wrong = append(wrong, a.RawInput)
		}
	}

	return func() tea.Msg {
		ctx := coach.WithSession(context.Background(), state.SessionID)
		expl, err := c.Explain(ctx, p, wrong)
		return explanationMsg{Explanation: expl, Err: err}
	}
}

// handleEnd persists the end event, rolls the session into the progress
// snapshot, and replaces this screen with the summary. The store writes
// run inside the command so the update loop never blocks on the DB.
func (d *DrillScreen) handleEnd() (screen.Screen, tea.Cmd) {
	state := d.state
	sum := sess.Summarize(state)
	return d, func() tea.Msg {
		ctx := context.Background()
		_ = d.eventRepo.AppendSession(ctx, store.SessionEventData{
			SessionID:   state.SessionID,
			EventType:   "ended",
			Streak:      state.Streak,
			BestStreak:  state.BestStreak,
			TotalSolved: state.TotalSolved,
		})
		d.saveSnapshot(ctx)
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

// saveSnapshot folds this session's counters into the lifetime snapshot.
func (d *DrillScreen) saveSnapshot(ctx context.Context) {
	data := store.SnapshotData{Version: 1}
	if prev, err := d.snapRepo.Latest(ctx); err == nil && prev != nil {
		data = prev.Data
	}

	data.TotalProblems += d.state.TotalProblems
	data.TotalSolved += d.state.TotalSolved
	data.TotalAttempts += d.state.TotalAttempts
	data.HintsUsed += d.state.HintsUsed
	if d.state.BestStreak > data.BestStreak {
		data.BestStreak = d.state.BestStreak
	}

	_ = d.snapRepo.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      data,
	})
}
