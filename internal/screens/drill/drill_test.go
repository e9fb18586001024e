package drill

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/limitz/internal/coach"
	"github.com/abhisek/limitz/internal/problem"
	"github.com/abhisek/limitz/internal/router"
	"github.com/abhisek/limitz/internal/screen"
	"github.com/abhisek/limitz/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	problems []store.ProblemEventData
	attempts []store.AttemptEventData
	hints    []store.HintEventData
	sessions []store.SessionEventData
	requests []store.CoachRequestEventData
}

func (m *mockEventRepo) AppendProblem(_ context.Context, data store.ProblemEventData) error {
	m.problems = append(m.problems, data)
	return nil
}
func (m *mockEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	m.attempts = append(m.attempts, data)
	return nil
}
func (m *mockEventRepo) AppendHint(_ context.Context, data store.HintEventData) error {
	m.hints = append(m.hints, data)
	return nil
}
func (m *mockEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}
func (m *mockEventRepo) AppendCoachRequest(_ context.Context, data store.CoachRequestEventData) error {
	m.requests = append(m.requests, data)
	return nil
}
func (m *mockEventRepo) Stats(_ context.Context) (store.Stats, error) {
	return store.Stats{}, nil
}
func (m *mockEventRepo) CoachUsageByProvider(_ context.Context) ([]store.CoachUsage, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDrillScreen(t *testing.T, shared *problem.Problem) (*DrillScreen, *mockEventRepo, *mockSnapshotRepo) {
	t.Helper()
	gen, err := problem.NewGenerator(problem.DefaultConfig())
	require.NoError(t, err)

	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	d := New(gen, eventRepo, snapRepo, nil, shared)
	return d, eventRepo, snapRepo
}

// serveFirst runs the start command synchronously and feeds the
// resulting message back through Update, like the tea runtime would.
func serveFirst(t *testing.T, d *DrillScreen) *DrillScreen {
	t.Helper()
	msg := d.startSession()()
	scr, _ := d.Update(msg)
	return scr.(*DrillScreen)
}

func TestStartSession_ServesProblemAndPersists(t *testing.T) {
	d, eventRepo, _ := testDrillScreen(t, nil)
	d = serveFirst(t, d)

	require.NotNil(t, d.state.Current)
	require.Len(t, eventRepo.sessions, 1)
	assert.Equal(t, "started", eventRepo.sessions[0].EventType)

	require.Len(t, eventRepo.problems, 1)
	pe := eventRepo.problems[0]
	assert.Equal(t, "generated", pe.Source)
	assert.Equal(t, d.state.Current.A, pe.CoefficientA)
	assert.Equal(t, problem.EncodeShareCode(*d.state.Current), pe.ShareCode)
}

func TestStartSession_SharedProblemFirst(t *testing.T) {
	p, err := problem.New(7)
	require.NoError(t, err)

	d, eventRepo, _ := testDrillScreen(t, &p)
	d = serveFirst(t, d)

	require.NotNil(t, d.state.Current)
	assert.Equal(t, 7, d.state.Current.A)
	require.Len(t, eventRepo.problems, 1)
	assert.Equal(t, "shared", eventRepo.problems[0].Source)
}

func TestSubmit_CorrectPersistsAttemptAndSolve(t *testing.T) {
	d, eventRepo, _ := testDrillScreen(t, nil)
	d = serveFirst(t, d)

	d.input.Model.SetValue(d.state.Current.TargetString())
	scr, cmd := d.Update(specialKey(tea.KeyEnter))
	d = scr.(*DrillScreen)
	require.NotNil(t, cmd)
	cmd() // run the persistence command

	require.NotNil(t, d.feedback)
	assert.Equal(t, "correct", string(d.feedback.Attempt.Verdict))
	assert.True(t, d.state.SolutionVisible())

	require.Len(t, eventRepo.attempts, 1)
	assert.Equal(t, "correct", eventRepo.attempts[0].Verdict)
	assert.False(t, eventRepo.attempts[0].Replayed)

	require.Len(t, eventRepo.sessions, 2)
	assert.Equal(t, "solved", eventRepo.sessions[1].EventType)
	assert.Equal(t, 1, eventRepo.sessions[1].TotalSolved)
}

func TestSubmit_WrongAnswerEscalatesAndLogsHint(t *testing.T) {
	d, eventRepo, _ := testDrillScreen(t, nil)
	d = serveFirst(t, d)

	d.input.Model.SetValue("5/7")
	scr, cmd := d.Update(specialKey(tea.KeyEnter))
	d = scr.(*DrillScreen)
	require.NotNil(t, cmd)
	cmd()

	assert.False(t, d.state.SolutionVisible())
	require.Len(t, eventRepo.attempts, 1)
	assert.Equal(t, "incorrect", eventRepo.attempts[0].Verdict)

	require.Len(t, eventRepo.hints, 1)
	assert.Equal(t, 1, eventRepo.hints[0].Tier)
}

func TestSubmit_EmptyInputIsIgnored(t *testing.T) {
	d, eventRepo, _ := testDrillScreen(t, nil)
	d = serveFirst(t, d)

	_, cmd := d.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Empty(t, eventRepo.attempts)
}

func TestGiveUp_RevealsSolutionAndPersists(t *testing.T) {
	d, eventRepo, _ := testDrillScreen(t, nil)
	d = serveFirst(t, d)

	scr, cmd := d.Update(tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})
	d = scr.(*DrillScreen)
	require.NotNil(t, cmd)
	cmd()

	assert.True(t, d.state.SolutionVisible())
	assert.False(t, d.state.LockedCorrect)

	require.Len(t, eventRepo.sessions, 2)
	assert.Equal(t, "abandoned", eventRepo.sessions[1].EventType)
}

func TestSubmit_ThirdWrongAnswerRevealsSolution(t *testing.T) {
	d, eventRepo, _ := testDrillScreen(t, nil)
	d = serveFirst(t, d)

	for _, raw := range []string{"5/7", "5/8", "5/9"} {
		d.input.Model.SetValue(raw)
		scr, cmd := d.Update(specialKey(tea.KeyEnter))
		d = scr.(*DrillScreen)
		require.NotNil(t, cmd)
		cmd()
	}

	assert.True(t, d.state.SolutionVisible())
	assert.False(t, d.state.LockedCorrect)

	last := eventRepo.sessions[len(eventRepo.sessions)-1]
	assert.Equal(t, "exhausted", last.EventType)
	assert.Equal(t, 0, last.TotalSolved)

	// The problem is spent; the next one serves normally.
	scr, cmd := d.Update(keyPress('n'))
	d = scr.(*DrillScreen)
	require.NotNil(t, cmd)
	scr, _ = d.Update(cmd())
	d = scr.(*DrillScreen)
	assert.False(t, d.state.SolutionVisible())
	assert.Len(t, eventRepo.problems, 2)
}

func TestNextProblem_AfterSolveResetsView(t *testing.T) {
	d, eventRepo, _ := testDrillScreen(t, nil)
	d = serveFirst(t, d)

	d.input.Model.SetValue(d.state.Current.TargetString())
	scr, _ := d.Update(specialKey(tea.KeyEnter))
	d = scr.(*DrillScreen)
	require.True(t, d.state.SolutionVisible())

	scr, cmd := d.Update(keyPress('n'))
	d = scr.(*DrillScreen)
	require.NotNil(t, cmd)
	scr, _ = d.Update(cmd())
	d = scr.(*DrillScreen)

	assert.False(t, d.state.SolutionVisible())
	assert.Nil(t, d.feedback)
	assert.Len(t, eventRepo.problems, 2)
}

func TestQuitConfirm_Dismiss(t *testing.T) {
	d, _, _ := testDrillScreen(t, nil)
	d = serveFirst(t, d)

	scr, _ := d.Update(specialKey(tea.KeyEscape))
	d = scr.(*DrillScreen)
	assert.True(t, d.quitConfirm)

	scr, _ = d.Update(keyPress('n'))
	d = scr.(*DrillScreen)
	assert.False(t, d.quitConfirm)
}

func TestQuitConfirm_EndReplacesWithSummary(t *testing.T) {
	d, eventRepo, snapRepo := testDrillScreen(t, nil)
	d = serveFirst(t, d)

	d.input.Model.SetValue(d.state.Current.TargetString())
	scr, _ := d.Update(specialKey(tea.KeyEnter))
	d = scr.(*DrillScreen)

	scr, _ = d.Update(specialKey(tea.KeyEscape))
	d = scr.(*DrillScreen)
	scr, cmd := d.Update(keyPress('y'))
	d = scr.(*DrillScreen)
	require.NotNil(t, cmd)

	// The quit confirmation yields the end-session message, which the
	// screen turns into a Replace to the summary. The store writes
	// happen inside the command, not during Update.
	scr, cmd = d.Update(cmd())
	require.NotNil(t, cmd)
	assert.NotEqual(t, "ended", eventRepo.sessions[len(eventRepo.sessions)-1].EventType)
	assert.Empty(t, snapRepo.snapshots)

	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg, got %T", msg)
	assert.NotNil(t, replace.Screen)

	last := eventRepo.sessions[len(eventRepo.sessions)-1]
	assert.Equal(t, "ended", last.EventType)

	require.Len(t, snapRepo.snapshots, 1)
	data := snapRepo.snapshots[0].Data
	assert.Equal(t, 1, data.TotalSolved)
	assert.Equal(t, 1, data.TotalProblems)
}

func TestSnapshot_FoldsIntoPrevious(t *testing.T) {
	d, _, snapRepo := testDrillScreen(t, nil)
	snapRepo.snapshots = append(snapRepo.snapshots, &store.Snapshot{
		Data: store.SnapshotData{
			Version:       1,
			TotalProblems: 10,
			TotalSolved:   8,
			BestStreak:    4,
		},
	})
	d = serveFirst(t, d)

	d.input.Model.SetValue(d.state.Current.TargetString())
	scr, _ := d.Update(specialKey(tea.KeyEnter))
	d = scr.(*DrillScreen)

	d.saveSnapshot(context.Background())

	latest := snapRepo.snapshots[len(snapRepo.snapshots)-1].Data
	assert.Equal(t, 11, latest.TotalProblems)
	assert.Equal(t, 9, latest.TotalSolved)
	assert.Equal(t, 4, latest.BestStreak)
}

func TestCoachKey_NoCoachConfigured(t *testing.T) {
	d, _, _ := testDrillScreen(t, nil)
	d = serveFirst(t, d)

	d.input.Model.SetValue(d.state.Current.TargetString())
	scr, _ := d.Update(specialKey(tea.KeyEnter))
	d = scr.(*DrillScreen)

	_, cmd := d.Update(keyPress('c'))
	assert.Nil(t, cmd)
}

func TestCoachKey_RequestsExplanation(t *testing.T) {
	mock := coach.NewMockProvider(coach.MockReply{JSON: []byte(`{
		"restatement": "Limit of a square root as x approaches -1.",
		"key_idea": "Factor, cancel, substitute.",
		"steps": [
			{"title": "Factor", "detail": "The denominator has an (x+1) factor."},
			{"title": "Substitute", "detail": "Plug in x = -1 after cancelling."}
		],
		"pitfall": "Substituting before cancelling gives 0/0.",
		"takeaway": "0/0 means simplify first."
	}`)})

	gen, err := problem.NewGenerator(problem.DefaultConfig())
	require.NoError(t, err)
	d := New(gen, &mockEventRepo{}, &mockSnapshotRepo{}, coach.New(mock), nil)
	d = serveFirst(t, d)

	d.input.Model.SetValue(d.state.Current.TargetString())
	scr, _ := d.Update(specialKey(tea.KeyEnter))
	d = scr.(*DrillScreen)

	scr, cmd := d.Update(keyPress('c'))
	d = scr.(*DrillScreen)
	require.NotNil(t, cmd)
	assert.True(t, d.explaining)

	scr, _ = d.Update(cmd())
	d = scr.(*DrillScreen)
	assert.False(t, d.explaining)
	require.NotNil(t, d.explanation)
	assert.Equal(t, "Factor, cancel, substitute.", d.explanation.KeyIdea)
}

func TestView_Renders(t *testing.T) {
	d, _, _ := testDrillScreen(t, nil)

	// Loading state before the first problem arrives.
	assert.NotEmpty(t, d.View(80, 24))

	d = serveFirst(t, d)
	view := d.View(80, 24)
	assert.Contains(t, view, "lim[x→-1]")
	assert.Contains(t, view, "Answer:")

	// Solution view after solving.
	d.input.Model.SetValue(d.state.Current.TargetString())
	scr, _ := d.Update(specialKey(tea.KeyEnter))
	d = scr.(*DrillScreen)
	view = d.View(80, 24)
	assert.Contains(t, view, "Worked solution")
	assert.Contains(t, view, "Factor the denominator")

	// Plot toggled on.
	scr, _ = d.Update(keyPress('p'))
	d = scr.(*DrillScreen)
	view = d.View(80, 24)
	assert.Contains(t, view, "hole at (-1,")

	var _ screen.Screen = d
}
