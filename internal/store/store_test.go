package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSession(ctx, SessionEventData{
		SessionID: "s1", EventType: "started",
	}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendProblem(ctx, ProblemEventData{
		SessionID: "s1", CoefficientA: 3, CoefficientC: 11, CoefficientB: 10,
		Target: "1/3", Source: "generated", ShareCode: "Mw==",
	}); err != nil {
		t.Fatalf("append problem: %v", err)
	}
	if err := repo.AppendAttempt(ctx, AttemptEventData{
		SessionID: "s1", CoefficientA: 3, RawInput: "1/3",
		ParsedValue: "1/3", Verdict: "correct",
	}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	pe, err := s.Client().ProblemEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query problem event: %v", err)
	}
	ae, err := s.Client().AttemptEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query attempt event: %v", err)
	}

	if !(se.Sequence < pe.Sequence && pe.Sequence < ae.Sequence) {
		t.Errorf("sequences not ordered across tables: session=%d problem=%d attempt=%d",
			se.Sequence, pe.Sequence, ae.Sequence)
	}
}

func TestStatsAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	problems := []ProblemEventData{
		{SessionID: "s1", CoefficientA: 3, CoefficientC: 11, CoefficientB: 10, Target: "1/3", Source: "generated"},
		{SessionID: "s1", CoefficientA: 5, CoefficientC: 27, CoefficientB: 26, Target: "1/5", Source: "generated"},
		{SessionID: "s2", CoefficientA: 3, CoefficientC: 11, CoefficientB: 10, Target: "1/3", Source: "shared", ShareCode: "Mw=="},
	}
	for i, p := range problems {
		if err := repo.AppendProblem(ctx, p); err != nil {
			t.Fatalf("append problem %d: %v", i, err)
		}
	}

	attempts := []AttemptEventData{
		{SessionID: "s1", CoefficientA: 3, RawInput: "0.5", ParsedValue: "1/2", Verdict: "incorrect"},
		{SessionID: "s1", CoefficientA: 3, RawInput: "1/3", ParsedValue: "1/3", Verdict: "correct", HintTier: 1},
		{SessionID: "s1", CoefficientA: 5, RawInput: "1/", Verdict: "parse_error"},
		{SessionID: "s1", CoefficientA: 5, RawInput: "1/5", ParsedValue: "1/5", Verdict: "correct"},
		{SessionID: "s2", CoefficientA: 3, RawInput: "1/3", ParsedValue: "1/3", Verdict: "correct"},
		// Replayed submissions must not count toward any total.
		{SessionID: "s2", CoefficientA: 3, RawInput: "1/3", ParsedValue: "1/3", Verdict: "correct", Replayed: true},
	}
	for i, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	if err := repo.AppendHint(ctx, HintEventData{SessionID: "s1", CoefficientA: 3, Tier: 1}); err != nil {
		t.Fatalf("append hint: %v", err)
	}
	if err := repo.AppendSession(ctx, SessionEventData{
		SessionID: "s1", EventType: "ended", BestStreak: 2, TotalSolved: 2,
	}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendSession(ctx, SessionEventData{
		SessionID: "s2", EventType: "ended", BestStreak: 1, TotalSolved: 1,
	}); err != nil {
		t.Fatalf("append session: %v", err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalProblems != 3 {
		t.Errorf("TotalProblems = %d, want 3", stats.TotalProblems)
	}
	if stats.TotalSolved != 3 {
		t.Errorf("TotalSolved = %d, want 3", stats.TotalSolved)
	}
	if stats.TotalAttempts != 4 {
		t.Errorf("TotalAttempts = %d, want 4", stats.TotalAttempts)
	}
	if stats.CorrectAttempts != 3 {
		t.Errorf("CorrectAttempts = %d, want 3", stats.CorrectAttempts)
	}
	if stats.ParseErrors != 1 {
		t.Errorf("ParseErrors = %d, want 1", stats.ParseErrors)
	}
	if stats.HintsUsed != 1 {
		t.Errorf("HintsUsed = %d, want 1", stats.HintsUsed)
	}
	if stats.BestStreak != 2 {
		t.Errorf("BestStreak = %d, want 2", stats.BestStreak)
	}
	if stats.SolvedByA[3] != 2 || stats.SolvedByA[5] != 1 {
		t.Errorf("SolvedByA = %v, want map[3:2 5:1]", stats.SolvedByA)
	}
	if got := stats.Accuracy(); got != 0.75 {
		t.Errorf("Accuracy() = %v, want 0.75", got)
	}
}

func TestCoachUsageByProvider(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []CoachRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", CoefficientA: 3, InputTokens: 100, OutputTokens: 200, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", CoefficientA: 5, InputTokens: 110, OutputTokens: 180, Success: false, ErrorMessage: "timeout"},
		{Provider: "openai", Model: "gpt-4o", CoefficientA: 3, InputTokens: 90, OutputTokens: 150, Success: true},
	}
	for i, r := range reqs {
		if err := repo.AppendCoachRequest(ctx, r); err != nil {
			t.Fatalf("append coach request %d: %v", i, err)
		}
	}

	usage, err := repo.CoachUsageByProvider(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("len(usage) = %d, want 2", len(usage))
	}
	if usage[0].Provider != "anthropic" || usage[0].Requests != 2 ||
		usage[0].InputTokens != 210 || usage[0].Failures != 1 {
		t.Errorf("anthropic usage = %+v", usage[0])
	}
	if usage[1].Provider != "openai" || usage[1].Requests != 1 || usage[1].OutputTokens != 150 {
		t.Errorf("openai usage = %+v", usage[1])
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1, TotalSolved: 7, BestStreak: 4},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.TotalSolved != 7 || snap.Data.BestStreak != 4 {
		t.Errorf("data = %+v, want TotalSolved=7 BestStreak=4", snap.Data)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
