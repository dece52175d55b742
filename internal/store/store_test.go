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

func testEventRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
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

func TestAppendAndQueryAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	attempts := []AttemptEventData{
		{SessionID: "s1", Difficulty: "easy", Outcome: OutcomeSuccess, Progress: 1, ElapsedMs: 2000},
		{SessionID: "s2", Difficulty: "medium", Outcome: OutcomeTimeout, Progress: 0.9, TimeLimitMs: 1000, ElapsedMs: 1000},
		{SessionID: "s3", Difficulty: "hard", Outcome: OutcomeMiss, Progress: 0.75, ZoneStart: 0.4, ZoneEnd: 0.6, TimeLimitMs: 1000, ElapsedMs: 640},
	}
	for i, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	// Newest first.
	if records[0].SessionID != "s3" {
		t.Errorf("first record session = %q, want s3", records[0].SessionID)
	}
	if records[0].ZoneStart != 0.4 || records[0].ZoneEnd != 0.6 {
		t.Errorf("zone = [%v, %v], want [0.4, 0.6]", records[0].ZoneStart, records[0].ZoneEnd)
	}

	// Sequences are strictly decreasing in the newest-first ordering.
	for i := 1; i < len(records); i++ {
		if records[i].Sequence >= records[i-1].Sequence {
			t.Errorf("sequence not decreasing: %d then %d", records[i-1].Sequence, records[i].Sequence)
		}
	}
}

func TestQueryAttemptsFilters(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		difficulty := "easy"
		if i%2 == 1 {
			difficulty = "hard"
		}
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID:  "s",
			Difficulty: difficulty,
			Outcome:    OutcomeMiss,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryAttempts(ctx, QueryOpts{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("query hard: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("hard records = %d, want 2", len(records))
	}

	records, err = repo.QueryAttempts(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("limited records = %d, want 3", len(records))
	}
}

func TestStatsAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	data := []AttemptEventData{
		{SessionID: "a", Difficulty: "easy", Outcome: OutcomeSuccess},
		{SessionID: "b", Difficulty: "easy", Outcome: OutcomeSuccess},
		{SessionID: "c", Difficulty: "easy", Outcome: OutcomeMiss},
		{SessionID: "d", Difficulty: "hard", Outcome: OutcomeTimeout},
	}
	for i, a := range data {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d difficulties, want 2", len(stats))
	}

	// Sorted by difficulty name: easy, hard.
	if stats[0].Difficulty != "easy" || stats[0].Attempts != 3 || stats[0].Successes != 2 {
		t.Errorf("easy stats = %+v, want 3 attempts / 2 successes", stats[0])
	}
	if stats[1].Difficulty != "hard" || stats[1].Attempts != 1 || stats[1].Successes != 0 {
		t.Errorf("hard stats = %+v, want 1 attempt / 0 successes", stats[1])
	}

	if got := stats[0].SuccessRate(); got != float64(2)/float64(3) {
		t.Errorf("easy success rate = %v, want 2/3", got)
	}
}

func TestPurgeAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID:  "s",
			Difficulty: "easy",
			Outcome:    OutcomeMiss,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	n, err := repo.PurgeAttempts(ctx)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 4 {
		t.Errorf("purged %d, want 4", n)
	}

	records, err := repo.QueryAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query after purge: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records after purge = %d, want 0", len(records))
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
		Data: SnapshotData{
			Version:       1,
			Prefs:         &Preferences{Difficulty: "hard", TimeLimitMs: 800, ResetDelayMs: 1500},
			TotalConfirms: 9,
		},
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
	if snap.Data.Prefs == nil || snap.Data.Prefs.Difficulty != "hard" {
		t.Errorf("prefs = %+v, want difficulty hard", snap.Data.Prefs)
	}
	if snap.Data.TotalConfirms != 9 {
		t.Errorf("total confirms = %d, want 9", snap.Data.TotalConfirms)
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

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
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
