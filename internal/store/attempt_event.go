package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/sohandillikar/statue-confirmation-component/ent"
	"github.com/sohandillikar/statue-confirmation-component/ent/attemptevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetDifficulty(data.Difficulty).
		SetOutcome(data.Outcome).
		SetProgress(data.Progress).
		SetZoneStart(data.ZoneStart).
		SetZoneEnd(data.ZoneEnd).
		SetTimeLimitMs(data.TimeLimitMs).
		SetElapsedMs(data.ElapsedMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query()

	if opts.After > 0 {
		q = q.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(attemptevent.TimestampLTE(opts.To))
	}
	if opts.Difficulty != "" {
		q = q.Where(attemptevent.Difficulty(opts.Difficulty))
	}

	q = q.Order(ent.Desc(attemptevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AttemptEventData: AttemptEventData{
				SessionID:   e.SessionID,
				Difficulty:  e.Difficulty,
				Outcome:     e.Outcome,
				Progress:    e.Progress,
				ZoneStart:   e.ZoneStart,
				ZoneEnd:     e.ZoneEnd,
				TimeLimitMs: e.TimeLimitMs,
				ElapsedMs:   e.ElapsedMs,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) Stats(ctx context.Context) ([]DifficultyStats, error) {
	events, err := r.client.AttemptEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts for stats: %w", err)
	}

	byDifficulty := make(map[string]*DifficultyStats)
	for _, e := range events {
		st, ok := byDifficulty[e.Difficulty]
		if !ok {
			st = &DifficultyStats{Difficulty: e.Difficulty}
			byDifficulty[e.Difficulty] = st
		}
		st.Attempts++
		if e.Outcome == OutcomeSuccess {
			st.Successes++
		}
	}

	stats := make([]DifficultyStats, 0, len(byDifficulty))
	for _, st := range byDifficulty {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Difficulty < stats[j].Difficulty
	})
	return stats, nil
}

func (r *eventRepo) PurgeAttempts(ctx context.Context) (int, error) {
	n, err := r.client.AttemptEvent.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge attempts: %w", err)
	}
	return n, nil
}
