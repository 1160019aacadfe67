package store

import (
	"context"
	"fmt"

	"github.com/fweiner/parrotsoftware-treatment-sub000/ent"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) CurrentSequence(ctx context.Context) (int64, error) {
	return r.seq.Current(ctx)
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetExercise(data.Exercise).
		SetItemsTotal(data.ItemsTotal).
		SetItemsCorrect(data.ItemsCorrect).
		SetItemsPartial(data.ItemsPartial).
		SetItemsTimedOut(data.ItemsTimedOut).
		SetCuesUsed(data.CuesUsed).
		SetMeanLatencyMs(data.MeanLatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(sessionevent.TimestampLTE(opts.To))
	}
	if opts.Exercise != "" {
		query = query.Where(sessionevent.Exercise(opts.Exercise))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := make([]SessionSummaryRecord, len(events))
	for i, e := range events {
		records[i] = SessionSummaryRecord{
			SessionID:     e.SessionID,
			Exercise:      e.Exercise,
			Timestamp:     e.Timestamp,
			ItemsTotal:    e.ItemsTotal,
			ItemsCorrect:  e.ItemsCorrect,
			ItemsPartial:  e.ItemsPartial,
			ItemsTimedOut: e.ItemsTimedOut,
			CuesUsed:      e.CuesUsed,
			MeanLatencyMs: e.MeanLatencyMs,
		}
	}
	return records, nil
}

func (r *eventRepo) ExerciseStats(ctx context.Context) (map[string]ExerciseProgress, error) {
	events, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exercise stats: %w", err)
	}

	type acc struct {
		sessions int
		weighted float64
		items    int
	}
	accs := make(map[string]*acc)
	stats := make(map[string]ExerciseProgress)
	for _, e := range events {
		a := accs[e.Exercise]
		if a == nil {
			a = &acc{}
			accs[e.Exercise] = a
		}
		a.sessions++
		a.weighted += float64(e.ItemsCorrect)
		a.items += e.ItemsTotal

		p := stats[e.Exercise]
		p.TotalSessions = a.sessions
		if a.items > 0 {
			p.AverageAccuracy = a.weighted / float64(a.items)
		}
		if e.Timestamp.After(p.LastSessionAt) {
			p.LastSessionAt = e.Timestamp
		}
		stats[e.Exercise] = p
	}
	return stats, nil
}
