package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fweiner/parrotsoftware-treatment-sub000/ent"
	"github.com/fweiner/parrotsoftware-treatment-sub000/ent/responseevent"
)

func (r *eventRepo) AppendResponseEvent(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetExercise(data.Exercise).
		SetItemID(data.ItemID).
		SetExpectedAnswer(data.ExpectedAnswer).
		SetAnswer(data.Answer).
		SetCorrect(data.Correct).
		SetPartial(data.Partial).
		SetScore(data.Score).
		SetCuesUsed(data.CuesUsed).
		SetTimedOut(data.TimedOut).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) ItemAccuracy(ctx context.Context, itemID string) (float64, error) {
	events, err := r.client.ResponseEvent.Query().
		Where(responseevent.ItemID(itemID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query item accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) LatestResponseTime(ctx context.Context, itemID string) (time.Time, error) {
	re, err := r.client.ResponseEvent.Query().
		Where(responseevent.ItemID(itemID)).
		Order(ent.Desc(responseevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest response time: %w", err)
	}
	return re.Timestamp, nil
}
