package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendCueEvent(ctx context.Context, data CueEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CueEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetItemID(data.ItemID).
		SetLevel(data.Level).
		SetCueText(data.CueText).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save cue event: %w", err)
	}
	return nil
}
