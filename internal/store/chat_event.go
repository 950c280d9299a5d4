package store

import (
	"context"
	"fmt"

	"github.com/great123-artV/GradeX/ent"
	"github.com/great123-artV/GradeX/ent/chatmessage"
)

func (r *eventRepo) AppendChatMessage(ctx context.Context, data ChatMessageData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ChatMessage.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetRole(chatmessage.Role(data.Role)).
		SetContent(data.Content).
		SetMood(data.Mood).
		SetSource(data.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save chat message: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryChatMessages(ctx context.Context, sessionID string, opts QueryOpts) ([]ChatMessage, error) {
	q := r.client.ChatMessage.Query()
	if sessionID != "" {
		q = q.Where(chatmessage.SessionID(sessionID))
	}
	if opts.After > 0 {
		q = q.Where(chatmessage.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(chatmessage.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(chatmessage.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(chatmessage.TimestampLTE(opts.To))
	}

	// Limit keeps the most recent messages, returned oldest first.
	q = q.Order(ent.Desc(chatmessage.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chat messages: %w", err)
	}

	out := make([]ChatMessage, len(rows))
	for i, m := range rows {
		out[len(rows)-1-i] = ChatMessage{
			ID:        m.ID,
			Sequence:  m.Sequence,
			Timestamp: m.Timestamp,
			ChatMessageData: ChatMessageData{
				SessionID: m.SessionID,
				Role:      string(m.Role),
				Content:   m.Content,
				Mood:      m.Mood,
				Source:    m.Source,
			},
		}
	}
	return out, nil
}
