package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(sequence, timestamp, session_id, level_id, question, expected, submitted, correct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixMilli(), data.SessionID, data.LevelID,
		data.Question, data.Expected, data.Submitted, data.Correct,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerStats(ctx context.Context, opts QueryOpts) (AnswerStats, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM answer_events`
	var args []any
	if opts.LevelID > 0 {
		query += ` WHERE level_id = ?`
		args = append(args, opts.LevelID)
	}

	var stats AnswerStats
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&stats.Total, &stats.Correct); err != nil {
		return AnswerStats{}, fmt.Errorf("query answer stats: %w", err)
	}
	return stats, nil
}
