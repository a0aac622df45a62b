package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// eventRepo implements EventRepo over database/sql.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	switch data.Action {
	case ActionStart, ActionComplete, ActionAbort:
	default:
		return fmt.Errorf("unknown session action %q", data.Action)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_events
			(sequence, timestamp, session_id, level_id, action, score, target, attempts, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixMilli(), data.SessionID, data.LevelID, data.Action,
		data.Score, data.Target, data.Attempts, data.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	var (
		where strings.Builder
		args  []any
	)
	where.WriteString(`s.action = 'start'`)
	if opts.LevelID > 0 {
		where.WriteString(` AND s.level_id = ?`)
		args = append(args, opts.LevelID)
	}

	limit := -1
	if opts.Limit > 0 {
		limit = opts.Limit
	}
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, `
		SELECT s.session_id, s.level_id, s.timestamp, s.target,
			e.action, e.score, e.attempts, e.duration_ms
		FROM session_events s
		LEFT JOIN session_events e
			ON e.session_id = s.session_id AND e.action IN ('complete', 'abort')
		WHERE `+where.String()+`
		ORDER BY s.sequence DESC
		LIMIT ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var records []SessionSummaryRecord
	for rows.Next() {
		var (
			rec                       SessionSummaryRecord
			startedMs                 int64
			action                    sql.NullString
			score, attempts, duration sql.NullInt64
		)
		if err := rows.Scan(&rec.SessionID, &rec.LevelID, &startedMs, &rec.Target,
			&action, &score, &attempts, &duration); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		rec.StartedAt = time.UnixMilli(startedMs)
		rec.Outcome = action.String
		rec.Score = int(score.Int64)
		rec.Attempts = int(attempts.Int64)
		rec.Duration = time.Duration(duration.Int64) * time.Millisecond
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session summaries: %w", err)
	}
	return records, nil
}

func (r *eventRepo) CompletedLevels(ctx context.Context) (map[int]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT level_id, COUNT(*) FROM session_events WHERE action = 'complete' GROUP BY level_id`)
	if err != nil {
		return nil, fmt.Errorf("query completed levels: %w", err)
	}
	defer rows.Close()

	out := make(map[int]int)
	for rows.Next() {
		var level, count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("scan completed levels: %w", err)
		}
		out[level] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completed levels: %w", err)
	}
	return out, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"session_events", "answer_events"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}
