package store

import (
	"context"
	"time"
)

// Session event actions.
const (
	ActionStart    = "start"
	ActionComplete = "complete"
	ActionAbort    = "abort"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int // max results (0 = unlimited)
	LevelID int // only this level (0 = all)
}

// SessionEventData captures one lifecycle event of a level session.
type SessionEventData struct {
	SessionID string
	LevelID   int
	Action    string
	Score     int
	Target    int
	Attempts  int
	Duration  time.Duration
}

// AnswerEventData captures one evaluated submission.
type AnswerEventData struct {
	SessionID string
	LevelID   int
	Question  string
	Expected  int
	Submitted string
	Correct   bool
}

// SessionSummaryRecord is one session as shown in history. Outcome is empty
// for sessions that were started but never finished or aborted.
type SessionSummaryRecord struct {
	SessionID string
	LevelID   int
	StartedAt time.Time
	Outcome   string
	Score     int
	Target    int
	Attempts  int
	Duration  time.Duration
}

// Finished reports whether the session reached a terminal event.
func (r SessionSummaryRecord) Finished() bool {
	return r.Outcome != ""
}

// AnswerStats aggregates evaluated submissions.
type AnswerStats struct {
	Total   int
	Correct int
}

// Accuracy returns Correct/Total, or 0 when nothing was answered.
func (a AnswerStats) Accuracy() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total)
}

// EventRepo provides append and query access to game events.
type EventRepo interface {
	// AppendSessionEvent records a session start, completion or abort.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records an evaluated submission.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QuerySessionSummaries returns sessions newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// CompletedLevels returns how many times each level was completed.
	CompletedLevels(ctx context.Context) (map[int]int, error)

	// AnswerStats aggregates answers, optionally for one level.
	AnswerStats(ctx context.Context, opts QueryOpts) (AnswerStats, error)

	// Reset deletes all recorded events.
	Reset(ctx context.Context) error
}
