// Package progress persists level sessions by observing their notifications.
package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/newton/internal/session"
	"github.com/abhisek/newton/internal/store"
)

// Recorder turns session notifications into store events. Write failures
// are logged and otherwise ignored: a lost history row must never interrupt
// a game in progress.
type Recorder struct {
	repo    store.EventRepo
	logger  *slog.Logger
	now     func() time.Time
	started map[string]time.Time
}

// NewRecorder creates a Recorder. A nil repo makes every call a no-op.
func NewRecorder(repo store.EventRepo, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{
		repo:    repo,
		logger:  logger,
		now:     time.Now,
		started: make(map[string]time.Time),
	}
}

// Start records the beginning of a session.
func (r *Recorder) Start(ctx context.Context, st session.State) {
	r.started[st.ID] = r.now()
	r.logger.Info("session started", "session_id", st.ID, "level", st.Config.Level)
	if r.repo == nil {
		return
	}
	err := r.repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: st.ID,
		LevelID:   st.Config.Level,
		Action:    store.ActionStart,
		Target:    st.Score.Target,
	})
	if err != nil {
		r.logger.Error("record session start", "session_id", st.ID, "error", err)
	}
}

// Observe records the notifications produced by the step that led to st.
func (r *Recorder) Observe(ctx context.Context, st session.State, notes []session.Notification) {
	for _, n := range notes {
		switch n := n.(type) {
		case session.AnswerCorrect:
			r.answer(ctx, st, n.Question, n.Submitted, true)
		case session.AnswerIncorrect:
			r.answer(ctx, st, n.Question, n.Submitted, false)
		case session.LevelCompleted:
			r.finish(ctx, st, store.ActionComplete)
		case session.SessionAborted:
			r.finish(ctx, st, store.ActionAbort)
		}
	}
}

func (r *Recorder) answer(ctx context.Context, st session.State, question, submitted string, correct bool) {
	r.logger.Debug("answer evaluated",
		"session_id", st.ID, "question", question, "submitted", submitted, "correct", correct)
	if r.repo == nil {
		return
	}
	err := r.repo.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID: st.ID,
		LevelID:   st.Config.Level,
		Question:  question,
		Expected:  st.Problem.Answer,
		Submitted: submitted,
		Correct:   correct,
	})
	if err != nil {
		r.logger.Error("record answer", "session_id", st.ID, "error", err)
	}
}

func (r *Recorder) finish(ctx context.Context, st session.State, action string) {
	var elapsed time.Duration
	if t, ok := r.started[st.ID]; ok {
		elapsed = r.now().Sub(t)
		delete(r.started, st.ID)
	}
	r.logger.Info("session finished",
		"session_id", st.ID, "level", st.Config.Level, "outcome", action,
		"score", st.Score.String(), "attempts", st.Attempts, "duration", elapsed)
	if r.repo == nil {
		return
	}
	err := r.repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: st.ID,
		LevelID:   st.Config.Level,
		Action:    action,
		Score:     st.Score.Correct,
		Target:    st.Score.Target,
		Attempts:  st.Attempts,
		Duration:  elapsed,
	})
	if err != nil {
		r.logger.Error("record session end", "session_id", st.ID, "outcome", action, "error", err)
	}
}
