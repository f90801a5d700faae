package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/unclebandit/creatorhub-backend/internal/model"
)

// NoticeSender delivers one notice to its final destination.
type NoticeSender interface {
	Notify(ctx context.Context, n model.Notice) error
}

// Worker drains notices from a channel and hands them to the sender
type Worker struct {
	Sender     NoticeSender
	JobChan    <-chan model.Notice
	MaxRetries int
	Log        *zap.Logger
}

// Constructor
func NewWorker(sender NoticeSender, jobChan <-chan model.Notice, log *zap.Logger) *Worker {
	return &Worker{
		Sender:     sender,
		JobChan:    jobChan,
		MaxRetries: 3,
		Log:        log,
	}
}

// Start processes notices until the channel closes or ctx ends.
// It returns how many notices were delivered.
func (w *Worker) Start(ctx context.Context) int {
	delivered := 0
	for {
		select {
		case <-ctx.Done():
			return delivered
		case n, ok := <-w.JobChan:
			if !ok {
				return delivered
			}
			if w.deliver(ctx, n) {
				delivered++
			}
		}
	}
}

func (w *Worker) deliver(ctx context.Context, n model.Notice) bool {
	for n.RetryCount <= w.MaxRetries {
		err := w.Sender.Notify(ctx, n)
		if err == nil {
			return true
		}
		n.RetryCount++
		w.Log.Warn("notice delivery failed", zap.String("notice_id", n.ID), zap.Int("attempt", n.RetryCount), zap.Error(err))
	}
	w.Log.Error("notice dropped", zap.String("notice_id", n.ID), zap.String("owner_id", n.OwnerID))
	return false
}
