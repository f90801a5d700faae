// Package notify delivers wizard notices (the toasts shown after a step
// completes) through the notice queue into per-owner inboxes.
package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/unclebandit/creatorhub-backend/internal/metrics"
	"github.com/unclebandit/creatorhub-backend/internal/model"
	"github.com/unclebandit/creatorhub-backend/internal/queue"
)

// QueueNotifier publishes notices on a queue topic.
type QueueNotifier struct {
	Queue queue.Queue
	Topic string
}

func (n *QueueNotifier) Notify(_ context.Context, notice model.Notice) error {
	if err := n.Queue.Publish(n.Topic, notice); err != nil {
		metrics.NoticesPublishedTotal.WithLabelValues(notice.Kind, "error").Inc()
		return err
	}
	metrics.NoticesPublishedTotal.WithLabelValues(notice.Kind, "ok").Inc()
	return nil
}

// LogNotifier writes notices to the log. Used by the worker as the final sink.
type LogNotifier struct {
	Log *zap.Logger
}

func (n *LogNotifier) Notify(_ context.Context, notice model.Notice) error {
	n.Log.Info("📣 notice",
		zap.String("owner_id", notice.OwnerID),
		zap.String("kind", notice.Kind),
		zap.Int("step", notice.Step),
		zap.String("text", notice.Text()),
	)
	return nil
}

// InboxNotifier delivers straight into an inbox, skipping the queue.
type InboxNotifier struct {
	Inbox *Inbox
}

func (n *InboxNotifier) Notify(_ context.Context, notice model.Notice) error {
	return n.Inbox.Deliver(notice)
}

// Notifier is satisfied by every notifier in this package.
type Notifier interface {
	Notify(ctx context.Context, notice model.Notice) error
}

// Fanout hands every notice to each notifier in order and returns the first error.
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, notice model.Notice) error {
	var first error
	for _, n := range f {
		if err := n.Notify(ctx, notice); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Inbox keeps the latest notices per owner until the client drains them.
type Inbox struct {
	mu      sync.Mutex
	size    int
	notices map[string][]model.Notice
}

func NewInbox(size int) *Inbox {
	if size < 1 {
		size = 1
	}
	return &Inbox{size: size, notices: make(map[string][]model.Notice)}
}

// Deliver appends a notice, dropping the oldest once the owner's inbox is full.
func (b *Inbox) Deliver(notice model.Notice) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := append(b.notices[notice.OwnerID], notice)
	if len(list) > b.size {
		list = list[len(list)-b.size:]
	}
	b.notices[notice.OwnerID] = list
	return nil
}

// Drain returns and removes the owner's pending notices, oldest first.
func (b *Inbox) Drain(ownerID string) []model.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.notices[ownerID]
	delete(b.notices, ownerID)
	if list == nil {
		return []model.Notice{}
	}
	return list
}
