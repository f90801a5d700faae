package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/creatorhub-backend/internal/model"
	"github.com/unclebandit/creatorhub-backend/internal/queue"
)

func TestInboxKeepsLatest(t *testing.T) {
	inbox := NewInbox(2)
	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, inbox.Deliver(model.Notice{OwnerID: "brand-1", Title: title}))
	}
	require.NoError(t, inbox.Deliver(model.Notice{OwnerID: "brand-2", Title: "other"}))

	got := inbox.Drain("brand-1")
	require.Len(t, got, 2)
	assert.Equal(t, "two", got[0].Title)
	assert.Equal(t, "three", got[1].Title)

	assert.Empty(t, inbox.Drain("brand-1"))
	assert.Len(t, inbox.Drain("brand-2"), 1)
}

func TestQueueNotifierFeedsInbox(t *testing.T) {
	q := queue.NewInMemoryQueue(zap.NewNop())
	inbox := NewInbox(10)
	require.NoError(t, queue.StartNoticeSubscriber(q, queue.NoticeTopic, inbox.Deliver, zap.NewNop()))

	n := &QueueNotifier{Queue: q, Topic: queue.NoticeTopic}
	require.NoError(t, n.Notify(context.Background(), model.Notice{OwnerID: "brand-1", Kind: model.NoticeSuccess, Title: "Step 1 Complete"}))
	q.Wait()

	got := inbox.Drain("brand-1")
	require.Len(t, got, 1)
	assert.Equal(t, "Step 1 Complete", got[0].Title)
}

func TestQueueNotifierWithoutSubscriber(t *testing.T) {
	n := &QueueNotifier{Queue: queue.NewInMemoryQueue(zap.NewNop()), Topic: queue.NoticeTopic}
	assert.Error(t, n.Notify(context.Background(), model.Notice{}))
}

func TestLogNotifier(t *testing.T) {
	n := &LogNotifier{Log: zap.NewNop()}
	assert.NoError(t, n.Notify(context.Background(), model.Notice{Title: "x"}))
}

type failingNotifier struct{}

func (failingNotifier) Notify(context.Context, model.Notice) error { return errors.New("broker down") }

func TestFanoutDeliversToAll(t *testing.T) {
	inbox := NewInbox(10)
	f := Fanout{failingNotifier{}, &InboxNotifier{Inbox: inbox}}

	err := f.Notify(context.Background(), model.Notice{OwnerID: "brand-1", Title: "x"})
	assert.EqualError(t, err, "broker down")
	assert.Len(t, inbox.Drain("brand-1"), 1)
}
