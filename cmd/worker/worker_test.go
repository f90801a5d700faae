package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/creatorhub-backend/internal/model"
	"github.com/unclebandit/creatorhub-backend/internal/queue"
	"github.com/unclebandit/creatorhub-backend/internal/service"
)

// MockSender records notices and fails the first failures calls.
type MockSender struct {
	mu       sync.Mutex
	failures int
	calls    int
	sent     []model.Notice
}

func (m *MockSender) Notify(_ context.Context, n model.Notice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.calls <= m.failures {
		return errors.New("mock send failed")
	}
	m.sent = append(m.sent, n)
	return nil
}

func TestWorker(t *testing.T) {
	sender := &MockSender{}
	jobChan := make(chan model.Notice, 1)
	jobChan <- model.Notice{ID: "n-1", OwnerID: "brand-1", Title: "Step 1 Complete"}
	close(jobChan)

	worker := service.NewWorker(sender, jobChan, zap.NewNop())

	assert.Equal(t, 1, worker.Start(context.Background()))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "n-1", sender.sent[0].ID)
}

func TestWorkerRetries(t *testing.T) {
	sender := &MockSender{failures: 2}
	jobChan := make(chan model.Notice, 1)
	jobChan <- model.Notice{ID: "n-1"}
	close(jobChan)

	worker := service.NewWorker(sender, jobChan, zap.NewNop())

	assert.Equal(t, 1, worker.Start(context.Background()))
	assert.Equal(t, 3, sender.calls)
}

func TestWorkerDropsAfterMaxRetries(t *testing.T) {
	sender := &MockSender{failures: 100}
	jobChan := make(chan model.Notice, 1)
	jobChan <- model.Notice{ID: "n-1"}
	close(jobChan)

	worker := service.NewWorker(sender, jobChan, zap.NewNop())
	worker.MaxRetries = 2

	assert.Equal(t, 0, worker.Start(context.Background()))
	assert.Equal(t, 3, sender.calls)
}

func TestWorkerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	worker := service.NewWorker(&MockSender{}, make(chan model.Notice), zap.NewNop())

	done := make(chan int)
	go func() { done <- worker.Start(ctx) }()
	cancel()

	select {
	case n := <-done:
		assert.Equal(t, 0, n)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestBridgeFeedsWorker(t *testing.T) {
	q := queue.NewInMemoryQueue(zap.NewNop())
	jobs := make(chan model.Notice, 4)
	require.NoError(t, bridge(context.Background(), q, queue.NoticeTopic, jobs, zap.NewNop()))

	require.NoError(t, q.Publish(queue.NoticeTopic, model.Notice{ID: "n-1", OwnerID: "brand-1"}))
	q.Wait()

	select {
	case n := <-jobs:
		assert.Equal(t, "n-1", n.ID)
	default:
		t.Fatal("notice not bridged")
	}
}
