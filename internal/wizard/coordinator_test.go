package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
	"github.com/unclebandit/creatorhub-backend/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []model.Notice
	err     error
}

func (r *recordingNotifier) Notify(_ context.Context, n model.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
	return r.err
}

func (r *recordingNotifier) all() []model.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Notice{}, r.notices...)
}

func TestCompleteStepSuccess(t *testing.T) {
	notifier := &recordingNotifier{}
	coord := NewCoordinator(notifier, time.Second, zap.NewNop())

	session := NewSession("brand-1")
	session.Update(model.FormData{BasicsFields: model.BasicsFields{Name: str("Summer Launch")}})
	session.GoTo(2)

	// step data merged by the caller before completion
	session.Update(model.FormData{BasicsFields: model.BasicsFields{Description: str("...")}})

	called := time.Now()
	var savedAt time.Time
	out := coord.CompleteStep(context.Background(), "brand-1", 2, func(ctx context.Context) error {
		time.Sleep(20 * time.Millisecond)
		return nil
	}, func(at time.Time) { savedAt = at })
	session.Next()

	require.True(t, out.Saved)
	assert.NoError(t, out.Err)
	assert.False(t, savedAt.Before(called))
	assert.Equal(t, savedAt, *out.SavedAt)

	form := session.Form()
	assert.Equal(t, "Summer Launch", *form.Name)
	assert.Equal(t, "...", *form.Description)
	assert.Equal(t, 3, session.CurrentStep())

	notices := notifier.all()
	require.Len(t, notices, 1)
	assert.Equal(t, model.NoticeSuccess, notices[0].Kind)
	assert.Equal(t, "Step 2 Complete — Talent Matchmaking saved successfully", notices[0].Text())
}

func TestCompleteStepNeverSettlingSaveTimesOut(t *testing.T) {
	notifier := &recordingNotifier{}
	timeout := 50 * time.Millisecond
	coord := NewCoordinator(notifier, timeout, zap.NewNop())

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	saved := false
	start := time.Now()
	out := coord.CompleteStep(context.Background(), "brand-1", 1, func(ctx context.Context) error {
		<-release
		return nil
	}, func(time.Time) { saved = true })
	elapsed := time.Since(start)

	assert.False(t, out.Saved)
	assert.True(t, out.TimedOut)
	assert.ErrorIs(t, out.Err, appErrors.ErrSaveTimeout)
	assert.False(t, saved)
	assert.Less(t, elapsed, timeout+time.Second)

	notices := notifier.all()
	require.Len(t, notices, 1)
	assert.Equal(t, model.NoticeWarning, notices[0].Kind)
}

func TestCompleteStepRejectedSaveStillAdvances(t *testing.T) {
	notifier := &recordingNotifier{}
	coord := NewCoordinator(notifier, time.Second, zap.NewNop())
	session := NewSession("brand-1")
	session.GoTo(3)

	out := coord.CompleteStep(context.Background(), "brand-1", 3, func(ctx context.Context) error {
		return errors.New("network down")
	}, session.MarkSaved)
	session.Next()

	assert.False(t, out.Saved)
	assert.False(t, out.TimedOut)
	assert.EqualError(t, out.Err, "network down")
	assert.Nil(t, session.LastSaveTime())
	assert.Equal(t, 4, session.CurrentStep())
	assert.Equal(t, model.NoticeWarning, notifier.all()[0].Kind)
}

func TestCompleteStepRecoversPanickingSave(t *testing.T) {
	coord := NewCoordinator(&recordingNotifier{}, time.Second, zap.NewNop())

	out := coord.CompleteStep(context.Background(), "brand-1", 1, func(ctx context.Context) error {
		panic("boom")
	}, nil)

	assert.False(t, out.Saved)
	assert.Error(t, out.Err)
}

func TestCompleteStepDetachesSaveFromCallerCancel(t *testing.T) {
	coord := NewCoordinator(&recordingNotifier{}, time.Second, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	saveCtxErr := make(chan error, 1)
	out := coord.CompleteStep(ctx, "brand-1", 1, func(saveCtx context.Context) error {
		cancel()
		time.Sleep(10 * time.Millisecond)
		saveCtxErr <- saveCtx.Err()
		return nil
	}, nil)

	// Either the save or the cancelled caller may win; the save itself is never cancelled.
	assert.NoError(t, <-saveCtxErr)
	if !out.Saved {
		assert.ErrorIs(t, out.Err, context.Canceled)
	}
}

func TestCompleteStepNotifierFailureIsNotFatal(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("queue down")}
	coord := NewCoordinator(notifier, time.Second, zap.NewNop())

	out := coord.CompleteStep(context.Background(), "brand-1", 1, func(ctx context.Context) error { return nil }, nil)
	assert.True(t, out.Saved)
}

func TestNewCoordinatorDefaultsTimeout(t *testing.T) {
	coord := NewCoordinator(nil, 0, zap.NewNop())
	assert.Equal(t, DefaultSaveTimeout, coord.timeout)
}

func TestRenderTemplate(t *testing.T) {
	got := RenderTemplate("Step {step} — {label}", map[string]string{"step": "4", "label": "Budget & Payment"})
	assert.Equal(t, "Step 4 — Budget & Payment", got)
}
