package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/unclebandit/creatorhub-backend/internal/errors"
	"github.com/unclebandit/creatorhub-backend/internal/metrics"
	"github.com/unclebandit/creatorhub-backend/internal/model"
)

// DefaultSaveTimeout bounds how long step completion waits for the autosave.
const DefaultSaveTimeout = 10 * time.Second

// Notifier delivers user-facing notices.
type Notifier interface {
	Notify(ctx context.Context, n model.Notice) error
}

// SaveFunc persists the current draft.
type SaveFunc func(ctx context.Context) error

// Outcome describes how a step completion's autosave settled. It never blocks navigation.
type Outcome struct {
	Step     int           `json:"step"`
	Saved    bool          `json:"saved"`
	TimedOut bool          `json:"timed_out"`
	Err      error         `json:"-"`
	SavedAt  *time.Time    `json:"saved_at,omitempty"`
	Notice   model.Notice  `json:"notice"`
	Duration time.Duration `json:"-"`
}

// Coordinator runs the best-effort autosave on step completion.
type Coordinator struct {
	notifier Notifier
	timeout  time.Duration
	log      *zap.Logger
	now      func() time.Time
}

func NewCoordinator(notifier Notifier, timeout time.Duration, log *zap.Logger) *Coordinator {
	if timeout <= 0 {
		timeout = DefaultSaveTimeout
	}
	return &Coordinator{
		notifier: notifier,
		timeout:  timeout,
		log:      log,
		now:      time.Now,
	}
}

// CompleteStep races save against the timeout. On success onSaved receives the
// confirmation time and a success notice is emitted; on error or timeout a
// warning is emitted instead. The caller advances the step either way.
//
// A save that loses the race keeps running detached from ctx; its result is discarded.
func (c *Coordinator) CompleteStep(ctx context.Context, ownerID string, step int, save SaveFunc, onSaved func(time.Time)) Outcome {
	start := c.now()
	result := make(chan error, 1)

	go func(saveCtx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				result <- fmt.Errorf("save panicked: %v", r)
			}
		}()
		result <- save(saveCtx)
	}(context.WithoutCancel(ctx))

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	var err error
	select {
	case err = <-result:
	case <-timer.C:
		err = appErrors.ErrSaveTimeout
	case <-ctx.Done():
		err = ctx.Err()
	}

	out := Outcome{Step: step, Err: err, Duration: c.now().Sub(start)}
	metrics.StepSaveDuration.Observe(out.Duration.Seconds())

	log := c.log.With(zap.String("owner_id", ownerID), zap.Int("step", step))
	if err == nil {
		savedAt := c.now()
		out.Saved = true
		out.SavedAt = &savedAt
		if onSaved != nil {
			onSaved(savedAt)
		}
		out.Notice = savedNotice(ownerID, step, savedAt)
		metrics.StepCompletionsTotal.WithLabelValues(strconv.Itoa(step), "saved").Inc()
		log.Debug("step saved", zap.Duration("duration", out.Duration))
	} else {
		out.TimedOut = errors.Is(err, appErrors.ErrSaveTimeout)
		out.Notice = failedNotice(ownerID, step, c.now())
		outcome := "failed"
		if out.TimedOut {
			outcome = "timeout"
		}
		metrics.StepCompletionsTotal.WithLabelValues(strconv.Itoa(step), outcome).Inc()
		log.Warn("step autosave failed, continuing", zap.Error(err), zap.Bool("timed_out", out.TimedOut))
	}

	if c.notifier != nil {
		if nerr := c.notifier.Notify(context.WithoutCancel(ctx), out.Notice); nerr != nil {
			log.Warn("failed to publish notice", zap.Error(nerr))
		}
	}
	return out
}
