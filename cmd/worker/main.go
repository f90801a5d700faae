package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/unclebandit/creatorhub-backend/internal/config"
	"github.com/unclebandit/creatorhub-backend/internal/logger"
	"github.com/unclebandit/creatorhub-backend/internal/model"
	"github.com/unclebandit/creatorhub-backend/internal/notify"
	"github.com/unclebandit/creatorhub-backend/internal/queue"
	"github.com/unclebandit/creatorhub-backend/internal/service"
)

func main() {
	cfg, _, err := config.Load()
	if err != nil {
		log.Fatalf("❌ invalid configuration: %v", err)
	}
	logr, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("❌ build logger: %v", err)
	}
	defer logr.Sync()

	if cfg.AMQPURL == "" {
		logr.Fatal("AMQP_URL is required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	q, err := queue.NewAMQPQueue(cfg.AMQPURL, logr)
	if err != nil {
		logr.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
	}
	defer q.Close()

	jobs := make(chan model.Notice, 64)
	if err := bridge(ctx, q, cfg.NoticeQueue, jobs, logr); err != nil {
		logr.Fatal("Failed to register consumer", zap.Error(err))
	}

	worker := service.NewWorker(&notify.LogNotifier{Log: logr}, jobs, logr)

	logr.Info("Worker running, waiting for notices...", zap.String("queue", cfg.NoticeQueue))
	delivered := worker.Start(ctx)
	logr.Info("worker stopped", zap.Int("delivered", delivered))
}

// bridge feeds notices consumed from topic into jobs until ctx ends.
func bridge(ctx context.Context, q queue.Queue, topic string, jobs chan<- model.Notice, log *zap.Logger) error {
	return queue.StartNoticeSubscriber(q, topic, func(n model.Notice) error {
		select {
		case jobs <- n:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("worker stopping: %w", ctx.Err())
		}
	}, log)
}
