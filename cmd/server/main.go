// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/unclebandit/creatorhub-backend/internal/app"
	"github.com/unclebandit/creatorhub-backend/internal/config"
	"github.com/unclebandit/creatorhub-backend/internal/controller"
	"github.com/unclebandit/creatorhub-backend/internal/handler"
	"github.com/unclebandit/creatorhub-backend/internal/logger"
	"github.com/unclebandit/creatorhub-backend/internal/notify"
	"github.com/unclebandit/creatorhub-backend/internal/queue"
	"github.com/unclebandit/creatorhub-backend/internal/service"
	"github.com/unclebandit/creatorhub-backend/internal/wizard"
)

func main() {
	cfg, dotenv, err := config.Load()
	if err != nil {
		log.Fatalf("❌ invalid configuration: %v", err)
	}

	logr, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("❌ build logger: %v", err)
	}
	defer logr.Sync()

	if !dotenv {
		logr.Info("⚠️ No .env file found, relying on OS environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	stores, err := app.OpenStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stores.Close()

	inbox := notify.NewInbox(cfg.NoticeInboxSize)
	notifier, closeQueue, err := openNotifier(cfg, inbox, log)
	if err != nil {
		return err
	}
	defer closeQueue()

	drafts := service.NewDraftStore(stores.Drafts, stores.Cache, log)
	coordinator := wizard.NewCoordinator(notifier, cfg.WizardSaveTimeout, log)
	wizardService := service.NewWizardService(drafts, coordinator, log)
	campaignService := &service.CampaignService{
		CampaignRepo: stores.Campaigns,
		Wizard:       wizardService,
		Log:          log,
	}

	router := handler.NewRouter(handler.Controllers{
		Drafts:    &controller.DraftController{Drafts: drafts},
		Wizard:    &controller.WizardController{Wizard: wizardService, Campaigns: campaignService, Inbox: inbox},
		Campaigns: &controller.CampaignController{CampaignService: campaignService},
	}, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("🚀 Server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openNotifier routes wizard notices to the inbox. With AMQP_URL set they are
// also published to RabbitMQ for the worker; otherwise they travel through the
// in-process queue.
func openNotifier(cfg *config.Config, inbox *notify.Inbox, log *zap.Logger) (wizard.Notifier, func(), error) {
	if cfg.AMQPURL != "" {
		q, err := queue.NewAMQPQueue(cfg.AMQPURL, log)
		if err != nil {
			return nil, nil, err
		}
		log.Info("✅ connected to RabbitMQ", zap.String("queue", cfg.NoticeQueue))
		return notify.Fanout{
			&notify.InboxNotifier{Inbox: inbox},
			&notify.QueueNotifier{Queue: q, Topic: cfg.NoticeQueue},
		}, func() { q.Close() }, nil
	}

	q := queue.NewInMemoryQueue(log).WithRetry(cfg.NoticeMaxRetries, cfg.NoticeRetryBackoff)
	if err := queue.StartNoticeSubscriber(q, cfg.NoticeQueue, inbox.Deliver, log); err != nil {
		return nil, nil, err
	}
	return &notify.QueueNotifier{Queue: q, Topic: cfg.NoticeQueue}, q.Wait, nil
}
