//cmd/seeder/main.go
package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/unclebandit/creatorhub-backend/internal/config"
	"github.com/unclebandit/creatorhub-backend/internal/db"
	"github.com/unclebandit/creatorhub-backend/internal/logger"
)

var seedFiles = []string{
	"seed/drafts.sql",
	"seed/campaigns.sql",
}

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

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg, logr)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer conn.Close()

	if err := db.Migrate(conn.DB); err != nil {
		logr.Fatal("failed to migrate", zap.Error(err))
	}

	for _, file := range seedFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			logr.Fatal("failed to read seed file", zap.String("file", file), zap.Error(err))
		}

		if _, err := conn.ExecContext(ctx, string(content)); err != nil {
			logr.Fatal("failed to execute seed file", zap.String("file", file), zap.Error(err))
		}
		logr.Info("Seeded", zap.String("file", file))
	}

	logr.Info("Database seeding completed successfully!")
}
