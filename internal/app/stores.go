// Package app wires configured storage backends for the binaries.
package app

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/unclebandit/creatorhub-backend/internal/cache"
	"github.com/unclebandit/creatorhub-backend/internal/config"
	"github.com/unclebandit/creatorhub-backend/internal/db"
	"github.com/unclebandit/creatorhub-backend/internal/repository"
)

// Stores holds the repositories and the draft cache selected by config.
type Stores struct {
	DB        *sqlx.DB // nil with DB_DRIVER=memory
	Drafts    repository.DraftRepositoryInterface
	Campaigns repository.CampaignRepositoryInterface
	Cache     cache.DraftCache

	closers []func() error
}

// OpenStores connects to postgres (migrating when DB_AUTO_MIGRATE is set) or
// falls back to in-memory repositories, and picks redis or the local cache.
func OpenStores(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Stores, error) {
	s := &Stores{}

	switch cfg.DBDriver {
	case "memory":
		log.Warn("⚠️ using in-memory repositories, drafts are lost on restart")
		s.Drafts = repository.NewMemoryDraftRepository()
		s.Campaigns = repository.NewMemoryCampaignRepository()
	default:
		conn, err := db.Open(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, conn.Close)
		if cfg.DBAutoMigrate {
			if err := db.Migrate(conn.DB); err != nil {
				s.Close()
				return nil, err
			}
			log.Info("✅ migrations applied")
		}
		s.DB = conn
		s.Drafts = &repository.DraftRepository{DB: conn}
		s.Campaigns = &repository.CampaignRepository{DB: conn}
	}

	if cfg.RedisAddr == "" {
		s.Cache = cache.NewMemoryDraftCache(cfg.DraftCacheTTL)
		return s, nil
	}
	rdb, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.closers = append(s.closers, rdb.Close)
	s.Cache = cache.NewRedisDraftCache(rdb, cfg.DraftCacheTTL)
	log.Info("✅ connected to redis", zap.String("addr", cfg.RedisAddr))
	return s, nil
}

// Close releases connections in reverse order of opening.
func (s *Stores) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}
