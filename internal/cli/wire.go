package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"human-or-ai/internal/app"
	"human-or-ai/internal/config"
	"human-or-ai/internal/content"
	"human-or-ai/internal/domain"
	"human-or-ai/internal/infra/imagedir"
	"human-or-ai/internal/infra/memory"
	pgloader "human-or-ai/internal/infra/postgres"
	redisbank "human-or-ai/internal/infra/redis"
	"human-or-ai/internal/infra/sqlite"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
)

// hostDeps is everything a host needs, plus the cleanup of opened resources.
type hostDeps struct {
	service  *app.QuizService
	defaults app.GameConfig
	closers  []func()
}

func (r *hostDeps) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

func buildRuntime(ctx context.Context, cfg config.Config) (*hostDeps, error) {
	rt := &hostDeps{}

	defaults, err := defaultGameConfig(cfg)
	if err != nil {
		return nil, err
	}
	rt.defaults = defaults

	loaders := memory.ChainLoader{}
	switch cfg.Content.Source {
	case config.SourcePostgres:
		if cfg.Postgres.URL == "" {
			return nil, fmt.Errorf("content source postgres needs postgres.url")
		}
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return nil, err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, pool.Close)
		loaders = append(loaders, pgloader.NewBankLoader(pool))
	case config.SourceSQLite:
		if cfg.SQLite.Path == "" {
			return nil, fmt.Errorf("content source sqlite needs sqlite.path")
		}
		store, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, func() { _ = store.Close() })
		loaders = append(loaders, store)
	case config.SourceImages, config.SourceBuiltin, "":
	default:
		rt.Close()
		return nil, fmt.Errorf("unknown content source %q", cfg.Content.Source)
	}
	loaders = append(loaders,
		imagedir.NewLoader(cfg.Content.Images.Bank, cfg.Content.Images.AIDir, cfg.Content.Images.HumanDir),
		memory.NewStaticBankLoader(content.DefaultBank()),
	)

	contentTTL := config.TTLDuration(cfg.Content.TTL, 10*time.Minute)
	var banks app.BankRepository
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rt.closers = append(rt.closers, func() { _ = client.Close() })
		banks = redisbank.NewBankRepository(client, loaders, config.TTLDuration(cfg.Redis.TTL, contentTTL))
	} else {
		banks = memory.NewBankRepository(loaders, contentTTL)
	}

	rt.service = app.NewQuizService(banks,
		app.NewLeaderboard(cfg.Game.LeaderboardSize),
		app.WithAdvanceDelay(config.TTLDuration(cfg.Game.AdvanceDelay, app.DefaultAdvanceDelay)),
	)
	return rt, nil
}

// defaultGameConfig turns the game section into the settings a host starts with.
func defaultGameConfig(cfg config.Config) (app.GameConfig, error) {
	mode, err := app.ParseMode(cfg.Game.Mode)
	if err != nil {
		return app.GameConfig{}, err
	}
	difficulty, err := domain.ParseDifficulty(cfg.Game.Difficulty)
	if err != nil {
		return app.GameConfig{}, err
	}
	count, err := app.ParseCount(strconv.Itoa(cfg.Game.Count))
	if err != nil {
		return app.GameConfig{}, fmt.Errorf("game.count %d: %w", cfg.Game.Count, err)
	}

	bankID := cfg.Content.Bank
	if cfg.Content.Source == config.SourceImages {
		bankID = cfg.Content.Images.Bank
	}
	return app.GameConfig{
		BankID: bankID,
		Settings: app.Settings{
			Mode:       mode,
			Difficulty: difficulty,
			Count:      count,
		},
	}, nil
}
