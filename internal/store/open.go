package store

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/stash/internal/config"
	"github.com/MrSnakeDoc/stash/internal/logger"
	"github.com/MrSnakeDoc/stash/internal/redis"
	"github.com/MrSnakeDoc/stash/internal/store/file"
	"github.com/MrSnakeDoc/stash/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/stash/internal/store/redis"
	"github.com/MrSnakeDoc/stash/internal/store/sqlite"
)

var (
	_ Provider = (*file.Store)(nil)
	_ Provider = (*memory.Store)(nil)
	_ Provider = (*sqlite.Store)(nil)
	_ Provider = (*redisstore.Store)(nil)

	_ Pinger = (*sqlite.Store)(nil)
	_ Pinger = (*redisstore.Store)(nil)
)

// Pinger is implemented by providers backed by a remote or shared resource.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Open builds the provider selected by cfg.Backend.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (Provider, error) {
	log = log.With(logger.String("backend", cfg.Backend))

	switch cfg.Backend {
	case config.BackendMemory:
		log.Warn("memory backend selected, bookmarks will not survive a restart")
		return memory.New(), nil

	case config.BackendFile:
		p, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		log.Info("storage ready", logger.String("dir", p.Dir()))
		return p, nil

	case config.BackendSQLite:
		p, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info("storage ready", logger.String("path", cfg.SQLitePath))
		return p, nil

	case config.BackendRedis:
		client, err := redis.Connect(ctx, redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, log)
		if err != nil {
			return nil, err
		}
		return redisstore.NewStore(client), nil

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
