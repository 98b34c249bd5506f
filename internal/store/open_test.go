package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/stash/internal/config"
	"github.com/MrSnakeDoc/stash/internal/logger"
	"github.com/MrSnakeDoc/stash/internal/store/file"
	"github.com/MrSnakeDoc/stash/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/stash/internal/store/redis"
	"github.com/MrSnakeDoc/stash/internal/store/sqlite"
)

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.Config
		check   func(t *testing.T, p Provider)
		wantErr bool
	}{
		{
			name:  "memory",
			cfg:   config.Config{Backend: config.BackendMemory},
			check: func(t *testing.T, p Provider) { assert.IsType(t, &memory.Store{}, p) },
		},
		{
			name:  "file",
			cfg:   config.Config{Backend: config.BackendFile, DataDir: filepath.Join(dir, "data")},
			check: func(t *testing.T, p Provider) { assert.IsType(t, &file.Store{}, p) },
		},
		{
			name:  "sqlite",
			cfg:   config.Config{Backend: config.BackendSQLite, SQLitePath: filepath.Join(dir, "stash.db")},
			check: func(t *testing.T, p Provider) { assert.IsType(t, &sqlite.Store{}, p) },
		},
		{
			name: "redis",
			cfg: config.Config{
				Backend:             config.BackendRedis,
				RedisAddr:           mr.Addr(),
				RedisConnectTimeout: time.Second,
				RedisRetryInterval:  10 * time.Millisecond,
				RedisMaxWait:        50 * time.Millisecond,
				RedisPingTimeout:    200 * time.Millisecond,
			},
			check: func(t *testing.T, p Provider) { assert.IsType(t, &redisstore.Store{}, p) },
		},
		{
			name:    "unknown",
			cfg:     config.Config{Backend: "etcd"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			p, err := Open(ctx, &tt.cfg, logger.NewNop())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { _ = p.Close() })
			tt.check(t, p)

			require.NoError(t, p.Set(ctx, "websites", "[]"))
			v, ok, err := p.Get(ctx, "websites")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "[]", v)
		})
	}
}
