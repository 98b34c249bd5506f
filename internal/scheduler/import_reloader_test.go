package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/MrSnakeDoc/stash/internal/bookmarks"
	"github.com/MrSnakeDoc/stash/internal/logger"
	"github.com/MrSnakeDoc/stash/internal/notify"
	"github.com/MrSnakeDoc/stash/internal/store/memory"
)

func writeBookmarks(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "bookmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportReloader_Reload(t *testing.T) {
	ctx := context.Background()
	log := logger.New("error", false)
	store, err := bookmarks.New(ctx, memory.New())
	require.NoError(t, err)

	path := writeBookmarks(t, t.TempDir(), `---
- Developer:
    - Github:
        - abbr: GH
          href: https://github.com/
`)

	var rec notify.Recorder
	r := NewImportReloader(path, store, &rec, log, time.Hour, nil)

	res, err := r.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, store.Count())

	res, err = r.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Added)
	assert.Equal(t, 1, res.Skipped)

	seen := rec.All()
	require.Len(t, seen, 2)
	assert.Equal(t, notify.LevelSuccess, seen[0].Level)
	assert.Equal(t, notify.LevelWarning, seen[1].Level)
}

func TestImportReloader_ManualTrigger(t *testing.T) {
	ctx := context.Background()
	log := logger.New("error", false)
	store, err := bookmarks.New(ctx, memory.New())
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "bookmarks.yaml")

	trigger := make(chan struct{}, 1)
	r := NewImportReloader(path, store, nil, log, time.Hour, trigger)

	// the file does not exist yet; Start must still run
	r.Start(ctx)
	defer r.Stop()
	assert.Equal(t, 0, store.Count())

	writeBookmarks(t, dir, `---
- Social:
    - Reddit:
        - abbr: RE
          href: https://reddit.com/
`)
	trigger <- struct{}{}

	assert.Eventually(t, func() bool { return store.Count() == 1 },
		2*time.Second, 10*time.Millisecond)
}

func TestImportReloader_StopIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, err := bookmarks.New(ctx, memory.New())
	require.NoError(t, err)

	r := NewImportReloader("/nonexistent.yaml", store, nil, logger.NewNop(), time.Hour, nil)
	r.Start(ctx)
	r.Stop()
	r.Stop()
}

func TestImportReloader_LogsFile(t *testing.T) {
	ctx := context.Background()
	store, err := bookmarks.New(ctx, memory.New())
	require.NoError(t, err)

	path := writeBookmarks(t, t.TempDir(), `---
- Developer:
    - Github:
        - abbr: GH
          href: https://github.com/
`)

	core, logs := observer.New(zapcore.InfoLevel)
	r := NewImportReloader(path, store, nil, logger.FromZap(zap.New(core)), time.Hour, nil)

	_, err = r.Reload(ctx)
	require.NoError(t, err)

	imported := logs.FilterMessage("bookmarks imported").All()
	require.Len(t, imported, 1)
	assert.Equal(t, path, imported[0].ContextMap()["file"])
}
