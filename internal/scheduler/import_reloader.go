package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrSnakeDoc/stash/internal/logger"
	"github.com/MrSnakeDoc/stash/internal/notify"
	"github.com/MrSnakeDoc/stash/internal/sources/homepage"
)

// ImportReloader periodically imports a Homepage bookmarks.yaml into the
// bookmark store. Entries already saved are left alone, so a run only ever
// adds what is new in the file.
type ImportReloader struct {
	loader        *homepage.Loader
	store         homepage.Adder
	notifier      notify.Sink
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once
	started       atomic.Bool
	manualTrigger chan struct{}
	done          chan struct{}
}

// NewImportReloader creates an import reloader. manualTrigger may be nil when
// imports are only driven by the interval.
func NewImportReloader(
	bookmarkFile string,
	store homepage.Adder,
	notifier notify.Sink,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *ImportReloader {
	if notifier == nil {
		notifier = notify.Discard
	}
	loader := homepage.NewLoader(bookmarkFile)
	return &ImportReloader{
		loader:        loader,
		store:         store,
		notifier:      notifier,
		logger:        log.With(logger.String("file", loader.Path())),
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
		done:          make(chan struct{}),
	}
}

// Start imports once, then keeps importing on every tick and manual trigger
// until Stop is called or ctx is done. A failing first import is logged and
// does not prevent the loop from starting: the file may show up later.
func (r *ImportReloader) Start(ctx context.Context) {
	if _, err := r.Reload(ctx); err != nil {
		r.logger.Warn("initial bookmark import failed", logger.Error(err))
	}

	r.started.Store(true)
	ticker := time.NewTicker(r.interval)
	go func() {
		defer close(r.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.reloadAndLog(ctx)
			case <-r.manualTrigger:
				r.logger.Info("manual bookmark import triggered")
				r.reloadAndLog(ctx)
			case <-r.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the loop and waits for a running import to finish.
func (r *ImportReloader) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	if r.started.Load() {
		<-r.done
	}
}

// Reload runs one import and reports the outcome to the notifier.
func (r *ImportReloader) Reload(ctx context.Context) (homepage.Result, error) {
	start := time.Now()
	res, err := homepage.Import(ctx, r.loader, r.store)
	r.notifier.Notify(notify.ForImport(res.Added, res.Skipped, err))
	if err != nil {
		return res, err
	}

	r.logger.Info("bookmarks imported",
		logger.Int("added", res.Added),
		logger.Int("skipped", res.Skipped),
		logger.Duration("took", time.Since(start)))
	return res, nil
}

func (r *ImportReloader) reloadAndLog(ctx context.Context) {
	if _, err := r.Reload(ctx); err != nil {
		r.logger.Error("failed to import bookmarks", logger.Error(err))
	}
}
