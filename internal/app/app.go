package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/stash/internal/bookmarks"
	"github.com/MrSnakeDoc/stash/internal/config"
	"github.com/MrSnakeDoc/stash/internal/httpserver"
	"github.com/MrSnakeDoc/stash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/stash/internal/logger"
	"github.com/MrSnakeDoc/stash/internal/notify"
	"github.com/MrSnakeDoc/stash/internal/scheduler"
	"github.com/MrSnakeDoc/stash/internal/store"
	"github.com/MrSnakeDoc/stash/internal/version"
)

type App struct {
	cfg            *config.Config
	logger         logger.Logger
	server         *httpserver.Server
	store          *bookmarks.Store
	importReloader *scheduler.ImportReloader
	unsubscribe    func()
}

// New wires storage, the bookmark store, the optional homepage import and
// the HTTP server. Storage must be reachable: there is nothing to serve
// without it.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	provider, err := store.Open(ctx, cfg, loggerClient)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Backend, err)
	}

	bookmarkStore, err := bookmarks.New(ctx, provider,
		bookmarks.WithSlot(cfg.Slot),
		bookmarks.WithLogger(loggerClient))
	if err != nil {
		_ = provider.Close()
		return nil, err
	}
	loggerClient.Info("bookmark store ready",
		logger.String("slot", cfg.Slot),
		logger.Int("count", bookmarkStore.Count()))

	unsubscribe := bookmarkStore.Subscribe(func(ev bookmarks.Event) {
		loggerClient.Debug("bookmarks changed",
			logger.String("event", ev.Kind.String()),
			logger.Int64("id", ev.Bookmark.ID),
			logger.Int("count", ev.Count))
	})

	notifier := notify.NewLogSink(loggerClient)

	var importReloader *scheduler.ImportReloader
	var importTrigger chan struct{}
	if cfg.ImportFile != "" {
		loggerClient.Info("import file configured, initializing import reloader",
			logger.String("file", cfg.ImportFile))
		importTrigger = make(chan struct{}, 1)
		importReloader = scheduler.NewImportReloader(
			cfg.ImportFile,
			bookmarkStore,
			notifier,
			loggerClient,
			cfg.ImportInterval,
			importTrigger,
		)
	}

	var pinger store.Pinger
	if p, ok := provider.(store.Pinger); ok {
		pinger = p
	}

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		Store:           bookmarkStore,
		Notifier:        notifier,
		Pinger:          pinger,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		RateLimitPerMin: cfg.RateLimitPerMin,
		RateLimitBurst:  cfg.RateLimitBurst,
		ImportTrigger:   importTrigger,
	}

	return &App{
		cfg:            cfg,
		logger:         loggerClient,
		server:         httpserver.New(cfg, loggerClient, d),
		store:          bookmarkStore,
		importReloader: importReloader,
		unsubscribe:    unsubscribe,
	}, nil
}

// Run serves until SIGINT/SIGTERM or ctx is cancelled, then shuts down.
func (a *App) Run(ctx context.Context) error {
	a.logger.Infof("🚀 Starting stash %s on %s (backend=%s)", version.Version, a.cfg.ListenPort, a.cfg.Backend)
	a.logger.Info(version.String())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.importReloader != nil {
		a.importReloader.Start(ctx)
		a.logger.Info("import reloader started",
			logger.Duration("interval", a.cfg.ImportInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case runErr = <-errCh:
	}

	if a.importReloader != nil {
		a.importReloader.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop server: %w", err)
	}

	a.unsubscribe()
	if err := a.store.Close(); err != nil {
		a.logger.Warnf("failed to close storage: %v", err)
	} else {
		a.logger.Info("✅ Storage closed cleanly")
	}
	_ = a.logger.Sync()

	if runErr == nil {
		a.logger.Info("✅ stash stopped cleanly")
	}
	return runErr
}
