package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/stash/internal/bookmarks"
	"github.com/MrSnakeDoc/stash/internal/logger"
	"github.com/MrSnakeDoc/stash/internal/notify"
	"github.com/MrSnakeDoc/stash/internal/store"
	"github.com/MrSnakeDoc/stash/internal/utils"
)

// session is what a one-shot command works with.
type session struct {
	store    *bookmarks.Store
	notifier notify.Sink
	log      logger.Logger
}

// openSession opens the configured storage and loads the collection.
// Callers must call close.
func openSession(cmd *cobra.Command, f *globalFlags) (*session, error) {
	cfg, err := f.loadConfig(true)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.LogLevel, cfg.PrettyLog)

	provider, err := store.Open(cmd.Context(), cfg, log)
	if err != nil {
		return nil, err
	}

	s, err := bookmarks.New(cmd.Context(), provider,
		bookmarks.WithSlot(cfg.Slot),
		bookmarks.WithLogger(log))
	if err != nil {
		utils.Close(provider)
		return nil, err
	}

	return &session{
		store:    s,
		notifier: notify.NewConsoleSink(cmd.OutOrStdout()),
		log:      log,
	}, nil
}

func (s *session) close() {
	utils.CloseLogged(s.store, "bookmark store", s.log)
	_ = s.log.Sync()
}

// report shows n and turns a failed operation into an error the root
// command will not print a second time.
func (s *session) report(n notify.Notification, err error) error {
	s.notifier.Notify(n)
	switch {
	case err == nil:
		return nil
	case bookmarks.IsUserError(err):
		s.log.Debug("request rejected", logger.Error(err))
	default:
		s.log.Error("operation failed", logger.Error(err))
	}
	return notifiedError{err: err}
}
