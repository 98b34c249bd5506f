package deps

import (
	"time"

	"github.com/MrSnakeDoc/stash/internal/bookmarks"
	"github.com/MrSnakeDoc/stash/internal/logger"
	"github.com/MrSnakeDoc/stash/internal/notify"
	"github.com/MrSnakeDoc/stash/internal/store"
)

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	Store           *bookmarks.Store // the bookmark collection
	Notifier        notify.Sink      // receives one notification per mutation
	Pinger          store.Pinger     // nil when the backend has nothing to ping
	AllowedCIDRS    []string         // IPs allowed to reach the API, empty = everyone
	TrustProxy      bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RateLimitPerMin int              // per client IP, 0 disables
	RateLimitBurst  int              // bucket size
	ImportTrigger   chan struct{}    // manual homepage import (nil if import disabled)
}
