package mw

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/stash/internal/logger"
	"github.com/MrSnakeDoc/stash/internal/utils"
)

type forbiddenBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// AllowOnlyCIDRS restricts a route group to clients whose address falls in
// allowed. An empty (or entirely unusable) list disables the check.
// trustProxy resolves the client from proxy headers, see utils.ClientIP.
func AllowOnlyCIDRS(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	m := utils.NewIPMatcher(allowed)
	if bad := m.Invalid(); len(bad) > 0 {
		log.Warn("ignoring allowlist entries that are not an IP or CIDR", logger.Strings("entries", bad))
	}
	if m.IsEmpty() {
		return func(next http.Handler) http.Handler { return next }
	}

	log.Debug("client allowlist active",
		logger.Int("rules", m.Len()),
		logger.Bool("trust_proxy", trustProxy))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, trustProxy)
			if m.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			log.Warn("client rejected by allowlist",
				logger.String("client_ip", ip),
				logger.String("remote_addr", r.RemoteAddr),
				logger.String("path", r.URL.Path))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(forbiddenBody{
				Error:   "forbidden",
				Message: "client address not allowed",
			})
		})
	}
}
