package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/stash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/stash/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/stash/internal/httpserver/mw"
)

func init() { Register("api", 10, registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Route("/api", func(r chi.Router) {
		r.Use(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))
		if d.RateLimitPerMin > 0 {
			r.Use(mw.RateLimit(mw.RateLimitConfig{
				Burst:             d.RateLimitBurst,
				RefillPerIPPerMin: d.RateLimitPerMin,
				MaxEntries:        10000,
				TrustProxy:        d.TrustProxy,
			}))
		}

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", handlers.ListBookmarks(d))
			r.Post("/", handlers.AddBookmark(d))
			r.Delete("/", handlers.ClearBookmarks(d))
			r.Get("/{id}", handlers.GetBookmark(d))
			r.Delete("/{id}", handlers.RemoveBookmark(d))
		})
		r.Post("/import", handlers.Import(d))
	})
}
