package routes

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/stash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/stash/internal/logger"
)

type (
	// Registrar mounts a group of routes.
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
)

type group struct {
	name  string
	order int
	reg   Registrar
	mws   []Middleware
}

var registry []group

// Register adds a named route group. Groups are mounted by ascending order,
// then name, so the result does not depend on file init order. Optional
// middlewares wrap only this group.
func Register(name string, order int, reg Registrar, mws ...Middleware) {
	registry = append(registry, group{name: name, order: order, reg: reg, mws: mws})
}

// Groups returns the registered group names in mount order.
func Groups() []string {
	names := make([]string, 0, len(registry))
	for _, g := range sorted() {
		names = append(names, g.name)
	}
	return names
}

// RegisterAll mounts every registered group on r. Called once per router.
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, g := range sorted() {
		target := r
		if len(g.mws) > 0 {
			target = r.With(g.mws...)
		}
		g.reg(target, d)
		d.Logger.Debug("route group mounted",
			logger.String("group", g.name),
			logger.Int("middlewares", len(g.mws)))
	}
}

func sorted() []group {
	out := append([]group(nil), registry...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].order != out[j].order {
			return out[i].order < out[j].order
		}
		return out[i].name < out[j].name
	})
	return out
}
