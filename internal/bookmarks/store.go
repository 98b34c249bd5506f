// Package bookmarks owns the bookmark collection: validated mutations,
// case-insensitive search, and write-through persistence of the whole
// collection to a single slot.
package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/MrSnakeDoc/stash/internal/domain"
	"github.com/MrSnakeDoc/stash/internal/logger"
	"github.com/MrSnakeDoc/stash/internal/store"
)

// DefaultSlot is used when no WithSlot option is given.
const DefaultSlot = "websites"

// Store is the in-memory bookmark collection, loaded from a provider at
// construction and written back in full after every mutation.
//
// Operations are serialized; each one either fully succeeds (memory and
// provider agree) or leaves the collection untouched.
type Store struct {
	mu        sync.Mutex
	provider  store.Provider
	slot      string
	log       logger.Logger
	now       func() time.Time
	items     []domain.Bookmark
	lastID    int64
	listeners map[int]Listener
	nextSub   int
}

type Option func(*Store)

// WithSlot sets the slot the collection is persisted under.
func WithSlot(slot string) Option {
	return func(s *Store) { s.slot = slot }
}

func WithLogger(log logger.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock replaces time.Now, for ids and createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New loads the collection from provider. A missing slot or a blob that does
// not decode yields an empty collection; only a failing provider read is an
// error.
func New(ctx context.Context, provider store.Provider, opts ...Option) (*Store, error) {
	s := &Store{
		provider:  provider,
		slot:      DefaultSlot,
		log:       logger.NewNop(),
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}

	blob, ok, err := provider.Get(ctx, s.slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookmarks: %w", err)
	}

	items := []domain.Bookmark{}
	if ok {
		decoded, err := domain.DecodeCollection(blob)
		if err != nil {
			s.log.Warn("stored bookmarks unreadable, starting empty",
				logger.String("slot", s.slot),
				logger.Error(err))
		} else {
			items = decoded
		}
	}

	s.items = items
	for _, b := range items {
		s.lastID = max(s.lastID, b.ID)
	}

	s.log.Debug("bookmarks loaded",
		logger.String("slot", s.slot),
		logger.Int("count", len(items)))

	return s, nil
}

// Add appends a new bookmark for rawURL. The URL is trimmed; it must not be
// empty and must not already be present (exact, case-sensitive match).
func (s *Store) Add(ctx context.Context, rawURL string, tags []string) (domain.Bookmark, error) {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return domain.Bookmark{}, fmt.Errorf("%w: url is required", domain.ErrValidation)
	}

	s.mu.Lock()
	if slices.ContainsFunc(s.items, func(b domain.Bookmark) bool { return b.URL == u }) {
		s.mu.Unlock()
		return domain.Bookmark{}, fmt.Errorf("%w: %s", domain.ErrDuplicate, u)
	}

	b := domain.NewBookmark(s.nextID(), u, tags, s.now())
	next := append(slices.Clone(s.items), b)
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		return domain.Bookmark{}, err
	}
	s.items = next
	count := len(next)
	s.mu.Unlock()

	s.publish(Event{Kind: EventAdded, Bookmark: b.Clone(), Count: count})
	return b.Clone(), nil
}

// Remove deletes the bookmark with the given id and returns it.
// ErrNotFound is returned, and nothing is written, when no entry matches.
func (s *Store) Remove(ctx context.Context, id int64) (domain.Bookmark, error) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.items, func(b domain.Bookmark) bool { return b.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return domain.Bookmark{}, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}

	removed := s.items[idx]
	next := slices.Delete(slices.Clone(s.items), idx, idx+1)
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		return domain.Bookmark{}, err
	}
	s.items = next
	count := len(next)
	s.mu.Unlock()

	s.publish(Event{Kind: EventRemoved, Bookmark: removed.Clone(), Count: count})
	return removed.Clone(), nil
}

// Clear removes every bookmark and returns how many were dropped. An empty
// collection is left alone: no write, no event.
func (s *Store) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	n := len(s.items)
	if n == 0 {
		s.mu.Unlock()
		return 0, nil
	}

	next := []domain.Bookmark{}
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		return 0, err
	}
	s.items = next
	s.mu.Unlock()

	s.publish(Event{Kind: EventCleared, Removed: n})
	return n, nil
}

// Search returns, in collection order, the bookmarks whose URL or any tag
// contains query, ignoring case. An empty query returns everything.
func (s *Store) Search(query string) []domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := lo.Filter(s.items, func(b domain.Bookmark, _ int) bool {
		return b.Matches(query)
	})
	return cloneAll(matched)
}

// List returns the whole collection in insertion order.
func (s *Store) List() []domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneAll(s.items)
}

// Get returns the bookmark with the given id.
func (s *Store) Get(id int64) (domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := lo.Find(s.items, func(b domain.Bookmark) bool { return b.ID == id })
	if !ok {
		return domain.Bookmark{}, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return b.Clone(), nil
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Slot returns the name the collection is persisted under.
func (s *Store) Slot() string { return s.slot }

// Subscribe registers fn for every successful mutation. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Close releases the provider. Every mutation has already been written.
func (s *Store) Close() error {
	return s.provider.Close()
}

// nextID returns the creation time in milliseconds, bumped past the last
// issued id so two additions in the same tick never collide.
// Caller holds s.mu.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persist writes items as the new content of the slot. Caller holds s.mu.
func (s *Store) persist(ctx context.Context, items []domain.Bookmark) error {
	blob, err := domain.EncodeCollection(items)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if err := s.provider.Set(ctx, s.slot, blob); err != nil {
		s.log.Error("failed to persist bookmarks",
			logger.String("slot", s.slot),
			logger.Int("count", len(items)),
			logger.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (s *Store) publish(ev Event) {
	s.mu.Lock()
	if ev.Kind == EventCleared {
		ev.Count = len(s.items)
	}
	fns := make([]Listener, 0, len(s.listeners))
	for i := 0; i < s.nextSub; i++ {
		if fn, ok := s.listeners[i]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func cloneAll(items []domain.Bookmark) []domain.Bookmark {
	return lo.Map(items, func(b domain.Bookmark, _ int) domain.Bookmark { return b.Clone() })
}

// IsUserError reports whether err is a rejected input (validation, duplicate
// or unknown id) rather than a storage failure.
func IsUserError(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrDuplicate) ||
		errors.Is(err, domain.ErrNotFound)
}
