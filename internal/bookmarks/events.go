package bookmarks

import "github.com/MrSnakeDoc/stash/internal/domain"

// EventKind identifies the mutation that produced an Event.
type EventKind int

const (
	EventAdded EventKind = iota + 1
	EventRemoved
	EventCleared
)

func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventRemoved:
		return "removed"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event is published after a mutation has been persisted.
type Event struct {
	Kind EventKind

	// Bookmark is the added or removed entry. Zero for EventCleared.
	Bookmark domain.Bookmark

	// Removed is the number of entries dropped by EventCleared.
	Removed int

	// Count is the collection size after the mutation.
	Count int
}

// Listener receives events synchronously, outside the store lock.
type Listener func(Event)
