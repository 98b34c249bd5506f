// Package notify carries transient status messages from bookmark operations
// to whatever surface the user is looking at.
package notify

import (
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/stash/internal/domain"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Sink displays notifications. Implementations must not block for long.
type Sink interface {
	Notify(n Notification)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(Notification)

func (f SinkFunc) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Sink = SinkFunc(func(Notification) {})

// Multi fans a notification out to every sink in order.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(n Notification) {
		for _, s := range sinks {
			s.Notify(n)
		}
	})
}

func Success(msg string) Notification { return Notification{Level: LevelSuccess, Message: msg} }
func Warning(msg string) Notification { return Notification{Level: LevelWarning, Message: msg} }
func Failure(msg string) Notification { return Notification{Level: LevelError, Message: msg} }

// ForAdd maps the result of adding a bookmark. A duplicate is a warning, not
// an error: the collection already holds what the user wanted.
func ForAdd(err error) Notification {
	switch {
	case err == nil:
		return Success("Saved!")
	case errors.Is(err, domain.ErrValidation):
		return Failure("Please enter a URL!")
	case errors.Is(err, domain.ErrDuplicate):
		return Warning("This URL already exists!")
	default:
		return Failure("Could not save the bookmark.")
	}
}

func ForRemove(err error) Notification {
	switch {
	case err == nil:
		return Success("Deleted!")
	case errors.Is(err, domain.ErrNotFound):
		return Warning("Bookmark not found.")
	default:
		return Failure("Could not delete the bookmark.")
	}
}

// ForClear maps the result of clearing the collection. ok is false when
// there was nothing to report: an empty collection stays silent.
func ForClear(removed int, err error) (Notification, bool) {
	switch {
	case err != nil:
		return Failure("Could not clear bookmarks."), true
	case removed == 0:
		return Notification{}, false
	default:
		return Success("All cleared!"), true
	}
}

func ForImport(added, skipped int, err error) Notification {
	if err != nil {
		return Failure(fmt.Sprintf("Import failed: %v", err))
	}
	if added == 0 {
		return Warning(fmt.Sprintf("Nothing new to import (%d already saved).", skipped))
	}
	return Success(fmt.Sprintf("Imported %d bookmarks (%d already saved).", added, skipped))
}
