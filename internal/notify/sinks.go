package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/MrSnakeDoc/stash/internal/logger"
)

// LogSink writes notifications to a structured logger.
type LogSink struct {
	log logger.Logger
}

func NewLogSink(log logger.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(n Notification) {
	switch n.Level {
	case LevelError:
		s.log.Error(n.Message, logger.String("source", "notify"))
	case LevelWarning:
		s.log.Warn(n.Message, logger.String("source", "notify"))
	default:
		s.log.Info(n.Message, logger.String("source", "notify"))
	}
}

// ConsoleSink prints one coloured line per notification.
type ConsoleSink struct {
	mu      sync.Mutex
	w       io.Writer
	success *color.Color
	warning *color.Color
	failure *color.Color
}

// NewConsoleSink writes to w. Colour follows fatih/color's detection, so
// piping the output yields plain text.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		w:       w,
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
	}
}

func (s *ConsoleSink) Notify(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c *color.Color
	var mark string
	switch n.Level {
	case LevelError:
		c, mark = s.failure, "✗"
	case LevelWarning:
		c, mark = s.warning, "!"
	default:
		c, mark = s.success, "✓"
	}
	fmt.Fprintln(s.w, c.Sprintf("%s %s", mark, n.Message))
}

// Recorder keeps every notification it receives.
type Recorder struct {
	mu   sync.Mutex
	seen []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, n)
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.seen...)
}
