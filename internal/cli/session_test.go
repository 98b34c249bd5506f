package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/MrSnakeDoc/stash/internal/domain"
	"github.com/MrSnakeDoc/stash/internal/logger"
	"github.com/MrSnakeDoc/stash/internal/notify"
)

func TestSessionReport(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantLog []zapcore.Level
	}{
		{name: "success", err: nil},
		{name: "duplicate", err: domain.ErrDuplicate, wantLog: []zapcore.Level{zapcore.DebugLevel}},
		{name: "storage", err: errors.Join(domain.ErrPersistence, errors.New("disk full")), wantLog: []zapcore.Level{zapcore.ErrorLevel}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			rec := &notify.Recorder{}
			s := &session{notifier: rec, log: logger.FromZap(zap.New(core))}

			err := s.report(notify.ForAdd(tt.err), tt.err)

			assert.Len(t, rec.All(), 1)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				var notified notifiedError
				assert.ErrorAs(t, err, &notified)
			}

			var levels []zapcore.Level
			for _, e := range logs.All() {
				levels = append(levels, e.Level)
			}
			assert.Equal(t, tt.wantLog, levels)
		})
	}
}
