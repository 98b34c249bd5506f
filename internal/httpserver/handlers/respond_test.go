package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/MrSnakeDoc/stash/internal/domain"
	"github.com/MrSnakeDoc/stash/internal/logger"
)

func TestWriteStoreError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		level  zapcore.Level
	}{
		{name: "validation", err: fmt.Errorf("%w: url is required", domain.ErrValidation), status: http.StatusBadRequest, level: zapcore.DebugLevel},
		{name: "duplicate", err: fmt.Errorf("%w: https://a.com", domain.ErrDuplicate), status: http.StatusConflict, level: zapcore.DebugLevel},
		{name: "not found", err: fmt.Errorf("%w: id 1", domain.ErrNotFound), status: http.StatusNotFound, level: zapcore.DebugLevel},
		{name: "persistence", err: fmt.Errorf("%w: disk full", domain.ErrPersistence), status: http.StatusInternalServerError, level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			rec := httptest.NewRecorder()

			writeStoreError(rec, tt.err, logger.FromZap(zap.New(core)))

			assert.Equal(t, tt.status, rec.Code)
			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.level, entries[0].Level)
			}
		})
	}
}
