package notify

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/MrSnakeDoc/stash/internal/domain"
)

func TestForAdd(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level Level
	}{
		{name: "saved", err: nil, level: LevelSuccess},
		{name: "empty url", err: fmt.Errorf("%w: url is required", domain.ErrValidation), level: LevelError},
		{name: "duplicate", err: fmt.Errorf("%w: x", domain.ErrDuplicate), level: LevelWarning},
		{name: "storage", err: fmt.Errorf("%w: disk", domain.ErrPersistence), level: LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := ForAdd(tt.err)
			assert.Equal(t, tt.level, n.Level)
			assert.NotEmpty(t, n.Message)
		})
	}
}

func TestForRemove(t *testing.T) {
	assert.Equal(t, LevelSuccess, ForRemove(nil).Level)
	assert.Equal(t, LevelWarning, ForRemove(domain.ErrNotFound).Level)
	assert.Equal(t, LevelError, ForRemove(errors.New("boom")).Level)
}

func TestForClear(t *testing.T) {
	_, ok := ForClear(0, nil)
	assert.False(t, ok, "empty clear must stay silent")

	n, ok := ForClear(3, nil)
	assert.True(t, ok)
	assert.Equal(t, LevelSuccess, n.Level)

	n, ok = ForClear(0, domain.ErrPersistence)
	assert.True(t, ok)
	assert.Equal(t, LevelError, n.Level)
}

func TestForImport(t *testing.T) {
	assert.Equal(t, LevelSuccess, ForImport(2, 1, nil).Level)
	assert.Equal(t, LevelWarning, ForImport(0, 4, nil).Level)
	assert.Equal(t, LevelError, ForImport(0, 0, errors.New("no file")).Level)
}

func TestConsoleSink(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	s := NewConsoleSink(&buf)
	s.Notify(Success("Saved!"))
	s.Notify(Warning("This URL already exists!"))
	s.Notify(Failure("Please enter a URL!"))

	assert.Equal(t, "✓ Saved!\n! This URL already exists!\n✗ Please enter a URL!\n", buf.String())
}

func TestMulti(t *testing.T) {
	var a, b Recorder
	Multi(&a, &b, Discard).Notify(Success("ok"))

	assert.Equal(t, []Notification{Success("ok")}, a.All())
	assert.Equal(t, []Notification{Success("ok")}, b.All())
}
