package app

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/stash/internal/config"
)

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestAppServesAndStops(t *testing.T) {
	addr := freePort(t)
	cfg := &config.Config{
		ListenPort:      addr,
		ShutdownTimeout: 2 * time.Second,
		LogLevel:        "error",
		Backend:         config.BackendFile,
		Slot:            config.DefaultSlot,
		DataDir:         t.TempDir(),
	}

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewFailsOnUnusableStorage(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "error",
		Backend:  config.BackendFile,
		Slot:     config.DefaultSlot,
		DataDir:  "",
	}

	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}
