package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/MrSnakeDoc/stash/internal/logger"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func do(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(RateLimitConfig{Burst: 2, RefillPerIPPerMin: 1})(okHandler)

	first := do(h, "1.1.1.1:1000")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, do(h, "1.1.1.1:1001").Code)

	blocked := do(h, "1.1.1.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))

	// another client has its own bucket
	assert.Equal(t, http.StatusOK, do(h, "2.2.2.2:1000").Code)
}

func TestLimiterSweepsIdleVisitors(t *testing.T) {
	l := newLimiter(RateLimitConfig{Burst: 1, RefillPerIPPerMin: 60, IdleTTL: time.Minute, SweepInterval: time.Second})
	now := time.Now()

	l.allow("a", now)
	l.allow("b", now.Add(2*time.Minute))

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.visitors, "a")
	assert.Contains(t, l.visitors, "b")
}

func TestAllowOnlyCIDRS(t *testing.T) {
	log := logger.NewNop()

	open := AllowOnlyCIDRS(nil, false, log)(okHandler)
	assert.Equal(t, http.StatusOK, do(open, "8.8.8.8:1").Code)

	restricted := AllowOnlyCIDRS([]string{"10.0.0.0/8"}, false, log)(okHandler)
	assert.Equal(t, http.StatusOK, do(restricted, "10.2.3.4:1").Code)

	rejected := do(restricted, "8.8.8.8:1")
	assert.Equal(t, http.StatusForbidden, rejected.Code)
	assert.Equal(t, "application/json", rejected.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"forbidden","message":"client address not allowed"}`, rejected.Body.String())
}

func TestAllowOnlyCIDRSWarnsAboutBadEntries(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	// nothing usable: the check is off, but the operator hears about it
	h := AllowOnlyCIDRS([]string{"10.0.0.0/33", "intranet"}, false, logger.FromZap(zap.New(core)))(okHandler)

	assert.Equal(t, http.StatusOK, do(h, "8.8.8.8:1").Code)
	warned := logs.FilterMessage("ignoring allowlist entries that are not an IP or CIDR").All()
	if assert.Len(t, warned, 1) {
		assert.Equal(t, []interface{}{"10.0.0.0/33", "intranet"}, warned[0].ContextMap()["entries"])
	}
}

func TestLogKeepsStatus(t *testing.T) {
	h := Log(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	assert.Equal(t, http.StatusTeapot, do(h, "1.1.1.1:1").Code)
}
