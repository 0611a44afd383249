package httputil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Same IP is exhausted.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different IP has its own bucket.
	second := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_RegistryStaysBounded(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.maxClients = 3

	// Fill the registry with recently seen clients; nothing is stale.
	for i := 0; i < 3; i++ {
		rl.allow(fmt.Sprintf("10.0.0.%d", i))
	}
	assert.Len(t, rl.clients, 3)

	// Admitting a new client must not grow the registry past the cap.
	rl.allow("10.0.1.1")
	assert.Len(t, rl.clients, 3)
	assert.Contains(t, rl.clients, "10.0.1.1")
}

func TestRateLimiter_EvictsStaleBeforeActive(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.maxClients = 2

	rl.allow("10.0.0.1")
	rl.allow("10.0.0.2")
	rl.clients["10.0.0.1"].lastSeen = time.Now().Add(-2 * time.Hour)

	rl.allow("10.0.0.3")

	assert.Len(t, rl.clients, 2)
	assert.NotContains(t, rl.clients, "10.0.0.1")
	assert.Contains(t, rl.clients, "10.0.0.2")
	assert.Contains(t, rl.clients, "10.0.0.3")
}
