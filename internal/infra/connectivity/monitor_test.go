package connectivity

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestMonitor() *monitor {
	return &monitor{
		httpClient: &http.Client{Timeout: time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		online:     true,
		subs:       make(map[uint64]func(online bool)),
		done:       make(chan struct{}),
	}
}

func TestMonitor_ObserveNotifiesOnFlip(t *testing.T) {
	m := newTestMonitor()

	var flips []bool
	m.OnChange(func(online bool) { flips = append(flips, online) })

	// Same state: no notification.
	m.observe(true)
	assert.Empty(t, flips)

	m.observe(false)
	m.observe(false)
	m.observe(true)

	assert.Equal(t, []bool{false, true}, flips)
	assert.True(t, m.Online())
}

func TestMonitor_UnsubscribeIsIdempotent(t *testing.T) {
	m := newTestMonitor()

	var calls int
	unsubscribe := m.OnChange(func(bool) { calls++ })
	unsubscribe()
	unsubscribe()

	m.observe(false)
	assert.Zero(t, calls)
}

func TestMonitor_ProbeTreatsReachableAsOnline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	m := newTestMonitor()
	m.probeURL = server.URL
	assert.True(t, m.probe(context.Background()))

	server.Close()
	assert.False(t, m.probe(context.Background()))
}
