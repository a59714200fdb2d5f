// Package connectivity implements the reachability monitor with a periodic
// HTTP probe. Reachability is orthogonal to authentication: consumers overlay
// an indeterminate session view while offline but never destroy state.
package connectivity

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"salon/config"
	"salon/internal/domain/service"

	"go.uber.org/fx"
)

const (
	defaultProbeURL = "https://www.gstatic.com/generate_204"
	defaultInterval = 15 * time.Second
	probeTimeout    = 5 * time.Second
)

type monitor struct {
	probeURL   string
	interval   time.Duration
	httpClient *http.Client
	logger     *slog.Logger

	mu     sync.Mutex
	online bool
	subs   map[uint64]func(online bool)
	nextID uint64

	cancel context.CancelFunc
	done   chan struct{}
}

// MonitorParams holds dependencies for the connectivity monitor, injected by Fx
type MonitorParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewMonitor is the constructor for the probe-based ConnectivityMonitor. The
// monitor starts optimistic: it reports online until the first probe fails.
func NewMonitor(params MonitorParams) service.ConnectivityMonitor {
	probeURL := defaultProbeURL
	interval := defaultInterval
	if cfg := params.Config.Connectivity; cfg != nil {
		if cfg.ProbeURL != "" {
			probeURL = cfg.ProbeURL
		}
		if cfg.Interval > 0 {
			interval = cfg.Interval
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &monitor{
		probeURL:   probeURL,
		interval:   interval,
		httpClient: &http.Client{Timeout: probeTimeout},
		logger:     params.Logger,
		online:     true,
		subs:       make(map[uint64]func(online bool)),
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go m.run(ctx)

			return nil
		},
		OnStop: func(context.Context) error {
			m.cancel()
			<-m.done

			return nil
		},
	})

	return m
}

// Online reports the last observed reachability state.
func (m *monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.online
}

// OnChange registers a callback invoked whenever reachability flips.
func (m *monitor) OnChange(callback func(online bool)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = callback
	m.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

func (m *monitor) run(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.observe(m.probe(ctx))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.observe(m.probe(ctx))
		}
	}
}

func (m *monitor) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.probeURL, nil)
	if err != nil {
		return false
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < 500
}

// observe updates the stored state and notifies subscribers on a flip.
func (m *monitor) observe(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()

		return
	}
	m.online = online
	callbacks := make([]func(bool), 0, len(m.subs))
	for _, cb := range m.subs {
		callbacks = append(callbacks, cb)
	}
	m.mu.Unlock()

	m.logger.Info("connectivity changed", slog.Bool("online", online))

	for _, cb := range callbacks {
		cb(online)
	}
}
