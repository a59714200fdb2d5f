// Package entitlement integrates the external payment/entitlement system.
package entitlement

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"salon/config"
	"salon/internal/domain/service"

	"github.com/pkg/errors"
)

const requestTimeout = 10 * time.Second

type httpClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// noopClient is used when no entitlement endpoint is configured.
type noopClient struct {
	logger *slog.Logger
}

func (c *noopClient) LogOut(context.Context) error {
	c.logger.Debug("entitlement system not configured, skipping logout")

	return nil
}

// NewClient is the constructor for the EntitlementService. An empty logout
// endpoint yields a no-op client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.EntitlementService {
	if cfg.Entitlement == nil || cfg.Entitlement.LogoutEndpoint == "" {
		logger.Info("entitlement system not configured, using no-op client")

		return &noopClient{logger: logger}
	}

	return &httpClient{
		endpoint:   cfg.Entitlement.LogoutEndpoint,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// LogOut clears the entitlement session. Mirrors the identity sign-out so
// the two systems never disagree about who is logged in.
func (c *httpClient) LogOut(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "entitlement logout request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("entitlement logout returned status %d", resp.StatusCode)
	}

	c.logger.Info("entitlement session cleared")

	return nil
}
