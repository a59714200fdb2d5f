// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"salon/internal/delivery/http/response"
	"salon/internal/domain/entity"
	"salon/internal/domain/service"
	"salon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// sessionView is the wire shape of the derived session state. While the
// network is unreachable the view is reported as indeterminate, but the
// underlying state is never destroyed by connectivity loss.
type sessionView struct {
	State              string `json:"state"`
	Authenticated      bool   `json:"authenticated"`
	OnboardingRequired bool   `json:"onboardingRequired"`
	Loading            bool   `json:"loading"`
	PrincipalID        string `json:"principalId,omitempty"`
	Online             bool   `json:"online"`
}

// openSessionRequest carries a provider-issued ID token.
type openSessionRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	session      usecase.SessionUsecase
	feed         service.SessionFeed
	connectivity service.ConnectivityMonitor
	logger       *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(
	session usecase.SessionUsecase,
	feed service.SessionFeed,
	connectivity service.ConnectivityMonitor,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		session:      session,
		feed:         feed,
		connectivity: connectivity,
		logger:       logger,
	}
}

// Open handles session establishment from a verified provider token.
func (h *SessionHandler) Open(c echo.Context) error {
	var input openSessionRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	principal, err := h.feed.AuthenticateToken(c.Request().Context(), input.IDToken)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Token verification failed")
	}

	// The consistency evaluation runs asynchronously off the auth event;
	// the snapshot reflects at least the loading transition already.
	view := h.view(h.session.Snapshot())

	return response.Success(c, http.StatusAccepted, map[string]any{
		"principalId": principal.ID,
		"session":     view,
	}, "Session establishment started")
}

// Close handles an explicit sign-out.
func (h *SessionHandler) Close(c echo.Context) error {
	h.feed.ClearSession()

	return response.Success(c, http.StatusOK, nil, "Session cleared")
}

// Get returns the current derived session state.
func (h *SessionHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.view(h.session.Snapshot()), "")
}

func (h *SessionHandler) view(state entity.SessionState) sessionView {
	online := h.connectivity.Online()
	view := sessionView{
		State:              state.State.String(),
		Authenticated:      state.Authenticated,
		OnboardingRequired: state.OnboardingRequired,
		Loading:            state.Loading,
		PrincipalID:        state.PrincipalID,
		Online:             online,
	}

	// Offline overlays an indeterminate view; the stored state is retained.
	if !online {
		view.Loading = true
	}

	return view
}
