// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"salon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	MessageHandler *handler.MessageHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	messageHandler *handler.MessageHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		messageHandler: params.MessageHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session lifecycle
	e.POST("/session", r.sessionHandler.Open)
	e.DELETE("/session", r.sessionHandler.Close)
	e.GET("/session", r.sessionHandler.Get)

	// Realtime messaging
	salonGroup := e.Group("/salons")
	{
		salonGroup.POST("/:salonID/messages", r.messageHandler.Send)
	}
}
