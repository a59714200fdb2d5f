package handler

import (
	"log/slog"
	"net/http"

	"salon/internal/delivery/http/response"
	"salon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// sendMessageRequest is the wire shape of a chat send.
type sendMessageRequest struct {
	SenderID   string `json:"senderId" validate:"required"`
	SenderName string `json:"senderName" validate:"required"`
	Text       string `json:"text" validate:"required"`
}

// MessageHandler holds dependencies for message-related handlers.
type MessageHandler struct {
	chat   usecase.ChatUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(chat usecase.ChatUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		chat:   chat,
		logger: logger,
	}
}

// Send handles the message send request. Persistence failure aborts the
// whole operation; push and event fan-out are best effort downstream.
func (h *MessageHandler) Send(c echo.Context) error {
	salonID := c.Param("salonID")
	if salonID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Salon id is required")
	}

	var input sendMessageRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	confirmed, err := h.chat.Send(c.Request().Context(), usecase.SendMessageInput{
		SalonID:    salonID,
		SenderID:   input.SenderID,
		SenderName: input.SenderName,
		Text:       input.Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, confirmed, "Message sent")
}
