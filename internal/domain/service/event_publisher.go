package service

import (
	"context"
)

// MessageEvent describes a persisted chat message for downstream consumers.
type MessageEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	MessageID  string `json:"message_id"`
	SalonID    string `json:"salon_id"`
	SenderID   string `json:"sender_id"`
	Recipient  string `json:"recipient"`
	OccurredAt string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMessageEvent publishes a message-sent event for async processing
	PublishMessageEvent(ctx context.Context, event *MessageEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
