package service

import (
	"context"

	"salon/internal/domain/entity"
)

// NotificationDispatcher performs best-effort push delivery to a recipient.
// Failures are logged and swallowed by callers; dispatch is never part of
// the message durability contract and is never retried within this core.
type NotificationDispatcher interface {
	SendDirectMessage(ctx context.Context, recipientID string, payload entity.NotificationPayload) error
}
