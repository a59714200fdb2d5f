// Package notification implements best-effort push delivery over Firebase
// Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"salon/internal/domain/entity"
	"salon/internal/domain/repository"
	"salon/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// maxTokensPerMulticast is the FCM limit per multicast request.
const maxTokensPerMulticast = 500

type fcmDispatcher struct {
	client  *messaging.Client
	devices repository.DeviceRepository
	logger  *slog.Logger
}

// NewFCMDispatcher is the constructor for the FCM-backed
// NotificationDispatcher.
func NewFCMDispatcher(
	client *messaging.Client,
	devices repository.DeviceRepository,
	logger *slog.Logger,
) service.NotificationDispatcher {
	return &fcmDispatcher{
		client:  client,
		devices: devices,
		logger:  logger,
	}
}

// SendDirectMessage delivers the payload to every registered device of the
// recipient. A recipient with no devices is not an error. Tokens the push
// service reports as invalid or unregistered are pruned so they are not
// retried on the next send.
func (d *fcmDispatcher) SendDirectMessage(ctx context.Context, recipientID string, payload entity.NotificationPayload) error {
	tokens, err := d.devices.TokensForUser(ctx, recipientID)
	if err != nil {
		return errors.Wrap(err, "resolve recipient device tokens")
	}
	if len(tokens) == 0 {
		d.logger.Debug("recipient has no registered devices",
			slog.String("recipient_id", recipientID),
		)

		return nil
	}
	if len(tokens) > maxTokensPerMulticast {
		tokens = tokens[:maxTokensPerMulticast]
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: map[string]string{
			"type": payload.Type,
		},
	}

	response, err := d.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return errors.Wrap(err, "send multicast notification")
	}

	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			if removeErr := d.devices.RemoveToken(ctx, recipientID, tokens[idx]); removeErr != nil {
				d.logger.Warn("failed to prune invalid device token",
					slog.String("recipient_id", recipientID),
					slog.Any("error", removeErr),
				)
			}
		}
	}

	if response.FailureCount > 0 && response.SuccessCount == 0 {
		return errors.Errorf("all %d device sends failed for recipient %s", response.FailureCount, recipientID)
	}

	return nil
}
