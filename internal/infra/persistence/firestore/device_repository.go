package firestore

import (
	"context"

	"salon/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// deviceModel is the Firestore document shape of a push registration.
type deviceModel struct {
	UserID string `firestore:"userId"`
	Token  string `firestore:"token"`
}

type deviceRepository struct {
	client *firestore.Client
}

// NewDeviceRepository is the constructor for the Firestore-backed
// DeviceRepository.
func NewDeviceRepository(client *firestore.Client) repository.DeviceRepository {
	return &deviceRepository{client: client}
}

// TokensForUser returns all registration tokens of a user.
func (r *deviceRepository) TokensForUser(ctx context.Context, userID string) ([]string, error) {
	docs, err := r.client.Collection(devicesCollection).
		Where("userId", "==", userID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, classifyStoreError(err)
	}

	tokens := make([]string, 0, len(docs))
	for _, doc := range docs {
		var model deviceModel
		if err := doc.DataTo(&model); err != nil {
			continue
		}
		if model.Token != "" {
			tokens = append(tokens, model.Token)
		}
	}

	return tokens, nil
}

// RemoveToken deletes a registration token the push service rejected.
func (r *deviceRepository) RemoveToken(ctx context.Context, userID, token string) error {
	docs, err := r.client.Collection(devicesCollection).
		Where("userId", "==", userID).
		Where("token", "==", token).
		Documents(ctx).
		GetAll()
	if err != nil {
		return classifyStoreError(err)
	}

	for _, doc := range docs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return classifyStoreError(err)
		}
	}

	return nil
}
