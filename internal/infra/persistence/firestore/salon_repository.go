package firestore

import (
	"context"

	"salon/internal/domain/entity"
	"salon/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// salonModel is the Firestore document shape of a conversation scope.
type salonModel struct {
	Participants []string `firestore:"participants"`
}

type salonRepository struct {
	client *firestore.Client
}

// NewSalonRepository is the constructor for the Firestore-backed
// SalonRepository.
func NewSalonRepository(client *firestore.Client) repository.SalonRepository {
	return &salonRepository{client: client}
}

// Find retrieves a salon by id.
func (r *salonRepository) Find(ctx context.Context, salonID string) (*entity.Salon, error) {
	snap, err := r.client.Collection(salonsCollection).Doc(salonID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSalonNotFound
		}

		return nil, classifyStoreError(err)
	}

	var model salonModel
	if err := snap.DataTo(&model); err != nil {
		return nil, errors.Wrapf(err, "decode salon document %s", salonID)
	}

	return &entity.Salon{
		ID:           salonID,
		Participants: model.Participants,
	}, nil
}

// OtherParticipant resolves the participant on the other side of the salon.
func (r *salonRepository) OtherParticipant(ctx context.Context, salonID, senderID string) (string, error) {
	salon, err := r.Find(ctx, salonID)
	if err != nil {
		return "", err
	}

	other := salon.OtherParticipant(senderID)
	if other == "" {
		return "", errors.Errorf("sender %s is not a participant of salon %s", senderID, salonID)
	}

	return other, nil
}
