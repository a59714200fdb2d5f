package repository

import (
	"context"
	"errors"

	"salon/internal/domain/entity"
)

// ErrSalonNotFound is returned when the salon document does not exist.
var ErrSalonNotFound = errors.New("salon not found")

// SalonRepository reads pre-established 1:1 conversation scopes. This core
// never creates or mutates salons.
type SalonRepository interface {
	// Find retrieves a salon by id.
	Find(ctx context.Context, salonID string) (*entity.Salon, error)

	// OtherParticipant resolves the participant on the other side of a 1:1
	// salon. Returns an error when the sender is not a participant.
	OtherParticipant(ctx context.Context, salonID, senderID string) (string, error)
}
