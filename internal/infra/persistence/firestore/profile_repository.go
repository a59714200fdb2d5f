package firestore

import (
	"context"
	"time"

	"salon/internal/domain/entity"
	"salon/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// profileModel is the Firestore document shape of a profile.
type profileModel struct {
	OnboardingCompleted bool       `firestore:"onboardingCompleted"`
	Email               string     `firestore:"email,omitempty"`
	PhoneNumber         string     `firestore:"phoneNumber,omitempty"`
	Username            string     `firestore:"username,omitempty"`
	CreatedAt           time.Time  `firestore:"createdAt"`
	LastLogin           *time.Time `firestore:"lastLogin,omitempty"`
}

func (m *profileModel) toEntity() *entity.ProfileDocument {
	return &entity.ProfileDocument{
		OnboardingCompleted: m.OnboardingCompleted,
		Email:               m.Email,
		PhoneNumber:         m.PhoneNumber,
		Username:            m.Username,
		CreatedAt:           m.CreatedAt,
		LastLogin:           m.LastLogin,
	}
}

type profileRepository struct {
	client *firestore.Client
}

// NewProfileRepository is the constructor for the Firestore-backed
// ProfileRepository.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

// Get retrieves the profile document for a principal id.
func (r *profileRepository) Get(ctx context.Context, principalID string) (*entity.ProfileDocument, error) {
	snap, err := r.client.Collection(usersCollection).Doc(principalID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, classifyStoreError(err)
	}

	var model profileModel
	if err := snap.DataTo(&model); err != nil {
		return nil, errors.Wrapf(err, "decode profile document %s", principalID)
	}

	return model.toEntity(), nil
}

// Create writes a brand-new profile document. A create collision means a
// concurrent evaluation already wrote the document; the defensive create
// stays exactly-once, so the collision is not an error.
func (r *profileRepository) Create(ctx context.Context, principalID string, doc *entity.ProfileDocument) error {
	model := &profileModel{
		OnboardingCompleted: doc.OnboardingCompleted,
		Email:               doc.Email,
		PhoneNumber:         doc.PhoneNumber,
		Username:            doc.Username,
		CreatedAt:           doc.CreatedAt,
		LastLogin:           doc.LastLogin,
	}

	if _, err := r.client.Collection(usersCollection).Doc(principalID).Create(ctx, model); err != nil {
		if isAlreadyExists(err) {
			return nil
		}

		return classifyStoreError(err)
	}

	return nil
}

// Update applies a partial field update to an existing document.
func (r *profileRepository) Update(ctx context.Context, principalID string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if _, err := r.client.Collection(usersCollection).Doc(principalID).Update(ctx, updates); err != nil {
		return classifyStoreError(err)
	}

	return nil
}
