// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"salon/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile document exists for a
// principal. Absence is a regular outcome for the account checker, not a
// failure.
var ErrProfileNotFound = errors.New("profile document not found")

// ProfileRepository is the document store holding onboarding/profile state,
// keyed by principal id under a fixed "users" collection.
type ProfileRepository interface {
	// Get retrieves the profile document for a principal id. Returns
	// ErrProfileNotFound when absent.
	Get(ctx context.Context, principalID string) (*entity.ProfileDocument, error)

	// Create writes a brand-new profile document. Creating an id that
	// already has a document is not an error: a concurrent evaluation may
	// have won the race, and the defensive create must stay exactly-once
	// from the store's point of view.
	Create(ctx context.Context, principalID string, doc *entity.ProfileDocument) error

	// Update applies a partial field update to an existing document. Only
	// the onboarding flow and the lastLogin touch mutate profiles.
	Update(ctx context.Context, principalID string, fields map[string]any) error
}
