// Package service defines the interfaces of external collaborators the
// engines depend on: identity provider, push dispatcher, entitlement system,
// connectivity signal and event publishing.
package service

import (
	"context"

	"salon/internal/domain/entity"
)

// IdentityProvider emits the current authenticated principal, or nil when
// nobody is signed in, on every authentication-state change.
type IdentityProvider interface {
	// OnAuthChange registers a callback invoked with the current principal
	// (or nil) on every change. The returned unsubscribe is idempotent and
	// must be called by the owning context on teardown.
	OnAuthChange(callback func(principal *entity.Principal)) (unsubscribe func())

	// SignOut revokes the principal's provider session. Used for defensive
	// logouts on corrupted or deleted accounts and on security-relevant
	// verification failures.
	SignOut(ctx context.Context, principalID string) error
}

// SessionFeed is the transport-facing side of the identity provider: the
// delivery layer pushes verified credentials and sign-out events through it,
// which the provider turns into OnAuthChange emissions.
type SessionFeed interface {
	// AuthenticateToken verifies a provider-issued ID token and emits the
	// resulting principal to all subscribers.
	AuthenticateToken(ctx context.Context, idToken string) (*entity.Principal, error)

	// ClearSession emits a nil principal to all subscribers.
	ClearSession()
}
