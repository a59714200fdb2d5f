// Package usecase declares the application-facing contracts implemented
// under impl.
package usecase

import (
	"salon/internal/domain/entity"
)

// SessionUsecase exposes the derived session state of the consistency
// machine. The machine owns the state exclusively and recomputes it on every
// identity provider event.
type SessionUsecase interface {
	// Snapshot returns the current derived session state.
	Snapshot() entity.SessionState

	// OnStateChange registers a callback invoked after every completed
	// evaluation. The returned unsubscribe is idempotent.
	OnStateChange(callback func(state entity.SessionState)) (unsubscribe func())

	// Close detaches the machine from the identity provider and waits for
	// in-flight background writes. Idempotent.
	Close()
}
