// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Principal is the identity provider's representation of a logged-in user.
// It is ephemeral: the provider owns it, the session holds a read-only copy.
type Principal struct {
	ID           string    // Provider-issued unique identifier.
	CreationTime time.Time // When the provider account was created.
}

// Age returns how long ago the provider account was created.
func (p *Principal) Age(now time.Time) time.Duration {
	return now.Sub(p.CreationTime)
}
