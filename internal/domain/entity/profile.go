package entity

import "time"

// ProfileDocument is the application-owned record tracking onboarding and
// profile completeness for a principal. It lives in the "users" collection,
// keyed by the principal id. It is created either by the onboarding flow or
// defensively by the account checker when a brand-new principal has no
// document yet. This core never deletes it.
type ProfileDocument struct {
	OnboardingCompleted bool       // Whether the onboarding flow finished.
	Email               string     // Contact email, optional until onboarding.
	PhoneNumber         string     // Contact phone, optional until onboarding.
	Username            string     // Display handle, required once onboarded.
	CreatedAt           time.Time  // When the document was first written.
	LastLogin           *time.Time // Touched on every fully-onboarded login.
}

// Valid reports whether the document satisfies the completeness invariant:
// a document claiming completed onboarding must carry a username and at
// least one of email or phone number. A violation marks the account as
// corrupted.
func (d *ProfileDocument) Valid() bool {
	if !d.OnboardingCompleted {
		return true
	}
	if d.Username == "" {
		return false
	}

	return d.Email != "" || d.PhoneNumber != ""
}
