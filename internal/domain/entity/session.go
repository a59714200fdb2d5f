package entity

// AuthState names the states of the session consistency machine. The machine
// re-enters StateUnknown on every identity provider event and re-evaluates
// from scratch rather than diffing.
type AuthState int

const (
	// StateUnknown: no evaluation has completed yet for the current event.
	StateUnknown AuthState = iota

	// StateAuthenticated: valid, fully onboarded profile.
	StateAuthenticated

	// StatePendingOnboarding: the principal is known but onboarding must
	// finish before the session is fully usable.
	StatePendingOnboarding

	// StateUnauthenticated: no principal, or the account was rejected.
	StateUnauthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateAuthenticated:
		return "authenticated"
	case StatePendingOnboarding:
		return "pending_onboarding"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "invalid"
	}
}

// SessionState is the process-local state derived from identity provider
// events. It has no independent persistence and is recomputed on every event.
type SessionState struct {
	State              AuthState
	Authenticated      bool
	OnboardingRequired bool
	Loading            bool
	PrincipalID        string
}
