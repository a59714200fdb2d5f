package entity

// Verdict is the discrete outcome of account consistency evaluation for a
// principal and its profile document (or the absence thereof).
type Verdict int

const (
	// VerdictAuthenticated: the profile exists, is valid and fully
	// onboarded. The session is authenticated.
	VerdictAuthenticated Verdict = iota

	// VerdictAuthenticatedIncompleteOnboarding: the profile exists and is
	// valid but onboarding has not finished. The caller reroutes to the
	// onboarding flow instead of blocking login.
	VerdictAuthenticatedIncompleteOnboarding

	// VerdictRejectedCorrupted: the profile claims completed onboarding but
	// violates the completeness invariant. The caller must sign out and
	// clear entitlements.
	VerdictRejectedCorrupted

	// VerdictNewAccountPending: no profile exists and the provider account
	// is younger than the grace period. A fresh document is created and the
	// session stays unauthenticated until onboarding finishes.
	VerdictNewAccountPending

	// VerdictRejectedDeleted: no profile exists for an account older than
	// the grace period. The record vanished deliberately; the caller must
	// sign out and clear entitlements.
	VerdictRejectedDeleted
)

func (v Verdict) String() string {
	switch v {
	case VerdictAuthenticated:
		return "authenticated"
	case VerdictAuthenticatedIncompleteOnboarding:
		return "authenticated_incomplete_onboarding"
	case VerdictRejectedCorrupted:
		return "rejected_corrupted"
	case VerdictNewAccountPending:
		return "new_account_pending"
	case VerdictRejectedDeleted:
		return "rejected_deleted"
	default:
		return "unknown"
	}
}

// Rejected reports whether the verdict requires a forced sign-out.
func (v Verdict) Rejected() bool {
	return v == VerdictRejectedCorrupted || v == VerdictRejectedDeleted
}
