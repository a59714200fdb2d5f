package service

// ConnectivityMonitor observes network reachability. Connectivity loss is
// orthogonal to authentication: consumers treat the session as indeterminate
// while offline but never destroy session state because of it.
type ConnectivityMonitor interface {
	// Online reports the last observed reachability state.
	Online() bool

	// OnChange registers a callback invoked whenever reachability flips.
	// The returned unsubscribe is idempotent.
	OnChange(callback func(online bool)) (unsubscribe func())
}
