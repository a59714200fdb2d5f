package repository

import "context"

// DeviceRepository resolves the push registration tokens of a user. Tokens
// are written by the mobile clients; this core only reads and prunes them.
type DeviceRepository interface {
	// TokensForUser returns all registration tokens for a user. An empty
	// slice means the user has no registered device.
	TokensForUser(ctx context.Context, userID string) ([]string, error)

	// RemoveToken deletes a registration token the push service reported as
	// invalid or unregistered.
	RemoveToken(ctx context.Context, userID, token string) error
}
