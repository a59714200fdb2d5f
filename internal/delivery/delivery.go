// Package delivery defines the contract every transport entrypoint
// implements.
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	Serve(ctx context.Context) error
}
