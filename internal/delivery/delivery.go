// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a serving surface started by the application runtime.
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
