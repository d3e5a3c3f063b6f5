// Package delivery defines the contract every ingress (HTTP, workers) fulfills.
package delivery

import "context"

// Delivery is a long-running server started by the application root.
type Delivery interface {
	// Serve blocks until the server stops or the context is canceled.
	Serve(ctx context.Context) error
}
