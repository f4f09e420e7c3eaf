// Package delivery defines the contract every transport entry point of a
// booking service satisfies.
package delivery

import "context"

// Delivery is a long-running transport server, collected into the
// "deliveries" group and started by main.
type Delivery interface {
	Serve(ctx context.Context) error
}
