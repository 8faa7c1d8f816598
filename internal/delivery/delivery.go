// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a long-running transport front (HTTP today) started by the
// application runner and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
