// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running server started by the application bootstrap.
type Delivery interface {
	Serve(ctx context.Context) error
}
