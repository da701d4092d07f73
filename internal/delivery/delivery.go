// Package delivery holds the transports that expose the usecases.
package delivery

import "context"

// Delivery is a server started by the composition root. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
