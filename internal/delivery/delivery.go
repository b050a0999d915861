// Package delivery holds the inbound adapters started by the application.
package delivery

import "context"

// Delivery is a long-running inbound adapter such as the HTTP API.
// Serve blocks until the adapter stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
