// Package delivery defines the entry points through which the outside
// world reaches the application.
package delivery

import "context"

// Delivery is implemented by every transport that can serve the
// application, such as the HTTP server.
type Delivery interface {
	// Serve blocks while handling requests until the context is
	// cancelled or the transport is shut down.
	Serve(ctx context.Context) error
}
