// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a transport server that can be started by the application.
// Shutdown is handled through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
