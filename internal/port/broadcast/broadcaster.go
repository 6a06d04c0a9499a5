// Package broadcast defines the port for pushing real-time session
// events to connected log viewers.
package broadcast

import "context"

// Broadcaster fans a typed event out to every connected client.
type Broadcaster interface {
	// BroadcastEvent sends a typed event to all connected clients.
	BroadcastEvent(ctx context.Context, eventType string, payload any)
}
