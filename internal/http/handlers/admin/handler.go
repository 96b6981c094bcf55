package admin

import "github.com/freshmart/freshmart/internal/provider"

// Handler serves the management API: catalog maintenance and the
// full order archive. Routes using it sit behind the admin gate.
type Handler struct {
	*provider.Container
}

// New creates a management handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
