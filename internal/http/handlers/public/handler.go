package public

import "github.com/freshmart/freshmart/internal/provider"

// Handler serves the storefront API: catalog browsing, carts, checkout
// and account endpoints.
type Handler struct {
	*provider.Container
}

// New creates a storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
