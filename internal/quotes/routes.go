package quotes

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes attaches the calculation endpoints under the caller's prefix.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/quotations", func(r chi.Router) {
		r.Post("/calculate", h.Calculate)
		r.Post("/validate", h.Validate)
	})
}
