package home

import "github.com/go-chi/chi/v5"

// Routes registers the root endpoint on the /api router.
func Routes(r chi.Router, h *Handler) {
	r.Get("/", h.ServeRoot)
}
