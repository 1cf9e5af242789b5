// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes registers the user endpoints on r, which is the /api router.
// They sit at the top of /api rather than under a shared prefix, so the
// feature adds routes instead of returning a subrouter to mount.
func Routes(r chi.Router, h *Handler) {
	r.Post("/check-pseudo", h.ServeCheckPseudo)
	r.Post("/register", h.ServeRegister)
	r.Get("/users", h.ServeList)
}
