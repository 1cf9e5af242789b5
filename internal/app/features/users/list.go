// internal/app/features/users/list.go
package users

import (
	"net/http"

	"github.com/dalemusser/tyte/internal/app/system/httpjson"
	"github.com/dalemusser/tyte/internal/app/system/timeouts"
)

// ServeList handles GET /api/users. It returns at most h.ListLimit users
// in store order and is meant for diagnostics, not pagination.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list users")
	defer cancel()

	users, err := h.Users.List(ctx, h.ListLimit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list users failed", err, err.Error())
		return
	}
	httpjson.OK(w, users)
}
