// internal/app/features/users/checkpseudo.go
package users

import (
	"net/http"

	"github.com/dalemusser/tyte/internal/app/system/httpjson"
	"github.com/dalemusser/tyte/internal/app/system/inputval"
	"github.com/dalemusser/tyte/internal/app/system/timeouts"
	"github.com/dalemusser/tyte/internal/domain/models"
)

// ServeCheckPseudo handles POST /api/check-pseudo.
//
//	{ "pseudo": "..." } -> { "available": bool, "message": "..." }
func (h *Handler) ServeCheckPseudo(w http.ResponseWriter, r *http.Request) {
	var req models.CheckPseudoRequest
	if err := inputval.DecodeJSON(w, r, &req); err != nil {
		h.ErrLog.LogValidation(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "check pseudo")
	defer cancel()

	taken, err := h.Users.PseudoExists(ctx, *req.Pseudo)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "pseudo lookup failed", err, err.Error())
		return
	}

	if taken {
		httpjson.OK(w, models.CheckPseudoResponse{Available: false, Message: MsgPseudoTaken})
		return
	}
	httpjson.OK(w, models.CheckPseudoResponse{Available: true, Message: MsgPseudoAvailable})
}
