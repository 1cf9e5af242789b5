// internal/app/features/users/register.go
package users

import (
	"errors"
	"net/http"

	userstore "github.com/dalemusser/tyte/internal/app/store/users"
	"github.com/dalemusser/tyte/internal/app/system/httpjson"
	"github.com/dalemusser/tyte/internal/app/system/inputval"
	"github.com/dalemusser/tyte/internal/app/system/metrics"
	"github.com/dalemusser/tyte/internal/app/system/timeouts"
	"github.com/dalemusser/tyte/internal/domain/models"
	"go.uber.org/zap"
)

// ServeRegister handles POST /api/register.
//
// The availability check answers the common conflict without a write;
// the unique index on pseudo catches registrations that race past it.
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	var req models.UserRegistration
	if err := inputval.DecodeJSON(w, r, &req); err != nil {
		h.ErrLog.LogValidation(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "register user")
	defer cancel()

	taken, err := h.Users.PseudoExists(ctx, *req.Pseudo)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "pseudo lookup failed", err, err.Error())
		return
	}
	if taken {
		h.conflict(w, r)
		return
	}

	user, err := h.Users.Create(ctx, req.ToUser())
	switch {
	case errors.Is(err, userstore.ErrDuplicatePseudo):
		h.conflict(w, r)
		return
	case errors.Is(err, userstore.ErrNotInserted):
		h.ErrLog.LogServerError(w, r, "insert user failed", err, MsgCreateFailed)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "insert user failed", err, err.Error())
		return
	}

	metrics.UsersRegistered.Inc()
	h.Log.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("pseudo", user.Pseudo))

	httpjson.OK(w, user)
}

func (h *Handler) conflict(w http.ResponseWriter, r *http.Request) {
	metrics.PseudoConflicts.Inc()
	h.ErrLog.LogBadRequest(w, r, "pseudo already used", userstore.ErrDuplicatePseudo, MsgPseudoTaken)
}
