// internal/app/features/status/handler.go
package status

import (
	"net/http"

	apierrors "github.com/dalemusser/tyte/internal/app/features/errors"
	statuscheckstore "github.com/dalemusser/tyte/internal/app/store/statuschecks"
	"github.com/dalemusser/tyte/internal/app/system/httpjson"
	"github.com/dalemusser/tyte/internal/app/system/inputval"
	"github.com/dalemusser/tyte/internal/app/system/limits"
	"github.com/dalemusser/tyte/internal/app/system/metrics"
	"github.com/dalemusser/tyte/internal/app/system/timeouts"
	"github.com/dalemusser/tyte/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler records and lists status check pings.
//
// Store failures here are answered with the generic 500 detail; unlike
// the user endpoints, the cause is only logged.
type Handler struct {
	Checks *statuscheckstore.Store
	Log    *zap.Logger
	ErrLog *apierrors.ErrorLogger

	// ListLimit caps GET /api/status (limits.MaxListSize by default).
	ListLimit int64
}

// NewHandler constructs a status check Handler bound to the given Mongo database.
func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Checks:    statuscheckstore.New(db),
		Log:       logger,
		ErrLog:    errLog,
		ListLimit: limits.MaxListSize,
	}
}

// ServeCreate handles POST /api/status.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req models.StatusCheckCreate
	if err := inputval.DecodeJSON(w, r, &req); err != nil {
		h.ErrLog.LogValidation(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create status check")
	defer cancel()

	sc, err := h.Checks.Create(ctx, *req.ClientName)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "insert status check failed", err, apierrors.GenericServerError)
		return
	}

	metrics.StatusChecksCreated.Inc()
	httpjson.OK(w, sc)
}

// ServeList handles GET /api/status.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list status checks")
	defer cancel()

	checks, err := h.Checks.List(ctx, h.ListLimit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list status checks failed", err, apierrors.GenericServerError)
		return
	}
	httpjson.OK(w, checks)
}
