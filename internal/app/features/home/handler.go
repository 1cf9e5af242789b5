package home

import (
	"net/http"

	"github.com/dalemusser/tyte/internal/app/system/httpjson"
	"github.com/dalemusser/tyte/internal/domain/models"
)

// RootMessage confirms the API is up.
const RootMessage = "Tyte API is running"

// Handler serves the API root. It has no dependencies.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ServeRoot handles GET /api/. It never touches the store.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	httpjson.OK(w, models.Message{Message: RootMessage})
}
