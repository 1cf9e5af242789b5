// internal/app/features/users/handler.go
package users

import (
	apierrors "github.com/dalemusser/tyte/internal/app/features/errors"
	userstore "github.com/dalemusser/tyte/internal/app/store/users"
	"github.com/dalemusser/tyte/internal/app/system/limits"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Messages returned to the registration frontend.
const (
	MsgPseudoTaken     = "Ce pseudo est déjà utilisé"
	MsgPseudoAvailable = "Ce pseudo est disponible"
	MsgCreateFailed    = "Failed to create user"
)

// Handler serves pseudo checks, registration and the user list.
type Handler struct {
	Users  *userstore.Store
	Log    *zap.Logger
	ErrLog *apierrors.ErrorLogger

	// ListLimit caps GET /api/users (limits.MaxListSize by default).
	ListLimit int64
}

// NewHandler constructs a users Handler bound to the given Mongo database.
func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:     userstore.New(db),
		Log:       logger,
		ErrLog:    errLog,
		ListLimit: limits.MaxListSize,
	}
}
