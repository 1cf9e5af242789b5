// internal/app/store/statuschecks/statuscheckstore.go
package statuscheckstore

import (
	"context"
	"time"

	"github.com/dalemusser/tyte/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the name of the status checks collection.
const Collection = "status_checks"

// Store persists liveness pings.
type Store struct {
	c *mongo.Collection
}

// New creates a status checks Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create records a ping from clientName with a fresh id and the current time.
func (s *Store) Create(ctx context.Context, clientName string) (models.StatusCheck, error) {
	sc := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := s.c.InsertOne(ctx, sc); err != nil {
		return models.StatusCheck{}, err
	}
	return sc, nil
}

// List returns up to limit status checks in natural order.
func (s *Store) List(ctx context.Context, limit int64) ([]models.StatusCheck, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.StatusCheck, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
