package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/tyte/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the name of the users collection.
const Collection = "users"

var (
	// ErrDuplicatePseudo is returned when the pseudo is already taken.
	// It is raised by the uniq_users_pseudo index, so it also covers two
	// registrations racing past the availability check.
	ErrDuplicatePseudo = errors.New("pseudo already used")

	// ErrNotInserted is returned when the store acknowledges an insert
	// without reporting an inserted id.
	ErrNotInserted = errors.New("insert reported no inserted id")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// PseudoExists reports whether a user with exactly this pseudo exists.
func (s *Store) PseudoExists(ctx context.Context, pseudo string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"pseudo": pseudo}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// Create assigns a fresh id and identical created/updated timestamps,
// then inserts the user.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = uuid.NewString()

	// BSON dates hold milliseconds; truncate so the returned value matches
	// what a later read would decode.
	now := time.Now().UTC().Truncate(time.Millisecond)
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := s.c.InsertOne(ctx, u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicatePseudo
		}
		return models.User{}, err
	}
	if res == nil || res.InsertedID == nil {
		return models.User{}, ErrNotInserted
	}
	return u, nil
}

// List returns up to limit users in natural order.
func (s *Store) List(ctx context.Context, limit int64) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.User, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
