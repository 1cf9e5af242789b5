package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/tyte/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given pseudo and placeholder profile data.
func (f *Fixtures) CreateUser(ctx context.Context, pseudo string) models.User {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	user := models.User{
		ID:          uuid.NewString(),
		Pseudo:      pseudo,
		FirstName:   "Jean",
		LastName:    "Dupont",
		Height:      180,
		DateOfBirth: "1990-01-01",
		Gender:      "homme",
		BodyType:    "athlétique",
		City:        "Paris",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateStatusCheck inserts a status check for clientName.
func (f *Fixtures) CreateStatusCheck(ctx context.Context, clientName string) models.StatusCheck {
	f.t.Helper()

	sc := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := f.db.Collection("status_checks").InsertOne(ctx, sc); err != nil {
		f.t.Fatalf("failed to create test status check: %v", err)
	}
	return sc
}

// Registration returns a complete registration body for pseudo.
func Registration(pseudo string) map[string]any {
	return map[string]any{
		"pseudo":      pseudo,
		"firstName":   "Marie",
		"lastName":    "Curie",
		"height":      165,
		"dateOfBirth": "1995-11-07",
		"gender":      "femme",
		"bodyType":    "mince",
		"city":        "Lyon",
	}
}

// UserByPseudo loads the stored user with pseudo, failing the test if absent.
func (f *Fixtures) UserByPseudo(ctx context.Context, pseudo string) models.User {
	f.t.Helper()

	var u models.User
	if err := f.db.Collection("users").FindOne(ctx, bson.M{"pseudo": pseudo}).Decode(&u); err != nil {
		f.t.Fatalf("failed to load user %q: %v", pseudo, err)
	}
	return u
}

// CountUsers returns how many stored users have pseudo.
func (f *Fixtures) CountUsers(ctx context.Context, pseudo string) int64 {
	f.t.Helper()

	n, err := f.db.Collection("users").CountDocuments(ctx, bson.M{"pseudo": pseudo})
	if err != nil {
		f.t.Fatalf("failed to count users: %v", err)
	}
	return n
}
