package indexes_test

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/tyte/internal/app/system/indexes"
	"github.com/dalemusser/tyte/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func indexNames(t *testing.T, db *mongo.Database, coll string) map[string]bson.M {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := db.Collection(coll).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	out := make(map[string]bson.M)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			out[name] = idx
		}
	}
	return out
}

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	users := indexNames(t, db, "users")
	for _, name := range []string{"uniq_users_pseudo", "uniq_users_id"} {
		idx, ok := users[name]
		if !ok {
			t.Errorf("expected index %q on users", name)
			continue
		}
		if u, _ := idx["unique"].(bool); !u {
			t.Errorf("expected index %q to be unique", name)
		}
	}

	checks := indexNames(t, db, "status_checks")
	for _, name := range []string{"uniq_status_checks_id", "idx_status_checks_timestamp"} {
		if _, ok := checks[name]; !ok {
			t.Errorf("expected index %q on status_checks", name)
		}
	}
}

func TestEnsureAll_UpgradesNonUniqueIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// An older deployment may carry a plain index on pseudo under another name.
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pseudo", Value: 1}},
		Options: options.Index().SetName("pseudo_1"),
	})
	if err != nil {
		t.Fatalf("create legacy index: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	users := indexNames(t, db, "users")
	if _, ok := users["pseudo_1"]; ok {
		t.Error("expected legacy index to be replaced")
	}
	if u, _ := users["uniq_users_pseudo"]["unique"].(bool); !u {
		t.Error("expected uniq_users_pseudo to be unique")
	}
}

func TestEnsureAll_DuplicatesPresent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now()
	for i := 0; i < 2; i++ {
		_, err := db.Collection("users").InsertOne(ctx, bson.M{"id": i, "pseudo": "twin", "createdAt": now})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	err := indexes.EnsureAll(ctx, db)
	if err == nil {
		t.Fatal("expected EnsureAll to fail with duplicate pseudos present")
	}
	if !strings.Contains(err.Error(), "uniq_users_pseudo") {
		t.Errorf("error should name the index, got %v", err)
	}
}
