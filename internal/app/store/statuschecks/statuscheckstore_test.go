package statuscheckstore_test

import (
	"testing"
	"time"

	statuscheckstore "github.com/dalemusser/tyte/internal/app/store/statuschecks"
	"github.com/dalemusser/tyte/internal/testutil"
	"github.com/google/uuid"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := statuscheckstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before := time.Now().UTC().Truncate(time.Millisecond)
	sc, err := store.Create(ctx, "uptime-monitor")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := uuid.Parse(sc.ID); err != nil {
		t.Errorf("expected UUID id, got %q", sc.ID)
	}
	if sc.ClientName != "uptime-monitor" {
		t.Errorf("client_name: got %q, want %q", sc.ClientName, "uptime-monitor")
	}
	if sc.Timestamp.Before(before) {
		t.Errorf("timestamp %v earlier than call time %v", sc.Timestamp, before)
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := statuscheckstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 3; i++ {
		fixtures.CreateStatusCheck(ctx, "uptime-monitor")
	}
	created, err := store.Create(ctx, "other")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	all, err := store.List(ctx, 1000)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 status checks, got %d", len(all))
	}

	found := false
	for _, sc := range all {
		if sc.ID == created.ID {
			found = true
			if !sc.Timestamp.Equal(created.Timestamp) {
				t.Errorf("stored timestamp %v != returned %v", sc.Timestamp, created.Timestamp)
			}
		}
	}
	if !found {
		t.Error("created status check missing from list")
	}

	limited, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1, got %d", len(limited))
	}
}
