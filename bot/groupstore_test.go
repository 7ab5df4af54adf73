package bot

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/m3rciful/schedulebot/core/bootstrap"
	"github.com/m3rciful/schedulebot/schedule"
)

const sqliteSchema = `CREATE TABLE student_groups (
	id          TEXT PRIMARY KEY,
	description TEXT NOT NULL DEFAULT '',
	thumb_url   TEXT NOT NULL DEFAULT '',
	position    INTEGER NOT NULL DEFAULT 0
)`

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Every pooled connection would get its own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.Exec(sqliteSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return db
}

func TestGroupStoreUpsertKeepsOrder(t *testing.T) {
	db := newTestDB(t)
	store := NewGroupStore(db)
	ctx := context.Background()

	if err := store.Upsert(ctx, []schedule.Group{
		{ID: "кббо-12-24", Description: "old"},
		{ID: "ИКБО-05-22", Thumb: "https://example.org/t.jpg"},
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := store.Upsert(ctx, []schedule.Group{
		{ID: "ИКБО-05-22", Thumb: "https://example.org/t.jpg"},
		{ID: "КББО-12-24", Description: "new"},
	}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	groups, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []schedule.Group{
		{ID: "ИКБО-05-22", Thumb: "https://example.org/t.jpg"},
		{ID: "КББО-12-24", Description: "new"},
	}
	if len(groups) != len(want) {
		t.Fatalf("groups = %+v", groups)
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Fatalf("groups[%d] = %+v, want %+v", i, groups[i], want[i])
		}
	}
}

func TestGroupStoreUpsertDropsRemovedGroups(t *testing.T) {
	store := NewGroupStore(newTestDB(t))
	ctx := context.Background()

	if err := store.Upsert(ctx, []schedule.Group{{ID: "A-1"}, {ID: "B-2"}, {ID: "C-3"}}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := store.Upsert(ctx, []schedule.Group{{ID: "c-3"}, {ID: "A-1"}}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	groups, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(groups) != 2 || groups[0].ID != "C-3" || groups[1].ID != "A-1" {
		t.Fatalf("groups = %+v", groups)
	}

	if err := store.Upsert(ctx, nil); err != nil {
		t.Fatalf("empty Upsert: %v", err)
	}
	if groups, _ := store.List(ctx); len(groups) != 2 {
		t.Fatalf("empty upsert changed the table: %+v", groups)
	}
}

func TestGroupSeederRejectsForeignStorage(t *testing.T) {
	seeder := GroupSeeder(schedule.DefaultGroups())
	if err := seeder.Seed(context.Background(), bootstrap.Storage(nil)); err == nil {
		t.Fatal("expected error for nil storage")
	}

	db := newTestDB(t)
	if err := seeder.Seed(context.Background(), db); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	groups, err := NewGroupStore(db).List(context.Background())
	if err != nil || len(groups) != 1 || groups[0].ID != "КББО-12-24" {
		t.Fatalf("groups = %+v, err = %v", groups, err)
	}
}
