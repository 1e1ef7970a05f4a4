package cache

import (
	"advocacy-dispatch-service/internal/ports"
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqliteResolutionCacheRoundTrip(t *testing.T) {
	c := NewSqliteResolutionCache(openTestDB(t))
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "90210")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected miss on empty cache")
	}

	want := ports.Resolution{StateAbbrev: "CA", StateName: "California", City: "Beverly Hills"}
	if err := c.Put(ctx, "90210", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "90210")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected hit after put")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSqliteResolutionCacheOverwrite(t *testing.T) {
	c := NewSqliteResolutionCache(openTestDB(t))
	ctx := context.Background()

	if err := c.Put(ctx, "10001", ports.Resolution{StateAbbrev: "XX", StateName: "Wrong", City: "Wrong"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	want := ports.Resolution{StateAbbrev: "NY", StateName: "New York", City: "New York"}
	if err := c.Put(ctx, "10001", want); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := c.Get(ctx, "10001")
	if err != nil || !ok {
		t.Fatalf("get after overwrite: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSqliteResolutionCacheRejectsEmptyKey(t *testing.T) {
	c := NewSqliteResolutionCache(openTestDB(t))

	if err := c.Put(context.Background(), "  ", ports.Resolution{}); err == nil {
		t.Fatal("expected error for empty zip key")
	}
}
