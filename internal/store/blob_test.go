package store

import (
	"testing"

	"github.com/dukerupert/weekcal/internal/database"
)

func setupBlobTestDB(t *testing.T) *BlobStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewBlobStore(db)
}

func testBlobs(t *testing.T, s Blobs) {
	t.Helper()

	_, ok, err := s.Get("missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Error("expected missing key to report ok=false")
	}

	if err := s.Set("k", "one"); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Overwrite
	if err := s.Set("k", "two"); err != nil {
		t.Fatalf("set again: %v", err)
	}

	val, ok, err := s.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to be present")
	}
	if val != "two" {
		t.Errorf("value = %q, want %q", val, "two")
	}
}

func TestBlobStore(t *testing.T) {
	testBlobs(t, setupBlobTestDB(t))
}

func TestMemoryBlobStore(t *testing.T) {
	testBlobs(t, NewMemoryBlobStore())
}

func TestBlobStoreEmptyValue(t *testing.T) {
	s := setupBlobTestDB(t)
	if err := s.Set("k", ""); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, ok, err := s.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || val != "" {
		t.Errorf("got (%q, %v), want (\"\", true)", val, ok)
	}
}
