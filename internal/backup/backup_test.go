package backup

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dukerupert/weekcal/internal/calendar"
	"github.com/dukerupert/weekcal/internal/model"
	"github.com/dukerupert/weekcal/internal/store"
)

func newSnapshots() (*store.MemoryBlobStore, *store.EventSnapshotStore) {
	blobs := store.NewMemoryBlobStore()
	return blobs, store.NewEventSnapshotStore(blobs, slog.Default())
}

func sampleEvents() []model.Event {
	return []model.Event{
		{ID: "a", Name: "Standup", Weekday: model.Monday, Time: "09:00", Modality: model.InPerson, Location: "Room 101", Attendees: []string{"Al"}, Category: model.CategoryWork},
		{ID: "b", Name: "Call", Weekday: model.Friday, Time: "15:00", Modality: model.Remote, RemoteURL: "https://x.test", Attendees: []string{}, Category: model.CategoryOther},
	}
}

func TestExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekcal.bak")

	_, src := newSnapshots()
	if err := src.Save(sampleEvents()); err != nil {
		t.Fatalf("save: %v", err)
	}

	n, err := Export(src, path, "hunter2")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if n != 2 {
		t.Errorf("exported %d events, want 2", n)
	}

	_, dst := newSnapshots()
	n, err = Import(dst, path, "hunter2")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Errorf("imported %d events, want 2", n)
	}

	got := dst.Load()
	if len(got) != 2 || got[0].ID != "a" || got[1].RemoteURL != "https://x.test" {
		t.Errorf("imported = %+v", got)
	}
}

func TestExportRequiresPassphrase(t *testing.T) {
	_, s := newSnapshots()
	_, err := Export(s, filepath.Join(t.TempDir(), "x"), "")
	if !errors.Is(err, ErrNoPassphrase) {
		t.Fatalf("err = %v, want ErrNoPassphrase", err)
	}
}

func TestImportWrongPassphraseKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekcal.bak")
	_, src := newSnapshots()
	src.Save(sampleEvents())
	if _, err := Export(src, path, "right"); err != nil {
		t.Fatalf("export: %v", err)
	}

	_, dst := newSnapshots()
	existing := sampleEvents()[:1]
	dst.Save(existing)

	if _, err := Import(dst, path, "wrong"); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
	if got := dst.Load(); len(got) != 1 {
		t.Errorf("stored events = %d, want 1 (unchanged)", len(got))
	}
}

func TestImportRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekcal.bak")
	sealed, err := Encrypt([]byte(`{"not":"an array"}`), "p")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	os.WriteFile(path, sealed, 0600)

	blobs, dst := newSnapshots()
	if _, err := Import(dst, path, "p"); err == nil {
		t.Fatal("expected error for a non-array backup")
	}
	if _, ok, _ := blobs.Get(store.EventsKey); ok {
		t.Error("nothing should be written")
	}
}

func TestImportRejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekcal.bak")
	sealed, _ := Encrypt([]byte(`[{"id":"x","name":"a"},{"id":"x","name":"b"}]`), "p")
	os.WriteFile(path, sealed, 0600)

	_, dst := newSnapshots()
	_, err := Import(dst, path, "p")
	if !errors.Is(err, calendar.ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}
}
