package calendar

import (
	"errors"
	"testing"

	"github.com/dukerupert/weekcal/internal/model"
)

func standup() model.Event {
	return model.Event{
		ID:        "ev-1",
		Name:      "Standup",
		Weekday:   model.Monday,
		Time:      "09:00",
		Modality:  model.InPerson,
		Location:  "Room 101",
		Attendees: []string{"Al", "Bo"},
		Category:  model.CategoryWork,
	}
}

func TestCreateAndFindByID(t *testing.T) {
	s, _ := NewEvents(nil)

	if err := s.Create(standup()); err != nil {
		t.Fatalf("create event: %v", err)
	}

	got, ok := s.FindByID("ev-1")
	if !ok {
		t.Fatal("expected event to be found")
	}
	if got.Name != "Standup" {
		t.Errorf("name = %q, want %q", got.Name, "Standup")
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
}

func TestCreateDuplicateID(t *testing.T) {
	s, _ := NewEvents(nil)
	if err := s.Create(standup()); err != nil {
		t.Fatalf("create event: %v", err)
	}

	err := s.Create(standup())
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
}

func TestFindByIDNotFound(t *testing.T) {
	s, _ := NewEvents(nil)
	if _, ok := s.FindByID("missing"); ok {
		t.Error("expected missing event")
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s, _ := NewEvents(nil)
	for _, id := range []string{"c", "a", "b"} {
		ev := standup()
		ev.ID = id
		if err := s.Create(ev); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("got %d events, want 3", len(list))
	}
	for i, want := range []string{"c", "a", "b"} {
		if list[i].ID != want {
			t.Errorf("list[%d] = %q, want %q", i, list[i].ID, want)
		}
	}
}

func TestListIsSnapshot(t *testing.T) {
	s, _ := NewEvents([]model.Event{standup()})

	list := s.List()
	list[0].Name = "Changed"
	list[0].Attendees[0] = "Zed"

	got, _ := s.FindByID("ev-1")
	if got.Name != "Standup" {
		t.Errorf("name = %q, want %q", got.Name, "Standup")
	}
	if got.Attendees[0] != "Al" {
		t.Errorf("attendee = %q, want %q", got.Attendees[0], "Al")
	}
}

func TestUpdate(t *testing.T) {
	s, _ := NewEvents([]model.Event{standup()})

	ev := standup()
	ev.ID = "ignored"
	ev.Modality = model.Remote
	ev.Location = ""
	ev.RemoteURL = "https://x.test"

	if err := s.Update("ev-1", ev); err != nil {
		t.Fatalf("update event: %v", err)
	}

	got, ok := s.FindByID("ev-1")
	if !ok {
		t.Fatal("updated event should keep its id")
	}
	if got.RemoteURL != "https://x.test" {
		t.Errorf("remoteUrl = %q, want %q", got.RemoteURL, "https://x.test")
	}
	if got.Location != "" {
		t.Errorf("location = %q, want empty", got.Location)
	}
	if _, ok := s.FindByID("ignored"); ok {
		t.Error("update must not change the record id")
	}
}

func TestUpdateNotFound(t *testing.T) {
	s, _ := NewEvents(nil)
	err := s.Update("missing", standup())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if s.Len() != 0 {
		t.Errorf("len = %d, want 0", s.Len())
	}
}

func TestDelete(t *testing.T) {
	s, _ := NewEvents([]model.Event{standup()})

	s.Delete("ev-1")

	if _, ok := s.FindByID("ev-1"); ok {
		t.Error("expected event to be gone after delete")
	}
	if s.Len() != 0 {
		t.Errorf("len = %d, want 0", s.Len())
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	s, _ := NewEvents([]model.Event{standup()})
	before := s.List()

	s.Delete("missing")

	after := s.List()
	if len(after) != len(before) {
		t.Fatalf("len = %d, want %d", len(after), len(before))
	}
	if after[0].ID != before[0].ID || after[0].Name != before[0].Name {
		t.Errorf("contents changed: %+v", after[0])
	}
}

func TestNewEventsSkipsDuplicates(t *testing.T) {
	a := standup()
	b := standup()
	b.Name = "Second"

	s, skipped := NewEvents([]model.Event{a, b})
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	if len(skipped) != 1 || skipped[0].Name != "Second" {
		t.Errorf("skipped = %+v, want the second record", skipped)
	}
}
