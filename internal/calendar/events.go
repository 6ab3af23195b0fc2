// Package calendar holds the in-memory collection of weekly events.
package calendar

import (
	"errors"
	"fmt"

	"github.com/dukerupert/weekcal/internal/model"
)

var (
	ErrDuplicateID = errors.New("duplicate event id")
	ErrNotFound    = errors.New("event not found")
)

// Events is an insertion-ordered collection of events keyed by id. It does
// not persist anything; callers save after mutating.
type Events struct {
	items []model.Event
}

// NewEvents seeds a collection from initial. Records whose id is already
// present are skipped and returned so the caller can report them.
func NewEvents(initial []model.Event) (*Events, []model.Event) {
	s := &Events{items: make([]model.Event, 0, len(initial))}
	var skipped []model.Event
	for _, ev := range initial {
		if err := s.Create(ev); err != nil {
			skipped = append(skipped, ev)
		}
	}
	return s, skipped
}

// List returns a copy of the collection in insertion order.
func (s *Events) List() []model.Event {
	out := make([]model.Event, len(s.items))
	for i, ev := range s.items {
		out[i] = ev.Clone()
	}
	return out
}

func (s *Events) Len() int {
	return len(s.items)
}

func (s *Events) Create(ev model.Event) error {
	if s.indexOf(ev.ID) >= 0 {
		return fmt.Errorf("create event %q: %w", ev.ID, ErrDuplicateID)
	}
	s.items = append(s.items, ev.Clone())
	return nil
}

// Update replaces the record with the given id. The stored record always
// keeps id, whatever ev.ID says.
func (s *Events) Update(id string, ev model.Event) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("update event %q: %w", id, ErrNotFound)
	}
	ev = ev.Clone()
	ev.ID = id
	s.items[i] = ev
	return nil
}

// Delete removes the record with the given id. Missing ids are ignored.
func (s *Events) Delete(id string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

func (s *Events) FindByID(id string) (model.Event, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Event{}, false
	}
	return s.items[i].Clone(), true
}

func (s *Events) indexOf(id string) int {
	for i, ev := range s.items {
		if ev.ID == id {
			return i
		}
	}
	return -1
}
