package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dukerupert/weekcal/internal/model"
)

// EventsKey is the blob key the whole event list is stored under.
const EventsKey = "csci3308_lab4_events_v1"

// EventSnapshotStore saves and loads the full event list as one JSON array.
// Every save overwrites the previous snapshot.
type EventSnapshotStore struct {
	blobs  Blobs
	logger *slog.Logger
}

func NewEventSnapshotStore(blobs Blobs, logger *slog.Logger) *EventSnapshotStore {
	return &EventSnapshotStore{blobs: blobs, logger: logger}
}

func (s *EventSnapshotStore) Save(events []model.Event) error {
	if events == nil {
		events = []model.Event{}
	}
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}
	if err := s.blobs.Set(EventsKey, string(data)); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	return nil
}

// Load returns the stored events. A missing, unreadable, or malformed
// snapshot yields an empty list; the cause is logged, never returned.
func (s *EventSnapshotStore) Load() []model.Event {
	raw, ok, err := s.blobs.Get(EventsKey)
	if err != nil {
		s.logger.Warn("read stored events", "error", err)
		return []model.Event{}
	}
	if !ok {
		return []model.Event{}
	}

	events, err := DecodeEvents([]byte(raw))
	if err != nil {
		s.logger.Warn("discarding stored events", "error", err)
		return []model.Event{}
	}
	return events
}

// DecodeEvents parses a JSON array of events. Anything other than an array
// is an error. Missing categories become "other" and missing attendee lists
// become empty.
func DecodeEvents(data []byte) ([]model.Event, error) {
	var events []model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	if events == nil {
		return nil, fmt.Errorf("decode events: not an array")
	}
	for i := range events {
		events[i].Category = events[i].Category.OrDefault()
		if events[i].Attendees == nil {
			events[i].Attendees = []string{}
		}
	}
	return events, nil
}
