// Package render projects the event collection into the weekly view: one
// column per weekday, each holding the cards for that day in time order.
//
// Projection is pure. The HTTP layer turns a Week into HTML; nothing here
// knows about templates or requests.
package render

import (
	"sort"
	"strings"

	"github.com/dukerupert/weekcal/internal/model"
)

// Where is the location line of a card. URL is set only for remote events
// that have a link.
type Where struct {
	Text string
	URL  string
}

type Card struct {
	ID        string
	Header    string
	Category  model.Category
	Where     Where
	Attendees string
}

// CSSClass is the category style hook, e.g. "cat-work".
func (c Card) CSSClass() string {
	return "cat-" + string(c.Category)
}

// Lines returns the card's visible text lines, top to bottom.
func (c Card) Lines() []string {
	return []string{c.Header, string(c.Category), c.Where.Text, c.Attendees}
}

func (c Card) String() string {
	return strings.Join(c.Lines(), " / ")
}

type Column struct {
	Day   model.Weekday
	Cards []Card
}

// Week holds the seven columns, sunday first.
type Week struct {
	Columns []Column
}

// Column returns the column for day. Unknown days yield an empty column.
func (w Week) Column(day model.Weekday) Column {
	for _, c := range w.Columns {
		if c.Day == day {
			return c
		}
	}
	return Column{Day: day}
}

// Len is the total number of cards across all columns.
func (w Week) Len() int {
	n := 0
	for _, c := range w.Columns {
		n += len(c.Cards)
	}
	return n
}

// Sorted returns a copy of events ordered by weekday then time. Weekdays are
// ordered by rank, not by name, so sunday sorts before monday.
func Sorted(events []model.Event) []model.Event {
	out := append([]model.Event(nil), events...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Weekday.Rank(), out[j].Weekday.Rank()
		if ri != rj {
			return ri < rj
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// Project builds the weekly view from a snapshot of the collection. Events
// with an unknown weekday have no column and are left out.
func Project(events []model.Event) Week {
	w := Week{Columns: make([]Column, len(model.Weekdays))}
	for i, day := range model.Weekdays {
		w.Columns[i] = Column{Day: day, Cards: []Card{}}
	}

	for _, ev := range Sorted(events) {
		rank := ev.Weekday.Rank()
		if rank < 0 {
			continue
		}
		w.Columns[rank].Cards = append(w.Columns[rank].Cards, NewCard(ev))
	}
	return w
}

func NewCard(ev model.Event) Card {
	return Card{
		ID:        ev.ID,
		Header:    ev.Time + " — " + ev.Name,
		Category:  ev.Category.OrDefault(),
		Where:     where(ev),
		Attendees: strings.Join(ev.Attendees, ", "),
	}
}

func where(ev model.Event) Where {
	if ev.Modality == model.Remote {
		if ev.RemoteURL != "" {
			return Where{Text: "Remote link", URL: ev.RemoteURL}
		}
		return Where{Text: "Remote"}
	}
	if ev.Location == "" {
		return Where{Text: "In Person"}
	}
	return Where{Text: ev.Location}
}
