// Package form binds the event editor's input fields to model.Event values.
//
// A Form plays the part of the editor's input surface: it holds the raw text
// of every field, which of the location/remote URL fields is showing, and
// the inline error and delete affordance state the page draws.
package form

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/dukerupert/weekcal/internal/model"
	"github.com/google/uuid"
)

// Field is the input name of one editor field.
type Field string

const (
	FieldName      Field = "event_name"
	FieldWeekday   Field = "event_weekday"
	FieldTime      Field = "event_time"
	FieldModality  Field = "event_modality"
	FieldLocation  Field = "event_location"
	FieldRemoteURL Field = "event_remote_url"
	FieldAttendees Field = "event_attendees"
	FieldCategory  Field = "event_category"
)

// Fields lists the editor fields in the order they appear on the form.
var Fields = []Field{
	FieldName,
	FieldWeekday,
	FieldTime,
	FieldModality,
	FieldLocation,
	FieldRemoteURL,
	FieldAttendees,
	FieldCategory,
}

var timeRegexp = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Form struct {
	values map[Field]string

	remote bool

	errorShown  bool
	deleteShown bool
	invalid     Field

	newID func() string
}

// New returns a form in its reset state.
func New() *Form {
	f := &Form{newID: uuid.NewString}
	f.Reset()
	return f
}

// WithIDFunc replaces the id generator used by Read for new events.
func (f *Form) WithIDFunc(fn func() string) *Form {
	f.newID = fn
	return f
}

func (f *Form) Value(field Field) string {
	return f.values[field]
}

// Set writes a raw field value, as if typed by the user.
func (f *Form) Set(field Field, value string) {
	f.values[field] = value
}

// Bind copies posted values into the form. A posted modality is applied
// first, and fields it hides stay cleared.
func (f *Form) Bind(values url.Values) {
	if values.Has(string(FieldModality)) {
		f.values[FieldModality] = values.Get(string(FieldModality))
		f.ApplyModalityRules(model.Modality(f.values[FieldModality]))
	}
	for _, field := range Fields {
		if field == FieldModality || !values.Has(string(field)) {
			continue
		}
		if f.Hidden(field) {
			continue
		}
		f.values[field] = values.Get(string(field))
	}
}

// ApplyModalityRules shows the field that matches modality, makes it
// required, and hides and clears the other one.
func (f *Form) ApplyModalityRules(modality model.Modality) {
	if modality == model.Remote {
		f.remote = true
		f.values[FieldLocation] = ""
		return
	}
	f.remote = false
	f.values[FieldRemoteURL] = ""
}

func (f *Form) Hidden(field Field) bool {
	switch field {
	case FieldLocation:
		return f.remote
	case FieldRemoteURL:
		return !f.remote
	}
	return false
}

func (f *Form) Required(field Field) bool {
	switch field {
	case FieldName, FieldWeekday, FieldTime, FieldModality, FieldCategory:
		return true
	case FieldLocation, FieldRemoteURL:
		return !f.Hidden(field)
	}
	return false
}

// Read builds an event from the current field values. A new id is generated
// when existingID is empty.
func (f *Form) Read(existingID string) model.Event {
	id := existingID
	if id == "" {
		id = f.newID()
	}

	modality := model.Modality(f.values[FieldModality])
	ev := model.Event{
		ID:        id,
		Name:      strings.TrimSpace(f.values[FieldName]),
		Weekday:   model.Weekday(f.values[FieldWeekday]),
		Time:      f.values[FieldTime],
		Modality:  modality,
		Attendees: ParseAttendees(f.values[FieldAttendees]),
		Category:  model.Category(f.values[FieldCategory]),
	}
	if modality == model.InPerson {
		ev.Location = strings.TrimSpace(f.values[FieldLocation])
	}
	if modality == model.Remote {
		ev.RemoteURL = strings.TrimSpace(f.values[FieldRemoteURL])
	}
	return ev
}

// Write fills the fields from ev. Modality rules are applied before the
// location and remote URL are set so the visible field keeps its value.
func (f *Form) Write(ev model.Event) {
	f.values[FieldName] = ev.Name
	f.values[FieldWeekday] = string(ev.Weekday)
	f.values[FieldTime] = ev.Time
	f.values[FieldModality] = string(ev.Modality)
	f.values[FieldCategory] = string(ev.Category.OrDefault())

	f.ApplyModalityRules(ev.Modality)

	f.values[FieldLocation] = ev.Location
	f.values[FieldRemoteURL] = ev.RemoteURL
	f.values[FieldAttendees] = strings.Join(ev.Attendees, ", ")
}

// Validate checks every constraint in form order. On failure the error
// indicator is shown, the first bad field is focused, and false is returned.
func (f *Form) Validate() bool {
	f.invalid = ""
	for _, field := range Fields {
		if !f.fieldValid(field) {
			f.invalid = field
			break
		}
	}
	f.errorShown = f.invalid != ""
	return !f.errorShown
}

func (f *Form) fieldValid(field Field) bool {
	if f.Hidden(field) {
		return true
	}
	raw := f.values[field]
	if f.Required(field) && strings.TrimSpace(raw) == "" {
		return false
	}

	switch field {
	case FieldWeekday:
		return model.Weekday(raw).Valid()
	case FieldTime:
		return timeRegexp.MatchString(raw)
	case FieldModality:
		return model.Modality(raw).Valid()
	case FieldCategory:
		return model.Category(raw).Valid()
	case FieldRemoteURL:
		return isURL(strings.TrimSpace(raw))
	}
	return true
}

// Reset clears every field to its default, hides the error indicator and
// the delete affordance, and applies the in-person rules.
func (f *Form) Reset() {
	f.values = map[Field]string{
		FieldWeekday:  string(model.Sunday),
		FieldModality: string(model.InPerson),
		FieldCategory: string(model.CategoryOther),
	}
	f.errorShown = false
	f.deleteShown = false
	f.invalid = ""
	f.ApplyModalityRules(model.InPerson)
}

func (f *Form) ShowDelete() {
	f.deleteShown = true
}

func (f *Form) DeleteShown() bool {
	return f.deleteShown
}

func (f *Form) ErrorShown() bool {
	return f.errorShown
}

// Focus returns the field that failed validation, if any.
func (f *Form) Focus() Field {
	return f.invalid
}

// ParseAttendees splits a comma-separated list, trimming names and dropping
// empty entries. The result is never nil.
func ParseAttendees(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
