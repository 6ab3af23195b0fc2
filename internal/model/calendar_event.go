package model

// Weekday is the lowercase English day name an event is placed under.
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// Weekdays lists every weekday in calendar column order.
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayRank = map[Weekday]int{
	Sunday:    0,
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
}

// Rank returns the column index of the weekday, or -1 if it is not a known day.
func (d Weekday) Rank() int {
	if r, ok := weekdayRank[d]; ok {
		return r
	}
	return -1
}

func (d Weekday) Valid() bool {
	return d.Rank() >= 0
}

// Modality says whether an event happens in a room or over a link.
type Modality string

const (
	InPerson Modality = "in-person"
	Remote   Modality = "remote"
)

func (m Modality) Valid() bool {
	return m == InPerson || m == Remote
}

type Category string

const (
	CategoryClass    Category = "class"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryOther    Category = "other"
)

var Categories = []Category{CategoryClass, CategoryWork, CategoryPersonal, CategoryOther}

func (c Category) Valid() bool {
	switch c {
	case CategoryClass, CategoryWork, CategoryPersonal, CategoryOther:
		return true
	}
	return false
}

// OrDefault maps an empty or unknown category to "other".
func (c Category) OrDefault() Category {
	if c.Valid() {
		return c
	}
	return CategoryOther
}

// Event is a single weekly calendar entry. Exactly one of Location and
// RemoteURL is populated, matching Modality.
type Event struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Weekday   Weekday  `json:"weekday"`
	Time      string   `json:"time"`
	Modality  Modality `json:"modality"`
	Location  string   `json:"location"`
	RemoteURL string   `json:"remoteUrl"`
	Attendees []string `json:"attendees"`
	Category  Category `json:"category"`
}

// Clone returns a copy of e that shares no memory with it.
func (e Event) Clone() Event {
	out := e
	if e.Attendees != nil {
		out.Attendees = append([]string(nil), e.Attendees...)
	}
	return out
}
