package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/dukerupert/weekcal/internal/app"
	"github.com/dukerupert/weekcal/internal/form"
	"github.com/dukerupert/weekcal/internal/model"
	"github.com/dukerupert/weekcal/internal/render"
)

// modal records whether the editor dialog is open so the page can draw it.
type modal struct {
	open bool
}

func (m *modal) Show() { m.open = true }
func (m *modal) Hide() { m.open = false }

// CalendarHandler serves the weekly editor. Requests are handled one at a
// time, matching the single-threaded event loop the controller expects.
type CalendarHandler struct {
	mu     sync.Mutex
	ctrl   *app.Controller
	dialog *modal
	pages  *pages
	logger *slog.Logger
}

func NewCalendarHandler(snapshots app.Snapshots, logger *slog.Logger) *CalendarHandler {
	dialog := &modal{}
	ctrl := app.NewController(snapshots, dialog, form.New(), logger)
	ctrl.Start()
	return &CalendarHandler{
		ctrl:   ctrl,
		dialog: dialog,
		pages:  newPages(),
		logger: logger,
	}
}

func (h *CalendarHandler) Page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	h.mu.Lock()
	data := h.pageData()
	h.mu.Unlock()

	h.pages.render(w, h.logger, "layout.html", data)
}

// Create handles the create button.
func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.ctrl.OpenCreate()
	h.mu.Unlock()

	redirectHome(w, r)
}

// Edit handles a click on an event card.
func (h *CalendarHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	h.mu.Lock()
	found := h.ctrl.OpenEdit(id)
	h.mu.Unlock()

	if !found {
		h.logger.Debug("edit of unknown event", "id", id)
	}
	redirectHome(w, r)
}

// Save, Delete and Modality only act while the dialog is open. A form
// resubmitted after the dialog closed is ignored.
func (h *CalendarHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	if !h.dialog.open {
		h.mu.Unlock()
		h.logger.Debug("save ignored, dialog closed")
		redirectHome(w, r)
		return
	}
	h.ctrl.Form().Bind(r.PostForm)
	_, err := h.ctrl.Save()
	h.mu.Unlock()

	if err != nil {
		h.logger.Error("failed to save event", "error", err)
		http.Error(w, "failed to save event", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if !h.dialog.open {
		h.mu.Unlock()
		h.logger.Debug("delete ignored, dialog closed")
		redirectHome(w, r)
		return
	}
	err := h.ctrl.Delete()
	h.mu.Unlock()

	if err != nil {
		h.logger.Error("failed to delete event", "error", err)
		http.Error(w, "failed to delete event", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

// Modality re-applies the location/remote URL rules while the user is
// still editing. Other posted fields are kept so nothing typed is lost.
func (h *CalendarHandler) Modality(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	if h.dialog.open {
		h.ctrl.Form().Bind(r.PostForm)
		if r.PostForm.Has(string(form.FieldModality)) {
			h.ctrl.ChangeModality(r.PostForm.Get(string(form.FieldModality)))
		}
	}
	h.mu.Unlock()

	redirectHome(w, r)
}

func (h *CalendarHandler) CloseDialog(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.dialog.Hide()
	h.mu.Unlock()

	redirectHome(w, r)
}

// List returns the events in insertion order.
func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	events := h.ctrl.Events()
	h.mu.Unlock()

	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *CalendarHandler) pageData() pageData {
	f := h.ctrl.Form()
	return pageData{
		Title: "Weekly Calendar",
		Week:  h.ctrl.View(),
		Dialog: dialogView{
			Open:        h.dialog.open,
			Title:       h.ctrl.Title(),
			ErrorShown:  f.ErrorShown(),
			DeleteShown: f.DeleteShown(),
			Fields:      fieldViews(f),
		},
		Weekdays:   model.Weekdays,
		Categories: model.Categories,
		Modalities: []model.Modality{model.InPerson, model.Remote},
	}
}

type pageData struct {
	Title      string
	Week       render.Week
	Dialog     dialogView
	Weekdays   []model.Weekday
	Categories []model.Category
	Modalities []model.Modality
}

type dialogView struct {
	Open        bool
	Title       string
	ErrorShown  bool
	DeleteShown bool
	Fields      map[string]fieldView
}

type fieldView struct {
	Name     string
	Value    string
	Hidden   bool
	Required bool
	Focus    bool
}

func fieldViews(f *form.Form) map[string]fieldView {
	views := make(map[string]fieldView, len(form.Fields))
	for _, field := range form.Fields {
		views[string(field)] = fieldView{
			Name:     string(field),
			Value:    f.Value(field),
			Hidden:   f.Hidden(field),
			Required: f.Required(field),
			Focus:    f.Focus() == field,
		}
	}
	return views
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
