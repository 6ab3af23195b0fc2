// Package app wires editor actions to the form, the event collection, the
// snapshot store, and the weekly view.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dukerupert/weekcal/internal/calendar"
	"github.com/dukerupert/weekcal/internal/form"
	"github.com/dukerupert/weekcal/internal/model"
	"github.com/dukerupert/weekcal/internal/render"
)

const (
	TitleCreate = "Create Event"
	TitleEdit   = "Edit Event"
)

// Dialog is the editor modal. The controller only opens and closes it.
type Dialog interface {
	Show()
	Hide()
}

// Snapshots persists the whole event list.
type Snapshots interface {
	Save(events []model.Event) error
	Load() []model.Event
}

// Mode is either Creating or Editing.
type Mode interface {
	isMode()
}

// Creating means a save appends a new event.
type Creating struct{}

// Editing means a save replaces the event with ID.
type Editing struct {
	ID string
}

func (Creating) isMode() {}
func (Editing) isMode()  {}

// Controller owns the editor state. It is not safe for concurrent use;
// callers serialize actions the way a UI event loop would.
type Controller struct {
	events    *calendar.Events
	form      *form.Form
	snapshots Snapshots
	dialog    Dialog
	logger    *slog.Logger

	mode  Mode
	title string
	view  render.Week
}

func NewController(snapshots Snapshots, dialog Dialog, f *form.Form, logger *slog.Logger) *Controller {
	events, _ := calendar.NewEvents(nil)
	return &Controller{
		events:    events,
		form:      f,
		snapshots: snapshots,
		dialog:    dialog,
		logger:    logger,
		mode:      Creating{},
		title:     TitleCreate,
		view:      render.Project(nil),
	}
}

// Start loads the stored events and renders them once.
func (c *Controller) Start() {
	events, skipped := calendar.NewEvents(c.snapshots.Load())
	for _, ev := range skipped {
		c.logger.Warn("skipping stored event with duplicate id", "id", ev.ID)
	}
	c.events = events
	c.form.ApplyModalityRules(model.InPerson)
	c.render()
	c.logger.Info("calendar loaded", "events", c.events.Len())
}

func (c *Controller) OpenCreate() {
	c.reset()
	c.title = TitleCreate
	c.dialog.Show()
}

// OpenEdit opens the editor on the current version of the event with id.
// It reports false and does nothing if there is no such event.
func (c *Controller) OpenEdit(id string) bool {
	ev, ok := c.events.FindByID(id)
	if !ok {
		return false
	}
	c.reset()
	c.mode = Editing{ID: id}
	c.title = TitleEdit
	c.form.ShowDelete()
	c.form.Write(ev)
	c.dialog.Show()
	return true
}

// Save validates the form and, if it passes, creates or updates the event,
// persists, re-renders, and closes the dialog. A form that fails validation
// returns false with no error and leaves everything else untouched.
func (c *Controller) Save() (bool, error) {
	if !c.form.Validate() {
		c.logger.Debug("save blocked by validation", "field", c.form.Focus())
		return false, nil
	}

	switch m := c.mode.(type) {
	case Editing:
		ev := c.form.Read(m.ID)
		if err := c.events.Update(m.ID, ev); err != nil {
			if !errors.Is(err, calendar.ErrNotFound) {
				return false, err
			}
			c.logger.Debug("edited event no longer exists", "id", m.ID)
		}
	default:
		ev := c.form.Read("")
		if err := c.events.Create(ev); err != nil {
			return false, err
		}
	}

	if err := c.persist(); err != nil {
		return false, err
	}
	c.render()
	c.dialog.Hide()
	return true, nil
}

// Delete removes the event being edited. It does nothing when the editor
// is in create mode.
func (c *Controller) Delete() error {
	m, ok := c.mode.(Editing)
	if !ok {
		return nil
	}
	c.events.Delete(m.ID)
	if err := c.persist(); err != nil {
		return err
	}
	c.render()
	c.dialog.Hide()
	return nil
}

// ChangeModality re-applies the field visibility rules for value.
func (c *Controller) ChangeModality(value string) {
	c.form.Set(form.FieldModality, value)
	c.form.ApplyModalityRules(model.Modality(value))
}

func (c *Controller) View() render.Week {
	return c.view
}

func (c *Controller) Events() []model.Event {
	return c.events.List()
}

func (c *Controller) Form() *form.Form {
	return c.form
}

func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) Title() string {
	return c.title
}

func (c *Controller) reset() {
	c.form.Reset()
	c.mode = Creating{}
}

func (c *Controller) persist() error {
	if err := c.snapshots.Save(c.events.List()); err != nil {
		c.logger.Error("persist events", "error", err)
		return fmt.Errorf("persist events: %w", err)
	}
	return nil
}

func (c *Controller) render() {
	c.view = render.Project(c.events.List())
}
