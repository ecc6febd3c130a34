// Package calendar drives the leave calendar screen: loading events,
// click/drag interactions, the create and details modals, and reconciling
// optimistic edits with the backend.
package calendar

import (
	"context"

	"leavedesk/internal/domain/leave"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateSubmitting
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateSubmitting:
		return "submitting"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// LeaveAPI is the slice of the REST client the controller depends on.
type LeaveAPI interface {
	ListLeave(ctx context.Context, userID string) ([]leave.DisplayEvent, error)
	CreateLeave(ctx context.Context, userID string, payload leave.RequestPayload) (leave.DisplayEvent, error)
	UpdateLeave(ctx context.Context, id string, payload leave.RequestPayload) (leave.DisplayEvent, error)
	DeleteLeave(ctx context.Context, id string) error
	ListUpcomingLeave(ctx context.Context, userID string) ([]leave.DisplayEvent, error)
}

// Notifier surfaces transient toast-style notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Form is the create/edit modal state. RangeString holds the picker's raw
// text ("14 Dec, 2025 to 16 Dec, 2025") until submit parses it.
type Form struct {
	RangeString string
	Type        leave.Type
	Reason      string
}

// EventDetails seeds the details/edit view from a displayed event, with the
// end date already converted back to the inclusive convention.
type EventDetails struct {
	ID        string
	Reason    string
	Type      leave.Type
	Status    leave.Status
	Duration  int
	StartDate string
	EndDate   string
}

// PendingMutation holds the pre-drag snapshot of an optimistically moved
// event so a failed update can be rolled back explicitly.
type PendingMutation struct {
	Index    int
	Previous leave.DisplayEvent
}

// Controller is the calendar's state machine. It is long-lived for the
// page's session and cooperative: all methods must be called from the same
// goroutine, mirroring the single UI event loop it models. Every failure is
// converted into a notification here; none propagate further.
type Controller struct {
	api    LeaveAPI
	notify Notifier
	userID string

	loadState      State
	submitting     bool
	events         []leave.DisplayEvent
	refreshTrigger int

	createOpen  bool
	form        Form
	detailsOpen bool
	details     EventDetails
	formError   string
}

func NewController(api LeaveAPI, notify Notifier, userID string) *Controller {
	return &Controller{
		api:    api,
		notify: notify,
		userID: userID,
		form:   Form{Type: leave.TypeAnnual},
	}
}

// State reports Submitting while a modal submission is in flight, otherwise
// the state of the last load cycle.
func (c *Controller) State() State {
	if c.submitting {
		return StateSubmitting
	}
	return c.loadState
}

func (c *Controller) RefreshTrigger() int   { return c.refreshTrigger }
func (c *Controller) CreateOpen() bool      { return c.createOpen }
func (c *Controller) DetailsOpen() bool     { return c.detailsOpen }
func (c *Controller) Form() Form            { return c.form }
func (c *Controller) Details() EventDetails { return c.details }
func (c *Controller) FormError() string     { return c.formError }

// Events returns a copy of the current event set.
func (c *Controller) Events() []leave.DisplayEvent {
	out := make([]leave.DisplayEvent, len(c.events))
	copy(out, c.events)
	return out
}

// Refresh performs a full re-fetch. Success replaces the entire event set;
// failure clears it to empty (never stale) and surfaces one notification.
func (c *Controller) Refresh(ctx context.Context) {
	c.loadState = StateLoading

	events, err := c.api.ListLeave(ctx, c.userID)
	if err != nil {
		c.events = nil
		c.loadState = StateError
		c.notify.Error(err.Error())
		return
	}
	c.events = events
	c.loadState = StateLoaded
}

// ClickEvent opens the details view seeded from the stored event. Read path
// only; no network call.
func (c *Controller) ClickEvent(id string) (EventDetails, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return EventDetails{}, false
	}
	ev := c.events[idx]

	endISO, err := leave.InclusiveEnd(ev.End)
	if err != nil {
		endISO = ev.Start
	}
	c.details = EventDetails{
		ID:        ev.ID,
		Reason:    ev.Reason,
		Type:      ev.Type,
		Status:    ev.Status,
		Duration:  ev.Duration,
		StartDate: ev.Start,
		EndDate:   endISO,
	}
	c.detailsOpen = true
	c.formError = ""
	return c.details, true
}

// DragReschedule handles a drag-drop of an existing event. The widget
// reports the post-drop position with an exclusive end; the candidate
// inclusive range is derived here, the event is moved optimistically, and a
// failed update restores the pre-drag position.
func (c *Controller) DragReschedule(ctx context.Context, id, newStart, newExclusiveEnd string) {
	idx := c.indexOf(id)
	if idx < 0 {
		c.notify.Error("event no longer displayed")
		return
	}

	newEnd, err := leave.InclusiveEnd(newExclusiveEnd)
	if err != nil {
		// Single-day drags may omit the end position entirely.
		newEnd = newStart
	}
	if newEnd < newStart {
		// One-day event after the exclusive-to-inclusive correction.
		newEnd = newStart
	}

	prev := c.events[idx]
	payload, err := leave.ToPayload(prev.Type, prev.Reason, newStart, newEnd, prev.Status)
	if err != nil {
		c.notify.Error(err.Error())
		return
	}

	pending := PendingMutation{Index: idx, Previous: prev}

	moved := prev
	moved.Start = newStart
	moved.Duration = payload.Duration
	if exclusive, endErr := leave.ExclusiveEnd(newEnd); endErr == nil {
		moved.End = exclusive
	}
	c.events[idx] = moved

	if _, err := c.api.UpdateLeave(ctx, id, payload); err != nil {
		c.events[pending.Index] = pending.Previous
		c.notify.Error(err.Error())
		return
	}

	c.notify.Success("leave request rescheduled")
	c.refreshTrigger++
	c.Refresh(ctx)
}

// DropExternal handles a "new leave" chip dropped onto a calendar date. No
// network call: it pre-fills and opens the create form, deferring to the
// normal create flow.
func (c *Controller) DropExternal(dateISO string, t leave.Type) {
	if !leave.ValidType(t) {
		t = leave.TypeAnnual
	}
	display := leave.FormatDisplay(dateISO)
	c.form = Form{
		RangeString: display + " to " + display,
		Type:        t,
	}
	c.formError = ""
	c.createOpen = true
}

func (c *Controller) OpenCreate() {
	c.form = Form{Type: leave.TypeAnnual}
	c.formError = ""
	c.createOpen = true
}

func (c *Controller) CloseCreate() {
	c.createOpen = false
	c.formError = ""
}

func (c *Controller) CloseDetails() {
	c.detailsOpen = false
	c.formError = ""
}

// SubmitCreate validates the form, then submits. A malformed range or a
// reversed range blocks the submission before any network call. On failure
// the modal stays open so the user can correct the input.
func (c *Controller) SubmitCreate(ctx context.Context, form Form) {
	payload, ok := c.formPayload(form, "")
	if !ok {
		return
	}

	c.submitting = true
	defer func() { c.submitting = false }()

	if _, err := c.api.CreateLeave(ctx, c.userID, payload); err != nil {
		c.formError = err.Error()
		c.notify.Error(err.Error())
		return
	}

	c.notify.Success("leave request submitted")
	c.createOpen = false
	c.form = Form{Type: leave.TypeAnnual}
	c.refreshTrigger++
	c.Refresh(ctx)
}

// SubmitUpdate saves the details form for an existing request. Status is
// passed through from the displayed record, never changed here.
func (c *Controller) SubmitUpdate(ctx context.Context, id string, form Form) {
	idx := c.indexOf(id)
	if idx < 0 {
		c.notify.Error("event no longer displayed")
		return
	}

	payload, ok := c.formPayload(form, c.events[idx].Status)
	if !ok {
		return
	}

	c.submitting = true
	defer func() { c.submitting = false }()

	if _, err := c.api.UpdateLeave(ctx, id, payload); err != nil {
		c.formError = err.Error()
		c.notify.Error(err.Error())
		return
	}

	c.notify.Success("leave request updated")
	c.detailsOpen = false
	c.refreshTrigger++
	c.Refresh(ctx)
}

// Delete removes a request. Failures only surface a notification; there is
// no form state to keep.
func (c *Controller) Delete(ctx context.Context, id string) {
	c.submitting = true
	defer func() { c.submitting = false }()

	if err := c.api.DeleteLeave(ctx, id); err != nil {
		c.notify.Error(err.Error())
		return
	}

	c.notify.Success("leave request deleted")
	c.detailsOpen = false
	c.refreshTrigger++
	c.Refresh(ctx)
}

// UpcomingLeave feeds the side panel; callers re-invoke it whenever
// RefreshTrigger changes.
func (c *Controller) UpcomingLeave(ctx context.Context) []leave.DisplayEvent {
	upcoming, err := c.api.ListUpcomingLeave(ctx, c.userID)
	if err != nil {
		c.notify.Error(err.Error())
		return nil
	}
	return upcoming
}

// formPayload parses and validates form input, recording an inline error
// and a notification when it is rejected. No network call happens on a
// false return.
func (c *Controller) formPayload(form Form, status leave.Status) (leave.RequestPayload, bool) {
	startISO, endISO, err := leave.ParseRangeString(form.RangeString)
	if err != nil {
		return c.rejectForm("please select a valid date range")
	}
	if endISO < startISO {
		return c.rejectForm("end date must not be before start date")
	}

	payload, err := leave.ToPayload(form.Type, form.Reason, startISO, endISO, status)
	if err != nil {
		return c.rejectForm("please select a valid date range")
	}
	if err := payload.Validate(); err != nil {
		return c.rejectForm(err.Error())
	}

	c.formError = ""
	return payload, true
}

func (c *Controller) rejectForm(msg string) (leave.RequestPayload, bool) {
	c.formError = msg
	c.notify.Error(msg)
	return leave.RequestPayload{}, false
}

func (c *Controller) indexOf(id string) int {
	for i, ev := range c.events {
		if ev.ID == id {
			return i
		}
	}
	return -1
}
