package calendar

import (
	"context"
	"testing"

	"leavedesk/internal/domain/leave"
)

type fakeAPI struct {
	events []leave.DisplayEvent

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	lastUpdateID      string
	lastUpdatePayload leave.RequestPayload
	lastCreatePayload leave.RequestPayload
}

func (f *fakeAPI) ListLeave(_ context.Context, _ string) ([]leave.DisplayEvent, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]leave.DisplayEvent, len(f.events))
	copy(out, f.events)
	return out, nil
}

func (f *fakeAPI) CreateLeave(_ context.Context, _ string, payload leave.RequestPayload) (leave.DisplayEvent, error) {
	f.createCalls++
	f.lastCreatePayload = payload
	if f.createErr != nil {
		return leave.DisplayEvent{}, f.createErr
	}
	return leave.DisplayEvent{ID: "new"}, nil
}

func (f *fakeAPI) UpdateLeave(_ context.Context, id string, payload leave.RequestPayload) (leave.DisplayEvent, error) {
	f.updateCalls++
	f.lastUpdateID = id
	f.lastUpdatePayload = payload
	if f.updateErr != nil {
		return leave.DisplayEvent{}, f.updateErr
	}
	return leave.DisplayEvent{ID: id}, nil
}

func (f *fakeAPI) DeleteLeave(_ context.Context, _ string) error {
	f.deleteCalls++
	return f.deleteErr
}

func (f *fakeAPI) ListUpcomingLeave(_ context.Context, _ string) ([]leave.DisplayEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

type recorder struct {
	successes []string
	errors    []string
}

func (r *recorder) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) Error(msg string)   { r.errors = append(r.errors, msg) }

func displayEvent(id, start, endInclusive string) leave.DisplayEvent {
	days, err := leave.Duration(start, endInclusive)
	if err != nil {
		panic(err)
	}
	return leave.ToDisplay(leave.LeaveRequest{
		ID:        id,
		Type:      leave.TypeAnnual,
		Reason:    "trip",
		StartDate: start,
		EndDate:   endInclusive,
		Duration:  days,
		Status:    leave.StatusPending,
	})
}

func loadedController(t *testing.T, events ...leave.DisplayEvent) (*Controller, *fakeAPI, *recorder) {
	t.Helper()
	api := &fakeAPI{events: events}
	notify := &recorder{}
	ctrl := NewController(api, notify, "user-1")
	ctrl.Refresh(context.Background())
	if ctrl.State() != StateLoaded {
		t.Fatalf("expected loaded state, got %s", ctrl.State())
	}
	return ctrl, api, notify
}

func TestRefreshSuccess(t *testing.T) {
	ctrl, _, notify := loadedController(t, displayEvent("lr-1", "2025-12-10", "2025-12-12"))

	events := ctrl.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].End != "2025-12-13" {
		t.Fatalf("expected exclusive end 2025-12-13, got %s", events[0].End)
	}
	if len(notify.errors) != 0 {
		t.Fatalf("unexpected error notifications: %v", notify.errors)
	}
}

func TestRefreshFailureClearsEvents(t *testing.T) {
	ctrl, api, notify := loadedController(t, displayEvent("lr-1", "2025-12-10", "2025-12-12"))

	api.listErr = errFake("backend down")
	ctrl.Refresh(context.Background())

	if ctrl.State() != StateError {
		t.Fatalf("expected error state, got %s", ctrl.State())
	}
	if len(ctrl.Events()) != 0 {
		t.Fatal("expected event set cleared, not stale")
	}
	if len(notify.errors) != 1 {
		t.Fatalf("expected exactly one error notification, got %v", notify.errors)
	}
}

func TestClickEventNoNetwork(t *testing.T) {
	ctrl, api, _ := loadedController(t, displayEvent("lr-1", "2025-12-10", "2025-12-10"))
	listCallsBefore := api.listCalls

	details, ok := ctrl.ClickEvent("lr-1")
	if !ok {
		t.Fatal("expected event to be found")
	}
	if details.EndDate != "2025-12-10" {
		t.Fatalf("expected inclusive end 2025-12-10, got %s", details.EndDate)
	}
	if !ctrl.DetailsOpen() {
		t.Fatal("expected details modal open")
	}
	if api.listCalls != listCallsBefore || api.updateCalls != 0 {
		t.Fatal("click must not touch the network")
	}
}

func TestClickEventUnknownID(t *testing.T) {
	ctrl, _, _ := loadedController(t)
	if _, ok := ctrl.ClickEvent("ghost"); ok {
		t.Fatal("expected lookup miss")
	}
}

func TestDragRescheduleSuccess(t *testing.T) {
	ctrl, api, notify := loadedController(t, displayEvent("lr-1", "2025-12-10", "2025-12-12"))

	// Dropped at Dec 15, widget reports exclusive end Dec 18.
	ctrl.DragReschedule(context.Background(), "lr-1", "2025-12-15", "2025-12-18")

	if api.lastUpdateID != "lr-1" {
		t.Fatalf("expected update for lr-1, got %q", api.lastUpdateID)
	}
	p := api.lastUpdatePayload
	if p.StartDate != "2025-12-15" || p.EndDate != "2025-12-17" {
		t.Fatalf("expected inclusive range 2025-12-15..2025-12-17, got %s..%s", p.StartDate, p.EndDate)
	}
	if p.Duration != 3 {
		t.Fatalf("expected recomputed duration 3, got %d", p.Duration)
	}
	if p.Status != leave.StatusPending {
		t.Fatalf("expected status passed through, got %s", p.Status)
	}
	// Success triggers a full refresh.
	if api.listCalls != 2 {
		t.Fatalf("expected refresh after successful update, got %d list calls", api.listCalls)
	}
	if len(notify.successes) != 1 {
		t.Fatalf("expected one success notification, got %v", notify.successes)
	}
}

func TestDragRescheduleSingleDayCollapse(t *testing.T) {
	ctrl, api, _ := loadedController(t, displayEvent("lr-1", "2025-12-10", "2025-12-12"))

	// Exclusive end equal to the start collapses to a one-day event.
	ctrl.DragReschedule(context.Background(), "lr-1", "2025-12-20", "2025-12-20")

	p := api.lastUpdatePayload
	if p.StartDate != "2025-12-20" || p.EndDate != "2025-12-20" {
		t.Fatalf("expected one-day range, got %s..%s", p.StartDate, p.EndDate)
	}
	if p.Duration != 1 {
		t.Fatalf("expected duration 1, got %d", p.Duration)
	}
}

func TestDragRescheduleRollbackOnFailure(t *testing.T) {
	original := displayEvent("lr-1", "2025-12-10", "2025-12-12")
	other := displayEvent("lr-2", "2025-11-01", "2025-11-02")
	ctrl, api, notify := loadedController(t, original, other)

	api.updateErr = errFake("update rejected")
	ctrl.DragReschedule(context.Background(), "lr-1", "2025-12-15", "2025-12-18")

	events := ctrl.Events()
	if len(events) != 2 {
		t.Fatalf("expected both events retained, got %d", len(events))
	}
	if events[0] != original {
		t.Fatalf("expected event restored to pre-drag state, got %+v", events[0])
	}
	if events[1] != other {
		t.Fatal("expected untouched event to stay untouched")
	}
	if len(notify.errors) != 1 {
		t.Fatalf("expected exactly one error notification, got %v", notify.errors)
	}
	// No refresh after a failed update; the rollback is the reconciliation.
	if api.listCalls != 1 {
		t.Fatalf("expected no refresh after failure, got %d list calls", api.listCalls)
	}
}

func TestDropExternalPrefillsCreateForm(t *testing.T) {
	ctrl, api, _ := loadedController(t)

	ctrl.DropExternal("2025-12-14", leave.TypeSick)

	if !ctrl.CreateOpen() {
		t.Fatal("expected create modal open")
	}
	form := ctrl.Form()
	if form.Type != leave.TypeSick {
		t.Fatalf("expected sick type carried over, got %s", form.Type)
	}
	if form.RangeString != "14 December 2025 to 14 December 2025" {
		t.Fatalf("unexpected prefilled range %q", form.RangeString)
	}
	if api.createCalls != 0 || api.updateCalls != 0 {
		t.Fatal("external drop must not touch the network")
	}

	// The prefilled range must survive the normal create flow.
	form.Reason = "dentist"
	ctrl.SubmitCreate(context.Background(), form)
	if api.createCalls != 1 {
		t.Fatalf("expected create call, got %d", api.createCalls)
	}
	if api.lastCreatePayload.StartDate != "2025-12-14" || api.lastCreatePayload.EndDate != "2025-12-14" {
		t.Fatalf("unexpected created range %s..%s", api.lastCreatePayload.StartDate, api.lastCreatePayload.EndDate)
	}
}

func TestSubmitCreateMalformedRangeBlocksNetwork(t *testing.T) {
	ctrl, api, notify := loadedController(t)

	ctrl.SubmitCreate(context.Background(), Form{
		RangeString: "14 Dec, 2025",
		Type:        leave.TypeAnnual,
		Reason:      "holiday",
	})

	if api.createCalls != 0 {
		t.Fatal("malformed range must block the network call")
	}
	if ctrl.FormError() == "" {
		t.Fatal("expected inline form error")
	}
	if len(notify.errors) != 1 {
		t.Fatalf("expected one error notification, got %v", notify.errors)
	}
}

func TestSubmitCreateSuccessClosesModalAndRefreshes(t *testing.T) {
	ctrl, api, notify := loadedController(t)
	ctrl.OpenCreate()

	ctrl.SubmitCreate(context.Background(), Form{
		RangeString: "14 Dec, 2025 to 16 Dec, 2025",
		Type:        leave.TypeAnnual,
		Reason:      "holiday",
	})

	if ctrl.CreateOpen() {
		t.Fatal("expected create modal closed")
	}
	if api.lastCreatePayload.Duration != 3 {
		t.Fatalf("expected duration 3, got %d", api.lastCreatePayload.Duration)
	}
	if api.lastCreatePayload.Status != "" {
		t.Fatalf("create payload must not carry a status, got %q", api.lastCreatePayload.Status)
	}
	if api.listCalls != 2 {
		t.Fatalf("expected refresh after create, got %d list calls", api.listCalls)
	}
	if len(notify.successes) != 1 {
		t.Fatalf("expected success notification, got %v", notify.successes)
	}
	if ctrl.RefreshTrigger() != 1 {
		t.Fatalf("expected refresh trigger bump, got %d", ctrl.RefreshTrigger())
	}
	if ctrl.State() != StateLoaded {
		t.Fatalf("expected submitting flag reset, state %s", ctrl.State())
	}
}

func TestSubmitCreateFailureKeepsModalOpen(t *testing.T) {
	ctrl, api, _ := loadedController(t)
	ctrl.OpenCreate()
	api.createErr = errFake("overlapping leave")

	ctrl.SubmitCreate(context.Background(), Form{
		RangeString: "14 Dec, 2025 to 16 Dec, 2025",
		Type:        leave.TypeAnnual,
		Reason:      "holiday",
	})

	if !ctrl.CreateOpen() {
		t.Fatal("expected create modal kept open for correction")
	}
	if ctrl.FormError() != "overlapping leave" {
		t.Fatalf("expected inline error, got %q", ctrl.FormError())
	}
	if ctrl.State() != StateLoaded {
		t.Fatalf("expected submitting flag reset after failure, state %s", ctrl.State())
	}
}

func TestSubmitUpdatePassesStatusThrough(t *testing.T) {
	ev := leave.ToDisplay(leave.LeaveRequest{
		ID:        "lr-9",
		Type:      leave.TypeUnpaid,
		Reason:    "move",
		StartDate: "2025-10-01",
		EndDate:   "2025-10-03",
		Duration:  3,
		Status:    leave.StatusApproved,
	})
	ctrl, api, _ := loadedController(t, ev)
	ctrl.ClickEvent("lr-9")

	ctrl.SubmitUpdate(context.Background(), "lr-9", Form{
		RangeString: "1 Oct, 2025 to 4 Oct, 2025",
		Type:        leave.TypeUnpaid,
		Reason:      "move, extended",
	})

	if api.lastUpdatePayload.Status != leave.StatusApproved {
		t.Fatalf("expected status passed through unchanged, got %s", api.lastUpdatePayload.Status)
	}
	if api.lastUpdatePayload.EndDate != "2025-10-04" {
		t.Fatalf("expected inclusive end from the form, got %s", api.lastUpdatePayload.EndDate)
	}
	if ctrl.DetailsOpen() {
		t.Fatal("expected details modal closed after save")
	}
}

func TestDeleteFailureNotifiesOnly(t *testing.T) {
	ctrl, api, notify := loadedController(t, displayEvent("lr-1", "2025-12-10", "2025-12-10"))
	ctrl.ClickEvent("lr-1")
	api.deleteErr = errFake("gone wrong")

	ctrl.Delete(context.Background(), "lr-1")

	if len(notify.errors) != 1 {
		t.Fatalf("expected one error notification, got %v", notify.errors)
	}
	if api.listCalls != 1 {
		t.Fatal("expected no refresh after failed delete")
	}
	if ctrl.State() != StateLoaded {
		t.Fatalf("expected submitting flag reset, state %s", ctrl.State())
	}
}

func TestDeleteSuccessClosesDetails(t *testing.T) {
	ctrl, api, notify := loadedController(t, displayEvent("lr-1", "2025-12-10", "2025-12-10"))
	ctrl.ClickEvent("lr-1")

	ctrl.Delete(context.Background(), "lr-1")

	if ctrl.DetailsOpen() {
		t.Fatal("expected details modal closed")
	}
	if api.deleteCalls != 1 || api.listCalls != 2 {
		t.Fatalf("expected delete then refresh, got %d deletes %d lists", api.deleteCalls, api.listCalls)
	}
	if len(notify.successes) != 1 {
		t.Fatalf("expected success notification, got %v", notify.successes)
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }
