package client

import (
	"context"
	"net/http"
	"sort"
	"time"

	"leavedesk/internal/domain/leave"
)

const leaveBasePath = "/api/leave"

// ListLeave fetches all leave requests for the user and maps them into
// calendar display events, in the order the backend returned them.
func (c *Client) ListLeave(ctx context.Context, userID string) ([]leave.DisplayEvent, error) {
	var records []leave.LeaveRequest
	if err := c.do(ctx, http.MethodGet, leaveBasePath+"/user/"+userID, nil, &records); err != nil {
		return nil, err
	}

	events := make([]leave.DisplayEvent, 0, len(records))
	for _, rec := range records {
		events = append(events, leave.ToDisplay(rec))
	}
	return events, nil
}

// CreateLeave validates the payload locally, then submits it. The server is
// authoritative for the assigned ID and the PENDING status.
func (c *Client) CreateLeave(ctx context.Context, userID string, payload leave.RequestPayload) (leave.DisplayEvent, error) {
	payload.Status = ""
	if err := payload.Validate(); err != nil {
		return leave.DisplayEvent{}, err
	}

	var created leave.LeaveRequest
	if err := c.do(ctx, http.MethodPost, leaveBasePath+"/user/"+userID, payload, &created); err != nil {
		return leave.DisplayEvent{}, err
	}
	return leave.ToDisplay(created), nil
}

// UpdateLeave performs a full replace of the request's fields.
func (c *Client) UpdateLeave(ctx context.Context, id string, payload leave.RequestPayload) (leave.DisplayEvent, error) {
	if err := payload.Validate(); err != nil {
		return leave.DisplayEvent{}, err
	}

	var updated leave.LeaveRequest
	if err := c.do(ctx, http.MethodPut, leaveBasePath+"/"+id, payload, &updated); err != nil {
		return leave.DisplayEvent{}, err
	}
	return leave.ToDisplay(updated), nil
}

// DeleteLeave removes a request. Idempotent from the caller's perspective:
// deleting an already-deleted ID reports not-found, which callers may treat
// as success.
func (c *Client) DeleteLeave(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, leaveBasePath+"/"+id, nil, nil)
}

// ListUpcomingLeave returns events starting today or later, ascending by
// start date. Events sharing a start date keep their backend order.
func (c *Client) ListUpcomingLeave(ctx context.Context, userID string) ([]leave.DisplayEvent, error) {
	events, err := c.ListLeave(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := c.today()
	var upcoming []leave.DisplayEvent
	for _, ev := range events {
		start, err := leave.ParseDate(ev.Start)
		if err != nil {
			continue
		}
		if !start.Before(today) {
			upcoming = append(upcoming, ev)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Start < upcoming[j].Start
	})
	return upcoming, nil
}

// today is local midnight of the client's clock, comparable against parsed
// wire dates.
func (c *Client) today() time.Time {
	now := c.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
