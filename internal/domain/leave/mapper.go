package leave

// DisplayEvent is the calendar-rendering shape of a leave request. End is
// exclusive (first day not included), one day after the record's inclusive
// EndDate. The offset is applied here on load and removed here on every
// write-back; no other code performs the conversion.
type DisplayEvent struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Start      string `json:"start"`
	End        string `json:"end"`
	StyleClass string `json:"className"`
	Reason     string `json:"reason"`
	Type       Type   `json:"type"`
	Status     Status `json:"status"`
	Duration   int    `json:"duration"`
}

// StyleClassForType maps a leave type to its calendar badge class.
func StyleClassForType(t Type) string {
	switch t {
	case TypeSick:
		return "bg-danger"
	case TypeUnpaid:
		return "bg-warning"
	case TypeAnnual:
		return "bg-primary"
	default:
		return "bg-primary"
	}
}

// ExclusiveEnd converts an inclusive end date to the calendar widget's
// exclusive convention.
func ExclusiveEnd(inclusiveISO string) (string, error) {
	return AddDays(inclusiveISO, 1)
}

// InclusiveEnd reverses ExclusiveEnd.
func InclusiveEnd(exclusiveISO string) (string, error) {
	return AddDays(exclusiveISO, -1)
}

// ToDisplay maps a backend record to its calendar shape. An end date that
// fails to parse falls back to the start date, which renders the event as a
// single day rather than dropping it.
func ToDisplay(rec LeaveRequest) DisplayEvent {
	title := rec.Reason
	if title == "" {
		title = "Leave"
	}
	end, err := ExclusiveEnd(rec.EndDate)
	if err != nil {
		end = rec.StartDate
	}
	return DisplayEvent{
		ID:         rec.ID,
		Title:      title,
		Start:      rec.StartDate,
		End:        end,
		StyleClass: StyleClassForType(rec.Type),
		Reason:     rec.Reason,
		Type:       rec.Type,
		Status:     rec.Status,
		Duration:   rec.Duration,
	}
}

// ToPayload builds a write payload from inclusive dates, recomputing the
// duration. Status is carried through unchanged; this system never promotes
// or demotes a request itself.
func ToPayload(t Type, reason, startISO, endISO string, status Status) (RequestPayload, error) {
	days, err := Duration(startISO, endISO)
	if err != nil {
		return RequestPayload{}, err
	}
	return RequestPayload{
		Type:      t,
		Reason:    reason,
		StartDate: startISO,
		EndDate:   endISO,
		Duration:  days,
		Status:    status,
	}, nil
}

// FromDisplay builds a write payload from a display event, converting the
// exclusive end back to the inclusive convention. The +1 offset must never
// leak into a write payload.
func FromDisplay(ev DisplayEvent) (RequestPayload, error) {
	endISO, err := InclusiveEnd(ev.End)
	if err != nil {
		return RequestPayload{}, err
	}
	return ToPayload(ev.Type, ev.Reason, ev.Start, endISO, ev.Status)
}
