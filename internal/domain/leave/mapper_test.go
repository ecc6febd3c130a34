package leave

import "testing"

func TestToDisplayExclusiveEnd(t *testing.T) {
	rec := LeaveRequest{
		ID:        "lr-1",
		Type:      TypeAnnual,
		Reason:    "family trip",
		StartDate: "2025-12-10",
		EndDate:   "2025-12-10",
		Duration:  1,
		Status:    StatusPending,
	}

	ev := ToDisplay(rec)
	if ev.Start != "2025-12-10" {
		t.Fatalf("expected start unchanged, got %s", ev.Start)
	}
	if ev.End != "2025-12-11" {
		t.Fatalf("expected exclusive end 2025-12-11, got %s", ev.End)
	}
	if ev.Title != "family trip" {
		t.Fatalf("expected title from reason, got %q", ev.Title)
	}
	if ev.StyleClass != "bg-primary" {
		t.Fatalf("expected bg-primary for annual leave, got %s", ev.StyleClass)
	}
}

func TestToDisplayTitleFallback(t *testing.T) {
	ev := ToDisplay(LeaveRequest{StartDate: "2025-01-01", EndDate: "2025-01-01"})
	if ev.Title != "Leave" {
		t.Fatalf("expected fallback title, got %q", ev.Title)
	}
}

func TestStyleClassForType(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{typ: TypeAnnual, want: "bg-primary"},
		{typ: TypeSick, want: "bg-danger"},
		{typ: TypeUnpaid, want: "bg-warning"},
		{typ: Type("MYSTERY"), want: "bg-primary"},
	}

	for _, tc := range tests {
		if got := StyleClassForType(tc.typ); got != tc.want {
			t.Fatalf("type %s: expected %s, got %s", tc.typ, tc.want, got)
		}
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "single day", start: "2025-12-10", end: "2025-12-10"},
		{name: "multi day", start: "2025-07-01", end: "2025-07-14"},
		{name: "month boundary", start: "2025-01-30", end: "2025-02-02"},
		{name: "leap february", start: "2024-02-27", end: "2024-02-29"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			days, err := Duration(tc.start, tc.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			rec := LeaveRequest{
				ID:        "lr-7",
				Type:      TypeSick,
				Reason:    "flu",
				StartDate: tc.start,
				EndDate:   tc.end,
				Duration:  days,
				Status:    StatusApproved,
			}

			payload, err := FromDisplay(ToDisplay(rec))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if payload.StartDate != tc.start || payload.EndDate != tc.end {
				t.Fatalf("round trip yielded (%s, %s), want (%s, %s)", payload.StartDate, payload.EndDate, tc.start, tc.end)
			}
			if payload.Duration != days {
				t.Fatalf("expected duration %d preserved, got %d", days, payload.Duration)
			}
			if payload.Status != StatusApproved {
				t.Fatalf("expected status passed through, got %s", payload.Status)
			}
		})
	}
}

func TestToPayloadRecomputesDuration(t *testing.T) {
	payload, err := ToPayload(TypeUnpaid, "sabbatical", "2025-03-03", "2025-03-07", StatusPending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Duration != 5 {
		t.Fatalf("expected duration 5, got %d", payload.Duration)
	}
}

func TestValidatePayload(t *testing.T) {
	valid := RequestPayload{
		Type:      TypeAnnual,
		Reason:    "holiday",
		StartDate: "2025-08-01",
		EndDate:   "2025-08-05",
		Duration:  5,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*RequestPayload)
	}{
		{name: "unknown type", mutate: func(p *RequestPayload) { p.Type = "LONG_SERVICE" }},
		{name: "missing reason", mutate: func(p *RequestPayload) { p.Reason = "  " }},
		{name: "reversed range", mutate: func(p *RequestPayload) { p.StartDate, p.EndDate = p.EndDate, p.StartDate }},
		{name: "wrong duration", mutate: func(p *RequestPayload) { p.Duration = 2 }},
		{name: "garbage date", mutate: func(p *RequestPayload) { p.EndDate = "next tuesday" }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			payload := valid
			tc.mutate(&payload)
			if err := payload.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
