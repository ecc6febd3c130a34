package leave

import "strings"

type Type string

const (
	TypeAnnual Type = "ANNUAL"
	TypeSick   Type = "SICK"
	TypeUnpaid Type = "UNPAID"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

// LeaveRequest is the backend-canonical record. StartDate and EndDate are
// YYYY-MM-DD strings and both inclusive; Duration is the inclusive day count.
type LeaveRequest struct {
	ID        string `json:"id"`
	Type      Type   `json:"type"`
	Reason    string `json:"reason"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Duration  int    `json:"duration"`
	Status    Status `json:"status"`
}

// RequestPayload is the write shape for create and update calls. Status is
// empty on create (the server assigns PENDING) and passed through unchanged
// on update.
type RequestPayload struct {
	Type      Type   `json:"type"`
	Reason    string `json:"reason"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Duration  int    `json:"duration"`
	Status    Status `json:"status,omitempty"`
}

// ValidationError reports a payload problem caught before any network or
// storage call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func ValidType(t Type) bool {
	switch t {
	case TypeAnnual, TypeSick, TypeUnpaid:
		return true
	}
	return false
}

// Validate checks the payload the way the server will: known type, non-empty
// reason, parseable dates with start <= end, and a duration consistent with
// the inclusive range.
func (p RequestPayload) Validate() error {
	if !ValidType(p.Type) {
		return &ValidationError{Field: "type", Reason: "unknown leave type"}
	}
	if strings.TrimSpace(p.Reason) == "" {
		return &ValidationError{Field: "reason", Reason: "reason is required"}
	}
	days, err := Duration(p.StartDate, p.EndDate)
	if err != nil {
		return &ValidationError{Field: "startDate", Reason: "invalid date range"}
	}
	if days < 1 {
		return &ValidationError{Field: "endDate", Reason: "end date before start date"}
	}
	if p.Duration != days {
		return &ValidationError{Field: "duration", Reason: "duration does not match date range"}
	}
	return nil
}
