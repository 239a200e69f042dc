package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type LeaveKind string

const (
	LeaveKindLeave LeaveKind = "leave"
	LeaveKindWFH   LeaveKind = "wfh"
)

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

type LeaveType struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

type LeaveRequest struct {
	ID             uuid.UUID       `json:"id"`
	AccountID      uuid.UUID       `json:"account_id"`
	EmployeeName   string          `json:"employee_name"`
	Kind           LeaveKind       `json:"kind"`
	LeaveTypeID    *int64          `json:"leave_type_id,omitempty"`
	LeaveTypeLabel string          `json:"leave_type"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	HalfDay        bool            `json:"half_day"`
	Days           decimal.Decimal `json:"days"`
	Reason         string          `json:"reason"`
	Status         LeaveStatus     `json:"status"`
	DecidedBy      *uuid.UUID      `json:"decided_by,omitempty"`
	DecidedAt      *time.Time      `json:"decided_at,omitempty"`
	Comment        string          `json:"comment"`
	CreatedAt      time.Time       `json:"created_at"`
}

// LeaveRequestInput is the raw form. Dates are YYYY-MM-DD strings so that an
// empty picker can be told apart from a bad date.
type LeaveRequestInput struct {
	Kind        string `json:"kind"`
	LeaveTypeID *int64 `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	HalfDay     bool   `json:"half_day"`
	Reason      string `json:"reason"`
}

type LeaveDecision struct {
	Approve bool   `json:"approve"`
	Comment string `json:"comment" validate:"max=500"`
}

type LeaveFilter string

const (
	LeaveFilterAll   LeaveFilter = "All"
	LeaveFilterLeave LeaveFilter = "Leave"
	LeaveFilterWFH   LeaveFilter = "WFH"
)

// ParseLeaveFilter treats an empty value as All.
func ParseLeaveFilter(s string) (LeaveFilter, error) {
	switch LeaveFilter(s) {
	case "", LeaveFilterAll:
		return LeaveFilterAll, nil
	case LeaveFilterLeave, LeaveFilterWFH:
		return LeaveFilter(s), nil
	default:
		return "", NewValidationError("Unknown filter", "filter")
	}
}

// Kind returns the request kind the filter selects, or "" for all kinds.
func (f LeaveFilter) Kind() LeaveKind {
	switch f {
	case LeaveFilterLeave:
		return LeaveKindLeave
	case LeaveFilterWFH:
		return LeaveKindWFH
	default:
		return ""
	}
}

type LeaveBalance struct {
	Year      int             `json:"year"`
	Allowance decimal.Decimal `json:"allowance"`
	Used      decimal.Decimal `json:"used"`
	Pending   decimal.Decimal `json:"pending"`
	Remaining decimal.Decimal `json:"remaining"`
}

var halfDay = decimal.NewFromFloat(0.5)

// LeaveDays counts calendar days from start to end inclusive. A half day
// request covers a single date and counts as 0.5.
func LeaveDays(start, end time.Time, half bool) decimal.Decimal {
	if half {
		return halfDay
	}

	days := int64(end.Sub(start).Hours()/24) + 1

	return decimal.NewFromInt(days)
}

// Overlaps reports whether the request covers any date in [from, to].
func (r LeaveRequest) Overlaps(from, to time.Time) bool {
	return !r.StartDate.After(to) && !r.EndDate.Before(from)
}

// LeaveQuery selects leave requests. Zero fields do not filter.
type LeaveQuery struct {
	AccountID        *uuid.UUID
	Team             string
	ExcludeAccountID *uuid.UUID
	Kind             LeaveKind
	Statuses         []LeaveStatus
	From             *time.Time
	To               *time.Time
	Limit            uint64
}
