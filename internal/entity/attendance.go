package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const MonthLayout = "2006-01"

type AttendanceRecord struct {
	ID        uuid.UUID  `json:"id"`
	AccountID uuid.UUID  `json:"account_id"`
	WorkDate  time.Time  `json:"work_date"`
	ClockIn   time.Time  `json:"clock_in"`
	ClockOut  *time.Time `json:"clock_out,omitempty"`
	Late      bool       `json:"late"`
}

// HoursWorked is zero while the record is open.
func (r AttendanceRecord) HoursWorked() decimal.Decimal {
	if r.ClockOut == nil {
		return decimal.Zero
	}

	minutes := decimal.NewFromInt(int64(r.ClockOut.Sub(r.ClockIn) / time.Minute))

	return minutes.Div(decimal.NewFromInt(60)).Round(2)
}

type ClockAction string

const (
	ClockActionIn  ClockAction = "clock_in"
	ClockActionOut ClockAction = "clock_out"
)

type ClockResult struct {
	Action  ClockAction      `json:"action"`
	Record  AttendanceRecord `json:"record"`
	Message string           `json:"message"`
}

type AttendanceReport struct {
	Month       string             `json:"month"`
	Days        []AttendanceRecord `json:"days"`
	PresentDays int                `json:"present_days"`
	LateDays    int                `json:"late_days"`
	HoursWorked decimal.Decimal    `json:"hours_worked"`
	Leave       []LeaveRequest     `json:"leave"`
}

type TrendPoint struct {
	Month       string `json:"month"`
	PresentDays int    `json:"present_days"`
}

type TeamReportRow struct {
	AccountID   uuid.UUID       `json:"account_id"`
	FullName    string          `json:"full_name"`
	Team        string          `json:"team"`
	PresentDays int             `json:"present_days"`
	LateDays    int             `json:"late_days"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	LeaveDays   decimal.Decimal `json:"leave_days"`
}

type TeamReport struct {
	From time.Time       `json:"from"`
	To   time.Time       `json:"to"`
	Rows []TeamReportRow `json:"rows"`
}

// Summarize fills the counters from a month of records.
func (r *AttendanceReport) Summarize() {
	r.PresentDays = len(r.Days)
	r.LateDays = 0
	r.HoursWorked = decimal.Zero

	for _, d := range r.Days {
		if d.Late {
			r.LateDays++
		}

		r.HoursWorked = r.HoursWorked.Add(d.HoursWorked())
	}
}
