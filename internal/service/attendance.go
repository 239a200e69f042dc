package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

// ClockInOut clocks in on the first call of the local day and out on the
// second. Further calls that day fail with entity.ErrAttendanceClosed.
func (s *Service) ClockInOut(ctx context.Context, p entity.Principal) (entity.ClockResult, error) {
	if err := authorize(p, entity.PermissionClock); err != nil {
		return entity.ClockResult{}, err
	}

	now := s.now()
	day := s.today()

	rec, err := s.repo.AttendanceRecord(ctx, p.AccountID, day)

	switch {
	case errors.Is(err, entity.ErrNotFound):
		return s.clockIn(ctx, p, day, now)
	case err != nil:
		return entity.ClockResult{}, fmt.Errorf("get attendance record: %w", err)
	case rec.ClockOut != nil:
		return entity.ClockResult{}, entity.ErrAttendanceClosed
	}

	err = s.repo.CloseAttendanceRecord(ctx, rec.ID, now)
	if err != nil {
		return entity.ClockResult{}, fmt.Errorf("close attendance record: %w", err)
	}

	rec.ClockOut = &now

	slog.InfoContext(ctx, "clocked out", "account_id", p.AccountID, "hours", rec.HoursWorked())

	return entity.ClockResult{
		Action:  entity.ClockActionOut,
		Record:  rec,
		Message: fmt.Sprintf("Clocked out at %s. Hours worked: %s", now.In(s.location()).Format("15:04"), rec.HoursWorked()),
	}, nil
}

func (s *Service) clockIn(ctx context.Context, p entity.Principal, day, now time.Time) (entity.ClockResult, error) {
	grace, err := s.gracePeriod(ctx)
	if err != nil {
		return entity.ClockResult{}, err
	}

	loc := s.location()
	localMidnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	deadline := localMidnight.Add(s.cfg.Attendance.WorkdayStartOffset()).Add(grace)

	rec := entity.AttendanceRecord{
		ID:        uuid.Must(uuid.NewV4()),
		AccountID: p.AccountID,
		WorkDate:  day,
		ClockIn:   now,
		Late:      now.After(deadline),
	}

	err = s.repo.CreateAttendanceRecord(ctx, rec)
	if err != nil {
		return entity.ClockResult{}, fmt.Errorf("create attendance record: %w", err)
	}

	msg := fmt.Sprintf("Clocked in at %s.", now.In(loc).Format("15:04"))
	if rec.Late {
		msg += " You are late today."
	}

	slog.InfoContext(ctx, "clocked in", "account_id", p.AccountID, "late", rec.Late)

	return entity.ClockResult{Action: entity.ClockActionIn, Record: rec, Message: msg}, nil
}

func (s *Service) gracePeriod(ctx context.Context) (time.Duration, error) {
	settings, err := s.OrgSettings(ctx)
	if err != nil {
		return 0, err
	}

	return time.Duration(settings.GracePeriodMinutes) * time.Minute, nil
}

func monthRange(month time.Time) (time.Time, time.Time) {
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, -1)
}

func (s *Service) parseMonth(month string) (time.Time, error) {
	if month == "" {
		return s.today(), nil
	}

	m, err := time.Parse(entity.MonthLayout, month)
	if err != nil {
		return time.Time{}, entity.NewValidationError("Month must be YYYY-MM", "month")
	}

	return m, nil
}

// AttendanceReport returns the caller's records and approved leave for one
// month (YYYY-MM, current month when empty).
func (s *Service) AttendanceReport(ctx context.Context, p entity.Principal, month string) (entity.AttendanceReport, error) {
	m, err := s.parseMonth(month)
	if err != nil {
		return entity.AttendanceReport{}, err
	}

	from, to := monthRange(m)

	records, err := s.repo.AttendanceRecords(ctx, []uuid.UUID{p.AccountID}, from, to)
	if err != nil {
		return entity.AttendanceReport{}, fmt.Errorf("list attendance records: %w", err)
	}

	leave, err := s.repo.LeaveRequests(ctx, entity.LeaveQuery{
		AccountID: &p.AccountID,
		Statuses:  []entity.LeaveStatus{entity.LeaveStatusApproved},
		From:      &from,
		To:        &to,
	})
	if err != nil {
		return entity.AttendanceReport{}, fmt.Errorf("list leave requests: %w", err)
	}

	report := entity.AttendanceReport{
		Month: from.Format(entity.MonthLayout),
		Days:  records,
		Leave: leave,
	}
	report.Summarize()

	return report, nil
}

const (
	trendMonthsDefault = 6
	trendMonthsMax     = 12
)

// AttendanceTrend counts present days per month, oldest first, ending with
// the current month.
func (s *Service) AttendanceTrend(ctx context.Context, p entity.Principal, months int) ([]entity.TrendPoint, error) {
	if months == 0 {
		months = trendMonthsDefault
	}

	if months < 1 || months > trendMonthsMax {
		return nil, entity.NewValidationError(fmt.Sprintf("Months must be between 1 and %d", trendMonthsMax), "months")
	}

	first, _ := monthRange(s.today())
	from := first.AddDate(0, -(months - 1), 0)
	_, to := monthRange(s.today())

	records, err := s.repo.AttendanceRecords(ctx, []uuid.UUID{p.AccountID}, from, to)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}

	counts := make(map[string]int, months)
	for _, r := range records {
		counts[r.WorkDate.Format(entity.MonthLayout)]++
	}

	points := make([]entity.TrendPoint, 0, months)

	for i := range months {
		key := from.AddDate(0, i, 0).Format(entity.MonthLayout)
		points = append(points, entity.TrendPoint{Month: key, PresentDays: counts[key]})
	}

	return points, nil
}
