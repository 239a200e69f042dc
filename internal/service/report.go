package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

const teamReportMaxDays = 366

func (s *Service) reportRange(from, to string) (time.Time, time.Time, error) {
	if from == "" && to == "" {
		start, end := monthRange(s.today())
		return start, end, nil
	}

	start, err := time.Parse(entity.DateLayout, from)
	if err != nil {
		return time.Time{}, time.Time{}, entity.NewValidationError("Invalid start date", "from")
	}

	end, err := time.Parse(entity.DateLayout, to)
	if err != nil {
		return time.Time{}, time.Time{}, entity.NewValidationError("Invalid end date", "to")
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, entity.NewValidationError("End date cannot be before start date", "to")
	}

	if end.Sub(start) > teamReportMaxDays*24*time.Hour {
		return time.Time{}, time.Time{}, entity.NewValidationError(
			fmt.Sprintf("Report range cannot exceed %d days", teamReportMaxDays), "to")
	}

	return start, end, nil
}

// reportAccounts is the caller's team for managers and everyone for HR.
func (s *Service) reportAccounts(ctx context.Context, p entity.Principal) ([]entity.Account, error) {
	if p.Role == entity.RoleHR {
		return s.repo.SearchAccounts(ctx, "", 0)
	}

	acc, err := s.account(ctx, p)
	if err != nil {
		return nil, err
	}

	if acc.Team == "" {
		return []entity.Account{acc}, nil
	}

	return s.repo.AccountsByTeam(ctx, acc.Team)
}

// TeamReport aggregates attendance and approved leave per employee over
// [from, to]. Empty bounds select the current month.
func (s *Service) TeamReport(ctx context.Context, p entity.Principal, from, to string) (entity.TeamReport, error) {
	if err := authorize(p, entity.PermissionViewTeamReports); err != nil {
		return entity.TeamReport{}, err
	}

	start, end, err := s.reportRange(from, to)
	if err != nil {
		return entity.TeamReport{}, err
	}

	accounts, err := s.reportAccounts(ctx, p)
	if err != nil {
		return entity.TeamReport{}, fmt.Errorf("list accounts: %w", err)
	}

	report := entity.TeamReport{From: start, To: end, Rows: make([]entity.TeamReportRow, 0, len(accounts))}
	if len(accounts) == 0 {
		return report, nil
	}

	ids := make([]uuid.UUID, 0, len(accounts))
	rows := make(map[uuid.UUID]*entity.TeamReportRow, len(accounts))

	for _, a := range accounts {
		ids = append(ids, a.ID)
		report.Rows = append(report.Rows, entity.TeamReportRow{
			AccountID:   a.ID,
			FullName:    a.FullName,
			Team:        a.Team,
			HoursWorked: decimal.Zero,
			LeaveDays:   decimal.Zero,
		})
	}

	for i := range report.Rows {
		rows[report.Rows[i].AccountID] = &report.Rows[i]
	}

	records, err := s.repo.AttendanceRecords(ctx, ids, start, end)
	if err != nil {
		return entity.TeamReport{}, fmt.Errorf("list attendance records: %w", err)
	}

	for _, r := range records {
		row, ok := rows[r.AccountID]
		if !ok {
			continue
		}

		row.PresentDays++
		if r.Late {
			row.LateDays++
		}

		row.HoursWorked = row.HoursWorked.Add(r.HoursWorked())
	}

	q := entity.LeaveQuery{
		Kind:     entity.LeaveKindLeave,
		Statuses: []entity.LeaveStatus{entity.LeaveStatusApproved},
		From:     &start,
		To:       &end,
	}

	leave, err := s.repo.LeaveRequests(ctx, q)
	if err != nil {
		return entity.TeamReport{}, fmt.Errorf("list leave requests: %w", err)
	}

	for _, l := range leave {
		row, ok := rows[l.AccountID]
		if !ok {
			continue
		}

		row.LeaveDays = row.LeaveDays.Add(leaveDaysWithin(l, start, end))
	}

	return report, nil
}

// leaveDaysWithin clips a request to [from, to].
func leaveDaysWithin(l entity.LeaveRequest, from, to time.Time) decimal.Decimal {
	if l.HalfDay {
		return l.Days
	}

	start, end := l.StartDate, l.EndDate
	if start.Before(from) {
		start = from
	}

	if end.After(to) {
		end = to
	}

	if end.Before(start) {
		return decimal.Zero
	}

	return entity.LeaveDays(start, end, false)
}

const teamReportSheet = "Team Report"

// TeamReportXLSX renders TeamReport as a spreadsheet.
func (s *Service) TeamReportXLSX(ctx context.Context, p entity.Principal, from, to string) ([]byte, error) {
	report, err := s.TeamReport(ctx, p, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	err = f.SetSheetName("Sheet1", teamReportSheet)
	if err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	title := fmt.Sprintf("Attendance %s to %s", report.From.Format(entity.DateLayout), report.To.Format(entity.DateLayout))
	if err := f.SetCellValue(teamReportSheet, "A1", title); err != nil {
		return nil, fmt.Errorf("write title: %w", err)
	}

	header := []any{"Employee", "Team", "Present Days", "Late Days", "Hours Worked", "Leave Days"}
	if err := f.SetSheetRow(teamReportSheet, "A3", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	if err := f.SetCellStyle(teamReportSheet, "A3", "F3", bold); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, r := range report.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+4)
		if err != nil {
			return nil, err
		}

		row := []any{
			r.FullName,
			r.Team,
			r.PresentDays,
			r.LateDays,
			r.HoursWorked.InexactFloat64(),
			r.LeaveDays.InexactFloat64(),
		}

		if err := f.SetSheetRow(teamReportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	if err := f.SetColWidth(teamReportSheet, "A", "B", 24); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}

	return buf.Bytes(), nil
}
