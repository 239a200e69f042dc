package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/view"
)

// Dashboard builds the stats of the caller's role dashboard.
func (s *Service) Dashboard(ctx context.Context, p entity.Principal) (entity.DashboardSummary, error) {
	if err := authorize(p, entity.PermissionViewDashboard); err != nil {
		return entity.DashboardSummary{}, err
	}

	acc, err := s.account(ctx, p)
	if err != nil {
		return entity.DashboardSummary{}, err
	}

	unread, err := s.repo.CountUnread(ctx, p.AccountID)
	if err != nil {
		return entity.DashboardSummary{}, fmt.Errorf("count unread notifications: %w", err)
	}

	summary := entity.DashboardSummary{
		Role:     p.Role,
		FullName: acc.FullName,
		Unread:   unread,
	}

	switch p.Role {
	case entity.RoleEmployee:
		summary.Title = "Dashboard"
		err = s.employeeDashboard(ctx, p, &summary)
	case entity.RoleManager:
		summary.Title = "Manager Dashboard"
		err = s.managerDashboard(ctx, p, acc, &summary)
	case entity.RoleHR:
		summary.Title = "HR Dashboard"
		err = s.hrDashboard(ctx, p, &summary)
	default:
		err = entity.ErrForbidden
	}

	if err != nil {
		return entity.DashboardSummary{}, err
	}

	return summary, nil
}

func (s *Service) employeeDashboard(ctx context.Context, p entity.Principal, summary *entity.DashboardSummary) error {
	report, err := s.AttendanceReport(ctx, p, "")
	if err != nil {
		return err
	}

	balance, err := s.LeaveBalance(ctx, p, 0)
	if err != nil {
		return err
	}

	pending, err := s.repo.LeaveRequests(ctx, entity.LeaveQuery{
		AccountID: &p.AccountID,
		Statuses:  []entity.LeaveStatus{entity.LeaveStatusPending},
	})
	if err != nil {
		return fmt.Errorf("list pending requests: %w", err)
	}

	trend, err := s.AttendanceTrend(ctx, p, 0)
	if err != nil {
		return err
	}

	summary.Cards = []entity.StatsCard{
		view.NewStatsCard("Present Days", strconv.Itoa(report.PresentDays), "This month", "time-outline"),
		view.NewStatsCard("Leave Balance", balance.Remaining.String(), "Days remaining", "cafe-outline"),
		view.NewStatsCard("Pending Requests", strconv.Itoa(len(pending)), "Awaiting approval", "hourglass-outline"),
	}
	summary.Trend = trend
	summary.Pending = pending

	return nil
}

func (s *Service) managerDashboard(ctx context.Context, p entity.Principal, acc entity.Account, summary *entity.DashboardSummary) error {
	var team []entity.Account

	if acc.Team != "" {
		members, err := s.repo.AccountsByTeam(ctx, acc.Team)
		if err != nil {
			return fmt.Errorf("list team: %w", err)
		}

		team = members
	}

	ids := make([]uuid.UUID, 0, len(team))

	for _, a := range team {
		if a.ID != acc.ID {
			ids = append(ids, a.ID)
		}
	}

	pending, err := s.PendingApprovals(ctx, p, entity.LeaveFilterAll)
	if err != nil {
		return err
	}

	present := 0

	if len(ids) > 0 {
		today := s.today()

		records, err := s.repo.AttendanceRecords(ctx, ids, today, today)
		if err != nil {
			return fmt.Errorf("list attendance records: %w", err)
		}

		present = len(records)
	}

	summary.Cards = []entity.StatsCard{
		view.NewStatsCard("Team Size", strconv.Itoa(len(ids)), acc.Team, "people-outline"),
		view.NewStatsCard("Pending Approvals", strconv.Itoa(len(pending)), "Leave and WFH", "checkmark-done-outline"),
		view.NewStatsCard("Present Today", strconv.Itoa(present), "Clocked in", "time-outline"),
	}
	summary.Pending = pending

	return nil
}

func (s *Service) hrDashboard(ctx context.Context, p entity.Principal, summary *entity.DashboardSummary) error {
	total, err := s.repo.CountAccounts(ctx)
	if err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}

	today := s.today()

	onLeave, err := s.repo.LeaveRequests(ctx, entity.LeaveQuery{
		Kind:     entity.LeaveKindLeave,
		Statuses: []entity.LeaveStatus{entity.LeaveStatusApproved},
		From:     &today,
		To:       &today,
	})
	if err != nil {
		return fmt.Errorf("list leave requests: %w", err)
	}

	pending, err := s.PendingApprovals(ctx, p, entity.LeaveFilterAll)
	if err != nil {
		return err
	}

	summary.Cards = []entity.StatsCard{
		view.NewStatsCard("Total Employees", strconv.Itoa(total), "", "people-outline"),
		view.NewStatsCard("On Leave Today", strconv.Itoa(len(onLeave)), "", "cafe-outline"),
		view.NewStatsCard("Pending Requests", strconv.Itoa(len(pending)), "Organisation wide", "alert-circle-outline"),
	}
	summary.Pending = pending

	return nil
}
