package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

func cardValues(cards []entity.StatsCard) map[string]string {
	values := make(map[string]string, len(cards))
	for _, c := range cards {
		values[c.Title] = c.Value
	}

	return values
}

func TestService_Dashboard_Employee(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleEmployee)

	d.repo.EXPECT().AccountByID(gomock.Any(), p.AccountID).Return(account(p.AccountID, "employee1", entity.RoleEmployee, "Engineering"), nil)
	d.repo.EXPECT().CountUnread(gomock.Any(), p.AccountID).Return(2, nil)
	d.repo.EXPECT().AttendanceRecords(gomock.Any(), gomock.Any(), gomock.Any(), day("2025-03-31")).
		Return([]entity.AttendanceRecord{{WorkDate: day("2025-03-03")}, {WorkDate: day("2025-03-04")}}, nil).Times(2)
	d.repo.EXPECT().LeaveRequests(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	summary, err := s.Dashboard(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, 2, summary.Unread)
	require.Equal(t, map[string]string{
		"Present Days":     "2",
		"Leave Balance":    "20",
		"Pending Requests": "0",
	}, cardValues(summary.Cards))
	require.Len(t, summary.Trend, 6)
}

func TestService_Dashboard_ManagerWithoutTeam(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleManager)

	d.repo.EXPECT().AccountByID(gomock.Any(), p.AccountID).Return(account(p.AccountID, "manager9", entity.RoleManager, ""), nil).AnyTimes()
	d.repo.EXPECT().CountUnread(gomock.Any(), p.AccountID).Return(0, nil)

	summary, err := s.Dashboard(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"Team Size":         "0",
		"Pending Approvals": "0",
		"Present Today":     "0",
	}, cardValues(summary.Cards))
}

func TestService_Dashboard_HR(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleHR)

	d.repo.EXPECT().AccountByID(gomock.Any(), p.AccountID).Return(account(p.AccountID, "hr1", entity.RoleHR, "People"), nil)
	d.repo.EXPECT().CountUnread(gomock.Any(), p.AccountID).Return(0, nil)
	d.repo.EXPECT().CountAccounts(gomock.Any()).Return(42, nil)
	d.repo.EXPECT().LeaveRequests(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entity.LeaveQuery) ([]entity.LeaveRequest, error) {
			if q.From != nil {
				return []entity.LeaveRequest{{ID: newID()}, {ID: newID()}}, nil
			}

			return []entity.LeaveRequest{{ID: newID()}}, nil
		}).Times(2)

	summary, err := s.Dashboard(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, "HR Dashboard", summary.Title)
	require.Equal(t, map[string]string{
		"Total Employees":  "42",
		"On Leave Today":   "2",
		"Pending Requests": "1",
	}, cardValues(summary.Cards))
}
