package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

func TestService_PendingApprovals(t *testing.T) {
	t.Run("manager sees own team", func(t *testing.T) {
		s, d := newService(t)
		p := principal(entity.RoleManager)

		d.repo.EXPECT().AccountByID(gomock.Any(), p.AccountID).Return(account(p.AccountID, "manager1", entity.RoleManager, "Engineering"), nil)
		d.repo.EXPECT().LeaveRequests(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entity.LeaveQuery) ([]entity.LeaveRequest, error) {
				require.Equal(t, "Engineering", q.Team)
				require.Equal(t, p.AccountID, *q.ExcludeAccountID)
				require.Equal(t, entity.LeaveKindWFH, q.Kind)
				require.Equal(t, []entity.LeaveStatus{entity.LeaveStatusPending}, q.Statuses)

				return []entity.LeaveRequest{{ID: newID()}}, nil
			})

		reqs, err := s.PendingApprovals(context.Background(), p, entity.LeaveFilterWFH)
		require.NoError(t, err)
		require.Len(t, reqs, 1)
	})

	t.Run("manager without team", func(t *testing.T) {
		s, d := newService(t)
		p := principal(entity.RoleManager)

		d.repo.EXPECT().AccountByID(gomock.Any(), p.AccountID).Return(account(p.AccountID, "manager2", entity.RoleManager, ""), nil)

		reqs, err := s.PendingApprovals(context.Background(), p, entity.LeaveFilterAll)
		require.NoError(t, err)
		require.Empty(t, reqs)
	})

	t.Run("hr sees everyone", func(t *testing.T) {
		s, d := newService(t)
		p := principal(entity.RoleHR)

		d.repo.EXPECT().LeaveRequests(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entity.LeaveQuery) ([]entity.LeaveRequest, error) {
				require.Empty(t, q.Team)
				require.Empty(t, q.Kind)

				return nil, nil
			})

		_, err := s.PendingApprovals(context.Background(), p, entity.LeaveFilterAll)
		require.NoError(t, err)
	})

	t.Run("employee", func(t *testing.T) {
		s, _ := newService(t)

		_, err := s.PendingApprovals(context.Background(), principal(entity.RoleEmployee), entity.LeaveFilterAll)
		require.ErrorIs(t, err, entity.ErrForbidden)
	})
}

func TestService_DecideLeaveRequest_Rejections(t *testing.T) {
	manager := principal(entity.RoleManager)
	employeeID := newID()

	pending := entity.LeaveRequest{ID: newID(), AccountID: employeeID, Status: entity.LeaveStatusPending}

	tests := []struct {
		name     string
		p        entity.Principal
		decision entity.LeaveDecision
		prepare  func(d deps)
		wantErr  error
		wantMsg  string
	}{
		{
			name:     "comment too long",
			p:        manager,
			decision: entity.LeaveDecision{Comment: strings.Repeat("a", 501)},
			wantMsg:  "Comment is too long",
		},
		{
			name: "own request",
			p:    manager,
			prepare: func(d deps) {
				own := pending
				own.AccountID = manager.AccountID
				d.repo.EXPECT().LeaveRequest(gomock.Any(), pending.ID).Return(own, nil)
			},
			wantErr: entity.ErrForbidden,
		},
		{
			name: "other team",
			p:    manager,
			prepare: func(d deps) {
				d.repo.EXPECT().LeaveRequest(gomock.Any(), pending.ID).Return(pending, nil)
				d.repo.EXPECT().AccountByID(gomock.Any(), employeeID).Return(account(employeeID, "sales1", entity.RoleEmployee, "Sales"), nil)
				d.repo.EXPECT().AccountByID(gomock.Any(), manager.AccountID).Return(account(manager.AccountID, "manager1", entity.RoleManager, "Engineering"), nil)
			},
			wantErr: entity.ErrForbidden,
		},
		{
			name: "already decided",
			p:    manager,
			prepare: func(d deps) {
				decided := pending
				decided.Status = entity.LeaveStatusRejected
				d.repo.EXPECT().LeaveRequest(gomock.Any(), pending.ID).Return(decided, nil)
				d.repo.EXPECT().AccountByID(gomock.Any(), employeeID).Return(account(employeeID, "employee1", entity.RoleEmployee, "Engineering"), nil)
				d.repo.EXPECT().AccountByID(gomock.Any(), manager.AccountID).Return(account(manager.AccountID, "manager1", entity.RoleManager, "Engineering"), nil)
			},
			wantErr: entity.ErrLeaveNotPending,
		},
		{
			name:    "employee",
			p:       principal(entity.RoleEmployee),
			wantErr: entity.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, d := newService(t)
			if tt.prepare != nil {
				tt.prepare(d)
			}

			_, err := s.DecideLeaveRequest(context.Background(), tt.p, pending.ID, tt.decision)

			if tt.wantMsg != "" {
				var ve *entity.ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, tt.wantMsg, ve.Message)

				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_DecideLeaveRequest(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleHR)
	employee := account(newID(), "employee1", entity.RoleEmployee, "Engineering")

	req := entity.LeaveRequest{
		ID:             newID(),
		AccountID:      employee.ID,
		Kind:           entity.LeaveKindLeave,
		LeaveTypeLabel: "Sick Leave",
		StartDate:      day("2025-03-10"),
		EndDate:        day("2025-03-11"),
		Status:         entity.LeaveStatusPending,
	}

	d.repo.EXPECT().LeaveRequest(gomock.Any(), req.ID).Return(req, nil)
	d.repo.EXPECT().AccountByID(gomock.Any(), employee.ID).Return(employee, nil)
	d.repo.EXPECT().UpdateLeaveStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entity.LeaveRequest) error {
			require.Equal(t, entity.LeaveStatusApproved, r.Status)
			require.Equal(t, p.AccountID, *r.DecidedBy)
			require.Equal(t, testNow, *r.DecidedAt)

			return nil
		})
	d.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n entity.Notification) error {
			require.Equal(t, employee.ID, n.AccountID)
			require.Equal(t, "Leave request approved", n.Title)
			require.Contains(t, n.Body, "Get well soon")

			return nil
		})
	d.repo.EXPECT().NotificationSettings(gomock.Any(), employee.ID).Return(entity.NotificationSettings{}, entity.ErrNotFound)
	d.notifier.EXPECT().SendEmail(gomock.Any(), "Leave request approved", gomock.Any(), []string{employee.Email})

	got, err := s.DecideLeaveRequest(context.Background(), p, req.ID, entity.LeaveDecision{Approve: true, Comment: " Get well soon "})
	require.NoError(t, err)
	require.Equal(t, entity.LeaveStatusApproved, got.Status)
	require.Equal(t, "Get well soon", got.Comment)
}

func TestService_DecideLeaveRequest_EmailOff(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleManager)
	employee := account(newID(), "employee1", entity.RoleEmployee, "Engineering")
	req := entity.LeaveRequest{ID: newID(), AccountID: employee.ID, Status: entity.LeaveStatusPending}

	d.repo.EXPECT().LeaveRequest(gomock.Any(), req.ID).Return(req, nil)
	d.repo.EXPECT().AccountByID(gomock.Any(), employee.ID).Return(employee, nil)
	d.repo.EXPECT().AccountByID(gomock.Any(), p.AccountID).Return(account(p.AccountID, "manager1", entity.RoleManager, "Engineering"), nil)
	d.repo.EXPECT().UpdateLeaveStatus(gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().NotificationSettings(gomock.Any(), employee.ID).
		Return(entity.NotificationSettings{AccountID: employee.ID, Email: false, Push: true}, nil)

	got, err := s.DecideLeaveRequest(context.Background(), p, req.ID, entity.LeaveDecision{Approve: false})
	require.NoError(t, err)
	require.Equal(t, entity.LeaveStatusRejected, got.Status)
}
