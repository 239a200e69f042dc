package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

// PendingApprovals lists the requests the caller may decide: a manager sees
// the own team, HR sees everyone. Own requests are never listed.
func (s *Service) PendingApprovals(ctx context.Context, p entity.Principal, filter entity.LeaveFilter) ([]entity.LeaveRequest, error) {
	if err := authorize(p, entity.PermissionApproveLeave); err != nil {
		return nil, err
	}

	q := entity.LeaveQuery{
		ExcludeAccountID: &p.AccountID,
		Kind:             filter.Kind(),
		Statuses:         []entity.LeaveStatus{entity.LeaveStatusPending},
	}

	if p.Role != entity.RoleHR {
		acc, err := s.account(ctx, p)
		if err != nil {
			return nil, err
		}

		if acc.Team == "" {
			return []entity.LeaveRequest{}, nil
		}

		q.Team = acc.Team
	}

	reqs, err := s.repo.LeaveRequests(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}

	return reqs, nil
}

func (s *Service) DecideLeaveRequest(ctx context.Context, p entity.Principal, id uuid.UUID, d entity.LeaveDecision) (entity.LeaveRequest, error) {
	if err := authorize(p, entity.PermissionApproveLeave); err != nil {
		return entity.LeaveRequest{}, err
	}

	if err := validateStruct(d, "Comment is too long"); err != nil {
		return entity.LeaveRequest{}, err
	}

	req, err := s.repo.LeaveRequest(ctx, id)
	if err != nil {
		return entity.LeaveRequest{}, err
	}

	if req.AccountID == p.AccountID {
		return entity.LeaveRequest{}, entity.ErrForbidden
	}

	employee, err := s.repo.AccountByID(ctx, req.AccountID)
	if err != nil {
		return entity.LeaveRequest{}, fmt.Errorf("get employee: %w", err)
	}

	if p.Role != entity.RoleHR {
		approver, err := s.account(ctx, p)
		if err != nil {
			return entity.LeaveRequest{}, err
		}

		if approver.Team == "" || approver.Team != employee.Team {
			return entity.LeaveRequest{}, entity.ErrForbidden
		}
	}

	if req.Status != entity.LeaveStatusPending {
		return entity.LeaveRequest{}, entity.ErrLeaveNotPending
	}

	now := s.now()

	req.Status = entity.LeaveStatusRejected
	if d.Approve {
		req.Status = entity.LeaveStatusApproved
	}

	req.DecidedBy = &p.AccountID
	req.DecidedAt = &now
	req.Comment = trimmed(d.Comment)

	err = s.repo.UpdateLeaveStatus(ctx, req)
	if err != nil {
		return entity.LeaveRequest{}, fmt.Errorf("update leave status: %w", err)
	}

	s.metrics.LeaveDecision(string(req.Status))

	slog.InfoContext(ctx, "leave request decided", "request_id", req.ID, "status", req.Status)

	body := fmt.Sprintf("Your %s request for %s to %s was %s.",
		req.LeaveTypeLabel, req.StartDate.Format(entity.DateLayout), req.EndDate.Format(entity.DateLayout), req.Status)
	if req.Comment != "" {
		body += "\n\nComment: " + req.Comment
	}

	s.notify(ctx, employee, fmt.Sprintf("Leave request %s", req.Status), body)

	return req, nil
}
