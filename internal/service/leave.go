package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

type leaveForm struct {
	Kind        string `json:"kind"          validate:"oneof=leave wfh"`
	LeaveTypeID *int64 `json:"leave_type_id" validate:"required_if=Kind leave"`
	StartDate   string `json:"start_date"    validate:"notblank"`
	EndDate     string `json:"end_date"      validate:"notblank"`
	Reason      string `json:"reason"        validate:"notblank,max=1000"`
}

func (s *Service) SubmitLeaveRequest(ctx context.Context, p entity.Principal, in entity.LeaveRequestInput) (entity.LeaveRequest, error) {
	if err := authorize(p, entity.PermissionRequestLeave); err != nil {
		return entity.LeaveRequest{}, err
	}

	form := leaveForm{
		Kind:        in.Kind,
		LeaveTypeID: in.LeaveTypeID,
		StartDate:   trimmed(in.StartDate),
		EndDate:     trimmed(in.EndDate),
		Reason:      in.Reason,
	}

	if form.Kind == "" {
		form.Kind = string(entity.LeaveKindLeave)
	}

	if form.Kind == string(entity.LeaveKindWFH) {
		form.LeaveTypeID = nil
	}

	if err := validate.Struct(form); err != nil {
		if fields := missingFields(err); len(fields) > 0 {
			return entity.LeaveRequest{}, entity.NewValidationError(entity.FillAllFieldsMessage, fields...)
		}

		return entity.LeaveRequest{}, validateStruct(form, "Invalid leave request")
	}

	start, err := time.Parse(entity.DateLayout, form.StartDate)
	if err != nil {
		return entity.LeaveRequest{}, entity.NewValidationError("Invalid start date", "start_date")
	}

	end, err := time.Parse(entity.DateLayout, form.EndDate)
	if err != nil {
		return entity.LeaveRequest{}, entity.NewValidationError("Invalid end date", "end_date")
	}

	if end.Before(start) {
		return entity.LeaveRequest{}, entity.NewValidationError("End date cannot be before start date", "end_date")
	}

	if in.HalfDay && !end.Equal(start) {
		return entity.LeaveRequest{}, entity.NewValidationError("Half day applies to a single date", "half_day")
	}

	req := entity.LeaveRequest{
		ID:        uuid.Must(uuid.NewV4()),
		AccountID: p.AccountID,
		Kind:      entity.LeaveKind(form.Kind),
		StartDate: start,
		EndDate:   end,
		HalfDay:   in.HalfDay,
		Days:      entity.LeaveDays(start, end, in.HalfDay),
		Reason:    trimmed(form.Reason),
		Status:    entity.LeaveStatusPending,
		CreatedAt: s.now(),
	}

	if req.Kind == entity.LeaveKindLeave {
		lt, err := s.repo.LeaveType(ctx, *form.LeaveTypeID)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return entity.LeaveRequest{}, entity.NewValidationError("Unknown leave type", "leave_type_id")
			}

			return entity.LeaveRequest{}, fmt.Errorf("get leave type: %w", err)
		}

		req.LeaveTypeID = &lt.ID
		req.LeaveTypeLabel = lt.Label
	} else {
		req.LeaveTypeLabel = "Work From Home"
	}

	acc, err := s.account(ctx, p)
	if err != nil {
		return entity.LeaveRequest{}, err
	}

	req.EmployeeName = acc.FullName

	err = s.repo.CreateLeaveRequest(ctx, req)
	if err != nil {
		return entity.LeaveRequest{}, fmt.Errorf("create leave request: %w", err)
	}

	slog.InfoContext(ctx, "leave request submitted", "request_id", req.ID, "kind", req.Kind, "days", req.Days)

	s.notifyApprovers(ctx, acc, req)

	return req, nil
}

func (s *Service) notifyApprovers(ctx context.Context, requester entity.Account, req entity.LeaveRequest) {
	approvers, err := s.repo.Approvers(ctx, requester.Team)
	if err != nil {
		slog.ErrorContext(ctx, "list approvers", "error", err)
		return
	}

	var recipients []string

	for _, a := range approvers {
		if a.ID == requester.ID || a.Email == "" {
			continue
		}

		recipients = append(recipients, a.Email)
	}

	s.notifier.SendEmail(ctx,
		fmt.Sprintf("New %s request from %s", req.LeaveTypeLabel, requester.FullName),
		fmt.Sprintf("%s requested %s from %s to %s (%s days).\n\nReason: %s",
			requester.FullName, req.LeaveTypeLabel,
			req.StartDate.Format(entity.DateLayout), req.EndDate.Format(entity.DateLayout),
			req.Days.String(), req.Reason),
		recipients,
	)
}

func (s *Service) MyLeaveRequests(ctx context.Context, p entity.Principal) ([]entity.LeaveRequest, error) {
	reqs, err := s.repo.LeaveRequests(ctx, entity.LeaveQuery{AccountID: &p.AccountID})
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}

	return reqs, nil
}

// CancelLeaveRequest withdraws the caller's own pending request.
func (s *Service) CancelLeaveRequest(ctx context.Context, p entity.Principal, id uuid.UUID) error {
	req, err := s.repo.LeaveRequest(ctx, id)
	if err != nil {
		return err
	}

	if req.AccountID != p.AccountID {
		return entity.ErrNotFound
	}

	if req.Status != entity.LeaveStatusPending {
		return entity.ErrLeaveNotPending
	}

	now := s.now()
	req.Status = entity.LeaveStatusCancelled
	req.DecidedAt = &now

	err = s.repo.UpdateLeaveStatus(ctx, req)
	if err != nil {
		return fmt.Errorf("cancel leave request: %w", err)
	}

	return nil
}

// LeaveBalance counts leave (not WFH) starting in year against the annual
// allowance.
func (s *Service) LeaveBalance(ctx context.Context, p entity.Principal, year int) (entity.LeaveBalance, error) {
	if year == 0 {
		year = s.today().Year()
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	reqs, err := s.repo.LeaveRequests(ctx, entity.LeaveQuery{
		AccountID: &p.AccountID,
		Kind:      entity.LeaveKindLeave,
		Statuses:  []entity.LeaveStatus{entity.LeaveStatusApproved, entity.LeaveStatusPending},
		From:      &from,
		To:        &to,
	})
	if err != nil {
		return entity.LeaveBalance{}, fmt.Errorf("list leave requests: %w", err)
	}

	b := entity.LeaveBalance{
		Year:      year,
		Allowance: s.cfg.Attendance.AnnualLeaveDays,
		Used:      decimal.Zero,
		Pending:   decimal.Zero,
	}

	for _, r := range reqs {
		if r.StartDate.Year() != year {
			continue
		}

		switch r.Status {
		case entity.LeaveStatusApproved:
			b.Used = b.Used.Add(r.Days)
		case entity.LeaveStatusPending:
			b.Pending = b.Pending.Add(r.Days)
		}
	}

	b.Remaining = b.Allowance.Sub(b.Used)

	return b, nil
}

func (s *Service) LeaveTypes(ctx context.Context) ([]entity.LeaveType, error) {
	types, err := s.repo.LeaveTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leave types: %w", err)
	}

	return types, nil
}
