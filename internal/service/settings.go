package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/pkg/logger"
)

func (s *Service) notificationSettings(ctx context.Context, accountID uuid.UUID) (entity.NotificationSettings, error) {
	settings, err := s.repo.NotificationSettings(ctx, accountID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.DefaultNotificationSettings(accountID), nil
		}

		return entity.NotificationSettings{}, fmt.Errorf("get notification settings: %w", err)
	}

	return settings, nil
}

func (s *Service) NotificationSettings(ctx context.Context, p entity.Principal) (entity.NotificationSettings, error) {
	return s.notificationSettings(ctx, p.AccountID)
}

func (s *Service) UpdateNotificationSettings(ctx context.Context, p entity.Principal, settings entity.NotificationSettings) (entity.NotificationSettings, error) {
	settings.AccountID = p.AccountID

	err := s.repo.SaveNotificationSettings(ctx, settings)
	if err != nil {
		return entity.NotificationSettings{}, fmt.Errorf("save notification settings: %w", err)
	}

	return settings, nil
}

// OrgSettings falls back to the configured defaults until HR saves them.
func (s *Service) OrgSettings(ctx context.Context) (entity.OrgSettings, error) {
	settings, err := s.repo.OrgSettings(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.OrgSettings{GracePeriodMinutes: s.cfg.Attendance.DefaultGraceMinutes}, nil
		}

		return entity.OrgSettings{}, fmt.Errorf("get org settings: %w", err)
	}

	return settings, nil
}

func (s *Service) UpdateOrgSettings(ctx context.Context, p entity.Principal, settings entity.OrgSettings) (entity.OrgSettings, error) {
	if err := authorize(p, entity.PermissionManageConfiguration); err != nil {
		return entity.OrgSettings{}, err
	}

	msg := fmt.Sprintf("Grace period must be between %d and %d minutes", entity.GraceMinutesMin, entity.GraceMinutesMax)
	if err := validateStruct(settings, msg); err != nil {
		return entity.OrgSettings{}, err
	}

	settings.UpdatedAt = s.now()

	err := s.repo.SaveOrgSettings(ctx, settings)
	if err != nil {
		return entity.OrgSettings{}, fmt.Errorf("save org settings: %w", err)
	}

	slog.InfoContext(logger.SetLogType(ctx, "audit"), "org settings updated",
		"grace_period_minutes", settings.GracePeriodMinutes, "by", p.AccountID)

	return settings, nil
}

type leaveTypeForm struct {
	Label string `json:"label" validate:"notblank,max=100"`
}

func (s *Service) AddLeaveType(ctx context.Context, p entity.Principal, label string) (entity.LeaveType, error) {
	if err := authorize(p, entity.PermissionManageConfiguration); err != nil {
		return entity.LeaveType{}, err
	}

	form := leaveTypeForm{Label: trimmed(label)}
	if err := validateStruct(form, "Please enter a leave type name"); err != nil {
		return entity.LeaveType{}, err
	}

	lt, err := s.repo.CreateLeaveType(ctx, form.Label)
	if err != nil {
		return entity.LeaveType{}, fmt.Errorf("create leave type: %w", err)
	}

	return lt, nil
}

func (s *Service) RenameLeaveType(ctx context.Context, p entity.Principal, id int64, label string) (entity.LeaveType, error) {
	if err := authorize(p, entity.PermissionManageConfiguration); err != nil {
		return entity.LeaveType{}, err
	}

	form := leaveTypeForm{Label: trimmed(label)}
	if err := validateStruct(form, "Please enter a leave type name"); err != nil {
		return entity.LeaveType{}, err
	}

	err := s.repo.RenameLeaveType(ctx, id, form.Label)
	if err != nil {
		return entity.LeaveType{}, fmt.Errorf("rename leave type: %w", err)
	}

	return entity.LeaveType{ID: id, Label: form.Label}, nil
}

// DeleteLeaveType removes a type. Existing requests keep their label.
func (s *Service) DeleteLeaveType(ctx context.Context, p entity.Principal, id int64) error {
	if err := authorize(p, entity.PermissionManageConfiguration); err != nil {
		return err
	}

	err := s.repo.DeleteLeaveType(ctx, id)
	if err != nil {
		return fmt.Errorf("delete leave type: %w", err)
	}

	return nil
}
