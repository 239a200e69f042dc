package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

const notificationsLimit = 100

func (s *Service) Notifications(ctx context.Context, p entity.Principal) ([]entity.Notification, error) {
	list, err := s.repo.Notifications(ctx, p.AccountID, notificationsLimit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return list, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, p entity.Principal, id uuid.UUID) error {
	return s.repo.MarkNotificationRead(ctx, p.AccountID, id, s.now())
}
