package repository

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

func (r *Repository) CreateNotification(ctx context.Context, n entity.Notification) error {
	const q = `
	INSERT INTO notifications (id, account_id, title, body, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, q, n.ID, n.AccountID, n.Title, n.Body, n.CreatedAt)
	if err != nil {
		return mapErr(err)
	}

	return nil
}

func (r *Repository) Notifications(ctx context.Context, accountID uuid.UUID, limit uint64) ([]entity.Notification, error) {
	const q = `
	SELECT id, account_id, title, body, created_at, read_at
	FROM notifications
	WHERE account_id = $1
	ORDER BY created_at DESC
	LIMIT $2
	`

	rows, err := r.db.Query(ctx, q, accountID, int64(limit))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	list := make([]entity.Notification, 0)

	for rows.Next() {
		var n entity.Notification

		err := rows.Scan(&n.ID, &n.AccountID, &n.Title, &n.Body, &n.CreatedAt, &n.ReadAt)
		if err != nil {
			return nil, err
		}

		list = append(list, n)
	}

	return list, rows.Err()
}

func (r *Repository) CountUnread(ctx context.Context, accountID uuid.UUID) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE account_id = $1 AND read_at IS NULL`, accountID).
		Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// MarkNotificationRead keeps the first read time.
func (r *Repository) MarkNotificationRead(ctx context.Context, accountID, id uuid.UUID, at time.Time) error {
	const q = `UPDATE notifications SET read_at = COALESCE(read_at, $1) WHERE id = $2 AND account_id = $3`
	return r.execOne(ctx, q, at, id, accountID)
}

func (r *Repository) NotificationSettings(ctx context.Context, accountID uuid.UUID) (entity.NotificationSettings, error) {
	s := entity.NotificationSettings{AccountID: accountID}

	err := r.db.QueryRow(ctx, `SELECT email, push, reminder FROM notification_settings WHERE account_id = $1`, accountID).
		Scan(&s.Email, &s.Push, &s.Reminder)
	if err != nil {
		return entity.NotificationSettings{}, mapErr(err)
	}

	return s, nil
}

func (r *Repository) SaveNotificationSettings(ctx context.Context, s entity.NotificationSettings) error {
	const q = `
	INSERT INTO notification_settings (account_id, email, push, reminder)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (account_id) DO UPDATE SET
		email = EXCLUDED.email,
		push = EXCLUDED.push,
		reminder = EXCLUDED.reminder,
		updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, q, s.AccountID, s.Email, s.Push, s.Reminder)
	if err != nil {
		return mapErr(err)
	}

	return nil
}

func (r *Repository) OrgSettings(ctx context.Context) (entity.OrgSettings, error) {
	var s entity.OrgSettings

	err := r.db.QueryRow(ctx, `SELECT grace_period_minutes, updated_at FROM org_settings WHERE id = 1`).
		Scan(&s.GracePeriodMinutes, &s.UpdatedAt)
	if err != nil {
		return entity.OrgSettings{}, mapErr(err)
	}

	return s, nil
}

func (r *Repository) SaveOrgSettings(ctx context.Context, s entity.OrgSettings) error {
	const q = `
	INSERT INTO org_settings (id, grace_period_minutes, updated_at)
	VALUES (1, $1, $2)
	ON CONFLICT (id) DO UPDATE SET
		grace_period_minutes = EXCLUDED.grace_period_minutes,
		updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, q, s.GracePeriodMinutes, s.UpdatedAt)

	return err
}
