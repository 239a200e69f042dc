package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Notification struct {
	ID        uuid.UUID  `json:"id"`
	AccountID uuid.UUID  `json:"-"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

type NotificationSettings struct {
	AccountID uuid.UUID `json:"-"`
	Email     bool      `json:"email"`
	Push      bool      `json:"push"`
	Reminder  bool      `json:"reminder"`
}

func DefaultNotificationSettings(accountID uuid.UUID) NotificationSettings {
	return NotificationSettings{
		AccountID: accountID,
		Email:     true,
		Push:      true,
		Reminder:  false,
	}
}

const (
	GraceMinutesMin = 0
	GraceMinutesMax = 120
)

type OrgSettings struct {
	GracePeriodMinutes int       `json:"grace_period_minutes" validate:"min=0,max=120"`
	UpdatedAt          time.Time `json:"updated_at"`
}
