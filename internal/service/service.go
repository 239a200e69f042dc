package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type AccountRepository interface {
	CreateAccount(ctx context.Context, a entity.Account) error
	UpsertAccount(ctx context.Context, a entity.Account) (entity.Account, error)
	AccountByID(ctx context.Context, id uuid.UUID) (entity.Account, error)
	AccountByIdentifier(ctx context.Context, identifier string) (entity.Account, error)
	AccountByEmail(ctx context.Context, email string) (entity.Account, error)
	AccountsByTeam(ctx context.Context, team string) ([]entity.Account, error)
	Approvers(ctx context.Context, team string) ([]entity.Account, error)
	SearchAccounts(ctx context.Context, query string, limit uint64) ([]entity.Account, error)
	CountAccounts(ctx context.Context) (int, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	UpdateProfile(ctx context.Context, id uuid.UUID, upd entity.AccountUpdate) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, s entity.Session) error
	Session(ctx context.Context, id uuid.UUID) (entity.Session, error)
	// UpdateSession locks the session row, applies fn and stores its result.
	// Nothing is stored when fn fails.
	UpdateSession(ctx context.Context, id uuid.UUID, fn func(entity.Session) (entity.Session, error)) (entity.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	DeleteSessionsByAccount(ctx context.Context, accountID uuid.UUID) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type AttemptRepository interface {
	SaveAttempt(ctx context.Context, a entity.LoginAttempt) error
	DeleteAttemptsBefore(ctx context.Context, before time.Time) (int64, error)
}

type LeaveRepository interface {
	LeaveTypes(ctx context.Context) ([]entity.LeaveType, error)
	LeaveType(ctx context.Context, id int64) (entity.LeaveType, error)
	CreateLeaveType(ctx context.Context, label string) (entity.LeaveType, error)
	RenameLeaveType(ctx context.Context, id int64, label string) error
	DeleteLeaveType(ctx context.Context, id int64) error
	CreateLeaveRequest(ctx context.Context, r entity.LeaveRequest) error
	LeaveRequest(ctx context.Context, id uuid.UUID) (entity.LeaveRequest, error)
	LeaveRequests(ctx context.Context, q entity.LeaveQuery) ([]entity.LeaveRequest, error)
	// UpdateLeaveStatus changes a pending request. It returns
	// entity.ErrLeaveNotPending when the request is no longer pending.
	UpdateLeaveStatus(ctx context.Context, r entity.LeaveRequest) error
}

type AttendanceRepository interface {
	AttendanceRecord(ctx context.Context, accountID uuid.UUID, day time.Time) (entity.AttendanceRecord, error)
	CreateAttendanceRecord(ctx context.Context, r entity.AttendanceRecord) error
	CloseAttendanceRecord(ctx context.Context, id uuid.UUID, clockOut time.Time) error
	AttendanceRecords(ctx context.Context, accountIDs []uuid.UUID, from, to time.Time) ([]entity.AttendanceRecord, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n entity.Notification) error
	Notifications(ctx context.Context, accountID uuid.UUID, limit uint64) ([]entity.Notification, error)
	CountUnread(ctx context.Context, accountID uuid.UUID) (int, error)
	MarkNotificationRead(ctx context.Context, accountID, id uuid.UUID, at time.Time) error
	NotificationSettings(ctx context.Context, accountID uuid.UUID) (entity.NotificationSettings, error)
	SaveNotificationSettings(ctx context.Context, s entity.NotificationSettings) error
}

type SettingsRepository interface {
	OrgSettings(ctx context.Context) (entity.OrgSettings, error)
	SaveOrgSettings(ctx context.Context, s entity.OrgSettings) error
}

type Repository interface {
	AccountRepository
	SessionRepository
	AttemptRepository
	LeaveRepository
	AttendanceRepository
	NotificationRepository
	SettingsRepository
}

// IdentityProvider checks a credential triple. Every mismatch is reported as
// entity.ErrInvalidCredentials.
type IdentityProvider interface {
	Authenticate(ctx context.Context, identifier, password string, role entity.Role) (entity.Account, error)
}

type Notifier interface {
	SendEmail(ctx context.Context, subject, message string, recipients []string)
}

type Metrics interface {
	Login(role string, success bool)
	Transition(event string, ok bool)
	LeaveDecision(status string)
}

type Service struct {
	cfg      config.Config
	repo     Repository
	identity IdentityProvider
	notifier Notifier
	metrics  Metrics
	now      func() time.Time
}

func NewService(
	cfg config.Config,
	repo Repository,
	identity IdentityProvider,
	notifier Notifier,
	metrics Metrics,
) *Service {
	return &Service{
		cfg:      cfg,
		repo:     repo,
		identity: identity,
		notifier: notifier,
		metrics:  metrics,
		now:      time.Now,
	}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) location() *time.Location {
	return s.cfg.Attendance.Location()
}

// today returns the current local date as a UTC midnight, the form dates
// are stored in.
func (s *Service) today() time.Time {
	return dateOf(s.now().In(s.location()))
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Service) account(ctx context.Context, p entity.Principal) (entity.Account, error) {
	acc, err := s.repo.AccountByID(ctx, p.AccountID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Account{}, entity.ErrUnauthorized
		}

		return entity.Account{}, err
	}

	return acc, nil
}

func authorize(p entity.Principal, permission entity.Permission) error {
	if !p.Can(permission) {
		return entity.ErrForbidden
	}

	return nil
}

// notify stores an in-app notification and emails it when the recipient
// has email notifications on. Failures are logged only.
func (s *Service) notify(ctx context.Context, to entity.Account, title, body string) {
	n := entity.Notification{
		ID:        uuid.Must(uuid.NewV4()),
		AccountID: to.ID,
		Title:     title,
		Body:      body,
		CreatedAt: s.now(),
	}

	if err := s.repo.CreateNotification(ctx, n); err != nil {
		slog.ErrorContext(ctx, "create notification", "account_id", to.ID, "error", err)
	}

	settings, err := s.notificationSettings(ctx, to.ID)
	if err != nil {
		slog.ErrorContext(ctx, "notification settings", "account_id", to.ID, "error", err)
		return
	}

	if settings.Email && to.Email != "" {
		s.notifier.SendEmail(ctx, title, body, []string{to.Email})
	}
}
