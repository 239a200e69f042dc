package service_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/mocks"
	"github.com/samandr77/microservices/attendance/internal/service"
	"github.com/samandr77/microservices/attendance/pkg/config"
	"github.com/samandr77/microservices/attendance/pkg/metrics"
)

// Wednesday, 10:30 UTC.
var testNow = time.Date(2025, time.March, 12, 10, 30, 0, 0, time.UTC)

var testToday = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

type deps struct {
	repo     *mocks.MockRepository
	identity *mocks.MockIdentityProvider
	notifier *mocks.MockNotifier
}

func testConfig() config.Config {
	return config.Config{
		JWT: config.JWTConfig{
			Secret:         "test-secret",
			Issuer:         "attendance",
			AccessTokenTTL: time.Hour,
		},
		Attendance: config.AttendanceConfig{
			WorkdayStart:        "09:00",
			TimeZone:            "UTC",
			AnnualLeaveDays:     decimal.NewFromInt(20),
			DefaultGraceMinutes: 15,
		},
		Session: config.SessionConfig{
			AttemptRetention: 720 * time.Hour,
		},
		PasswordHashCost: bcrypt.MinCost,
	}
}

func newService(t *testing.T) (*service.Service, deps) {
	t.Helper()

	return newServiceAt(t, testNow)
}

func newServiceAt(t *testing.T, now time.Time) (*service.Service, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:     mocks.NewMockRepository(ctrl),
		identity: mocks.NewMockIdentityProvider(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}

	s := service.NewService(testConfig(), d.repo, d.identity, d.notifier, metrics.New()).
		WithClock(func() time.Time { return now })

	return s, d
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func principal(role entity.Role) entity.Principal {
	return entity.Principal{AccountID: newID(), SessionID: newID(), Role: role}
}

func account(id uuid.UUID, identifier string, role entity.Role, team string) entity.Account {
	return entity.Account{
		ID:         id,
		Identifier: identifier,
		Role:       role,
		FullName:   "Full " + identifier,
		Email:      identifier + "@company.com",
		Team:       team,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func day(s string) time.Time {
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}

	return d
}
