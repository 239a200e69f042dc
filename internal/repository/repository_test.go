package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/repository"
)

type RepositoryTestSuite struct {
	suite.Suite
	repo *repository.Repository
	now  time.Time
}

func (ts *RepositoryTestSuite) SetupTest() {
	ts.repo = repository.New(repository.SetupTestDatabase(ts.T()))
	ts.now = time.Now().Truncate(time.Millisecond)
}

func TestRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(RepositoryTestSuite))
}

func (ts *RepositoryTestSuite) createAccount(identifier string, role entity.Role, team string) entity.Account {
	a := entity.Account{
		ID:           uuid.Must(uuid.NewV4()),
		Identifier:   identifier,
		PasswordHash: "hash",
		Role:         role,
		FullName:     "Name " + identifier,
		Email:        identifier + "@company.com",
		Team:         team,
		Source:       entity.AccountSourceLocal,
		CreatedAt:    ts.now,
	}

	ts.Require().NoError(ts.repo.CreateAccount(context.Background(), a))

	return a
}

func (ts *RepositoryTestSuite) TestAccounts() {
	ctx := context.Background()
	a := ts.createAccount("employee1", entity.RoleEmployee, "Engineering")
	ts.createAccount("manager1", entity.RoleManager, "Engineering")
	ts.createAccount("hr1", entity.RoleHR, "People")
	ts.createAccount("sales_1", entity.RoleManager, "Sales")

	ts.Run("duplicate identifier", func() {
		dup := a
		dup.ID = uuid.Must(uuid.NewV4())
		ts.Require().ErrorIs(ts.repo.CreateAccount(ctx, dup), entity.ErrAlreadyExists)
	})

	ts.Run("lookups", func() {
		got, err := ts.repo.AccountByIdentifier(ctx, "employee1")
		ts.Require().NoError(err)
		ts.Require().Equal(a, got)

		got, err = ts.repo.AccountByEmail(ctx, "EMPLOYEE1@company.com")
		ts.Require().NoError(err)
		ts.Require().Equal(a.ID, got.ID)

		_, err = ts.repo.AccountByID(ctx, uuid.Must(uuid.NewV4()))
		ts.Require().ErrorIs(err, entity.ErrNotFound)
	})

	ts.Run("team and approvers", func() {
		team, err := ts.repo.AccountsByTeam(ctx, "Engineering")
		ts.Require().NoError(err)
		ts.Require().Len(team, 2)

		approvers, err := ts.repo.Approvers(ctx, "Engineering")
		ts.Require().NoError(err)

		var ids []string
		for _, ap := range approvers {
			ids = append(ids, ap.Identifier)
		}

		ts.Require().ElementsMatch([]string{"manager1", "hr1"}, ids)
	})

	ts.Run("search escapes wildcards", func() {
		found, err := ts.repo.SearchAccounts(ctx, "_1", 0)
		ts.Require().NoError(err)
		ts.Require().Len(found, 1)
		ts.Require().Equal("sales_1", found[0].Identifier)

		all, err := ts.repo.SearchAccounts(ctx, "", 2)
		ts.Require().NoError(err)
		ts.Require().Len(all, 2)

		count, err := ts.repo.CountAccounts(ctx)
		ts.Require().NoError(err)
		ts.Require().Equal(4, count)
	})

	ts.Run("updates", func() {
		ts.Require().NoError(ts.repo.UpdateRole(ctx, a.ID, entity.RoleManager))
		ts.Require().NoError(ts.repo.UpdatePasswordHash(ctx, a.ID, "new-hash"))
		ts.Require().NoError(ts.repo.UpdateProfile(ctx, a.ID, entity.AccountUpdate{
			FullName: "Alex", Email: "alex@company.com", JobTitle: "Lead",
		}))

		got, err := ts.repo.AccountByID(ctx, a.ID)
		ts.Require().NoError(err)
		ts.Require().Equal(entity.RoleManager, got.Role)
		ts.Require().Equal("new-hash", got.PasswordHash)
		ts.Require().Equal("Alex", got.FullName)

		ts.Require().ErrorIs(ts.repo.UpdateRole(ctx, uuid.Must(uuid.NewV4()), entity.RoleHR), entity.ErrNotFound)
	})

	ts.Run("upsert keeps local id", func() {
		got, err := ts.repo.UpsertAccount(ctx, entity.Account{
			ID: uuid.Must(uuid.NewV4()), Identifier: "hr1", Role: entity.RoleHR, FullName: "Harper", Team: "People",
		})
		ts.Require().NoError(err)
		ts.Require().Equal("Harper", got.FullName)
		ts.Require().Equal(entity.AccountSourceIdentity, got.Source)

		stored, err := ts.repo.AccountByIdentifier(ctx, "hr1")
		ts.Require().NoError(err)
		ts.Require().Equal(stored.ID, got.ID)
	})

	ts.Run("upsert keeps locally managed role", func() {
		ts.Require().Equal(entity.AccountSourceLocal, a.Source)
		ts.Require().NoError(ts.repo.UpdateRole(ctx, a.ID, entity.RoleHR))

		got, err := ts.repo.UpsertAccount(ctx, entity.Account{
			Identifier: a.Identifier, Role: entity.RoleEmployee, FullName: "Alex Remote",
		})
		ts.Require().NoError(err)
		ts.Require().Equal(a.ID, got.ID)
		ts.Require().Equal(entity.RoleHR, got.Role)
		ts.Require().Equal("Alex Remote", got.FullName)
		ts.Require().Equal(entity.AccountSourceIdentity, got.Source)
		ts.Require().False(got.LocalPassword())
	})
}

func (ts *RepositoryTestSuite) TestSessions() {
	ctx := context.Background()
	a := ts.createAccount("employee1", entity.RoleEmployee, "Engineering")

	s := entity.Session{
		ID:        uuid.Must(uuid.NewV4()),
		AccountID: a.ID,
		Role:      entity.RoleEmployee,
		Screen:    "employee_dashboard",
		Route:     "Dashboard",
		Version:   1,
		CreatedAt: ts.now,
		UpdatedAt: ts.now,
		ExpiresAt: ts.now.Add(time.Hour),
	}
	ts.Require().NoError(ts.repo.CreateSession(ctx, s))

	got, err := ts.repo.Session(ctx, s.ID)
	ts.Require().NoError(err)
	ts.Require().Equal(s, got)

	ts.Run("failed update stores nothing", func() {
		_, err := ts.repo.UpdateSession(ctx, s.ID, func(cur entity.Session) (entity.Session, error) {
			cur.Screen = "broken"
			return cur, errors.New("no transition")
		})
		ts.Require().Error(err)

		got, err := ts.repo.Session(ctx, s.ID)
		ts.Require().NoError(err)
		ts.Require().Equal("employee_dashboard", got.Screen)
	})

	ts.Run("update", func() {
		next, err := ts.repo.UpdateSession(ctx, s.ID, func(cur entity.Session) (entity.Session, error) {
			cur.Screen = "attendance_report"
			cur.Route = "Attendance"
			cur.Version++
			cur.UpdatedAt = ts.now.Add(time.Minute)

			return cur, nil
		})
		ts.Require().NoError(err)

		got, err := ts.repo.Session(ctx, s.ID)
		ts.Require().NoError(err)
		ts.Require().Equal(next, got)
		ts.Require().Equal(2, got.Version)
	})

	ts.Run("expiry", func() {
		n, err := ts.repo.DeleteExpiredSessions(ctx, ts.now.Add(2*time.Hour))
		ts.Require().NoError(err)
		ts.Require().Equal(int64(1), n)

		_, err = ts.repo.UpdateSession(ctx, s.ID, func(cur entity.Session) (entity.Session, error) { return cur, nil })
		ts.Require().ErrorIs(err, entity.ErrNotFound)
		ts.Require().ErrorIs(ts.repo.DeleteSession(ctx, s.ID), entity.ErrNotFound)
	})

	ts.Run("attempts", func() {
		ts.Require().NoError(ts.repo.SaveAttempt(ctx, entity.LoginAttempt{
			ID: uuid.Must(uuid.NewV4()), Identifier: "employee1", Role: "Employee", CreatedAt: ts.now.Add(-48 * time.Hour),
		}))

		n, err := ts.repo.DeleteAttemptsBefore(ctx, ts.now.Add(-24*time.Hour))
		ts.Require().NoError(err)
		ts.Require().Equal(int64(1), n)
	})
}

func date(s string) time.Time {
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}

	return d
}

func (ts *RepositoryTestSuite) TestLeave() {
	ctx := context.Background()
	employee := ts.createAccount("employee1", entity.RoleEmployee, "Engineering")
	other := ts.createAccount("employee2", entity.RoleEmployee, "Sales")

	types, err := ts.repo.LeaveTypes(ctx)
	ts.Require().NoError(err)
	ts.Require().NotEmpty(types)

	sick := types[0]

	req := entity.LeaveRequest{
		ID:             uuid.Must(uuid.NewV4()),
		AccountID:      employee.ID,
		EmployeeName:   employee.FullName,
		Kind:           entity.LeaveKindLeave,
		LeaveTypeID:    &sick.ID,
		LeaveTypeLabel: sick.Label,
		StartDate:      date("2025-03-10"),
		EndDate:        date("2025-03-12"),
		Days:           decimal.NewFromInt(3),
		Reason:         "Flu",
		Status:         entity.LeaveStatusPending,
		CreatedAt:      ts.now,
	}
	ts.Require().NoError(ts.repo.CreateLeaveRequest(ctx, req))

	wfh := entity.LeaveRequest{
		ID:             uuid.Must(uuid.NewV4()),
		AccountID:      other.ID,
		EmployeeName:   other.FullName,
		Kind:           entity.LeaveKindWFH,
		LeaveTypeLabel: "Work From Home",
		StartDate:      date("2025-04-01"),
		EndDate:        date("2025-04-01"),
		HalfDay:        true,
		Days:           decimal.RequireFromString("0.5"),
		Reason:         "Delivery",
		Status:         entity.LeaveStatusPending,
		CreatedAt:      ts.now.Add(time.Second),
	}
	ts.Require().NoError(ts.repo.CreateLeaveRequest(ctx, wfh))

	ts.Run("get", func() {
		got, err := ts.repo.LeaveRequest(ctx, req.ID)
		ts.Require().NoError(err)
		ts.Require().True(req.Days.Equal(got.Days))

		got.Days = req.Days
		ts.Require().Equal(req, got)
	})

	ts.Run("query", func() {
		eng, err := ts.repo.LeaveRequests(ctx, entity.LeaveQuery{Team: "Engineering"})
		ts.Require().NoError(err)
		ts.Require().Len(eng, 1)

		notMine, err := ts.repo.LeaveRequests(ctx, entity.LeaveQuery{ExcludeAccountID: &employee.ID, Kind: entity.LeaveKindWFH})
		ts.Require().NoError(err)
		ts.Require().Len(notMine, 1)
		ts.Require().Equal(wfh.ID, notMine[0].ID)

		from, to := date("2025-03-12"), date("2025-03-31")
		march, err := ts.repo.LeaveRequests(ctx, entity.LeaveQuery{From: &from, To: &to})
		ts.Require().NoError(err)
		ts.Require().Len(march, 1)

		approved, err := ts.repo.LeaveRequests(ctx, entity.LeaveQuery{Statuses: []entity.LeaveStatus{entity.LeaveStatusApproved}})
		ts.Require().NoError(err)
		ts.Require().Empty(approved)
	})

	ts.Run("type in use", func() {
		ts.Require().ErrorIs(ts.repo.DeleteLeaveType(ctx, sick.ID), entity.ErrLeaveTypeInUse)
	})

	ts.Run("decide once", func() {
		decided := req
		decided.Status = entity.LeaveStatusApproved
		decided.DecidedBy = &other.ID
		decided.DecidedAt = &ts.now
		decided.Comment = "ok"

		ts.Require().NoError(ts.repo.UpdateLeaveStatus(ctx, decided))
		ts.Require().ErrorIs(ts.repo.UpdateLeaveStatus(ctx, decided), entity.ErrLeaveNotPending)

		missing := decided
		missing.ID = uuid.Must(uuid.NewV4())
		ts.Require().ErrorIs(ts.repo.UpdateLeaveStatus(ctx, missing), entity.ErrNotFound)
	})

	ts.Run("leave types", func() {
		label := "Study " + uuid.Must(uuid.NewV4()).String()

		lt, err := ts.repo.CreateLeaveType(ctx, label)
		ts.Require().NoError(err)

		_, err = ts.repo.CreateLeaveType(ctx, label)
		ts.Require().ErrorIs(err, entity.ErrAlreadyExists)

		ts.Require().NoError(ts.repo.RenameLeaveType(ctx, lt.ID, label+" v2"))
		ts.Require().NoError(ts.repo.DeleteLeaveType(ctx, lt.ID))
		ts.Require().ErrorIs(ts.repo.DeleteLeaveType(ctx, lt.ID), entity.ErrNotFound)
	})
}

func (ts *RepositoryTestSuite) TestAttendance() {
	ctx := context.Background()
	a := ts.createAccount("employee1", entity.RoleEmployee, "Engineering")
	day := date("2025-03-12")

	rec := entity.AttendanceRecord{
		ID:        uuid.Must(uuid.NewV4()),
		AccountID: a.ID,
		WorkDate:  day,
		ClockIn:   ts.now,
		Late:      true,
	}
	ts.Require().NoError(ts.repo.CreateAttendanceRecord(ctx, rec))

	dup := rec
	dup.ID = uuid.Must(uuid.NewV4())
	ts.Require().ErrorIs(ts.repo.CreateAttendanceRecord(ctx, dup), entity.ErrAlreadyExists)

	got, err := ts.repo.AttendanceRecord(ctx, a.ID, day)
	ts.Require().NoError(err)
	ts.Require().Equal(rec, got)

	out := ts.now.Add(8 * time.Hour)
	ts.Require().NoError(ts.repo.CloseAttendanceRecord(ctx, rec.ID, out))
	ts.Require().ErrorIs(ts.repo.CloseAttendanceRecord(ctx, rec.ID, out), entity.ErrAttendanceClosed)

	records, err := ts.repo.AttendanceRecords(ctx, []uuid.UUID{a.ID}, date("2025-03-01"), date("2025-03-31"))
	ts.Require().NoError(err)
	ts.Require().Len(records, 1)
	ts.Require().Equal(out, *records[0].ClockOut)

	none, err := ts.repo.AttendanceRecords(ctx, nil, date("2025-03-01"), date("2025-03-31"))
	ts.Require().NoError(err)
	ts.Require().Empty(none)
}

func (ts *RepositoryTestSuite) TestNotificationsAndSettings() {
	ctx := context.Background()
	a := ts.createAccount("employee1", entity.RoleEmployee, "Engineering")

	n := entity.Notification{ID: uuid.Must(uuid.NewV4()), AccountID: a.ID, Title: "Approved", Body: "Enjoy", CreatedAt: ts.now}
	ts.Require().NoError(ts.repo.CreateNotification(ctx, n))

	unread, err := ts.repo.CountUnread(ctx, a.ID)
	ts.Require().NoError(err)
	ts.Require().Equal(1, unread)

	ts.Require().NoError(ts.repo.MarkNotificationRead(ctx, a.ID, n.ID, ts.now))
	ts.Require().ErrorIs(ts.repo.MarkNotificationRead(ctx, uuid.Must(uuid.NewV4()), n.ID, ts.now), entity.ErrNotFound)

	list, err := ts.repo.Notifications(ctx, a.ID, 10)
	ts.Require().NoError(err)
	ts.Require().Len(list, 1)
	ts.Require().NotNil(list[0].ReadAt)

	_, err = ts.repo.NotificationSettings(ctx, a.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	settings := entity.NotificationSettings{AccountID: a.ID, Email: false, Push: true, Reminder: true}
	ts.Require().NoError(ts.repo.SaveNotificationSettings(ctx, settings))

	gotSettings, err := ts.repo.NotificationSettings(ctx, a.ID)
	ts.Require().NoError(err)
	ts.Require().Equal(settings, gotSettings)

	_, err = ts.repo.OrgSettings(ctx)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	ts.Require().NoError(ts.repo.SaveOrgSettings(ctx, entity.OrgSettings{GracePeriodMinutes: 10, UpdatedAt: ts.now}))

	org, err := ts.repo.OrgSettings(ctx)
	ts.Require().NoError(err)
	ts.Require().Equal(10, org.GracePeriodMinutes)
}
