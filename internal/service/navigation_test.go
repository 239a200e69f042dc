package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/navigation"
)

type updateFn = func(entity.Session) (entity.Session, error)

// applyTo makes UpdateSession run the closure against sess and remember the
// stored result.
func applyTo(sess *entity.Session) func(context.Context, uuid.UUID, updateFn) (entity.Session, error) {
	return func(_ context.Context, _ uuid.UUID, fn updateFn) (entity.Session, error) {
		next, err := fn(*sess)
		if err != nil {
			return entity.Session{}, err
		}

		*sess = next

		return next, nil
	}
}

func TestService_Navigate(t *testing.T) {
	tests := []struct {
		name       string
		role       entity.Role
		from       navigation.Screen
		route      navigation.Route
		event      navigation.Event
		wantScreen navigation.Screen
		wantRoute  navigation.Route
		wantErr    error
	}{
		{
			name: "employee opens attendance", role: entity.RoleEmployee,
			from: navigation.ScreenEmployeeDashboard, route: navigation.RouteDashboard,
			event: navigation.EventAttendance, wantScreen: navigation.ScreenAttendanceReport, wantRoute: navigation.RouteAttendance,
		},
		{
			name: "manager back from approvals", role: entity.RoleManager,
			from: navigation.ScreenLeaveApprovals, route: navigation.RouteApprovals,
			event: navigation.EventBack, wantScreen: navigation.ScreenManagerDashboard, wantRoute: navigation.RouteDashboard,
		},
		{
			name: "hr submits configuration", role: entity.RoleHR,
			from: navigation.ScreenConfiguration, route: navigation.RouteDashboard,
			event: navigation.EventSubmitted, wantScreen: navigation.ScreenHRDashboard, wantRoute: navigation.RouteDashboard,
		},
		{
			name: "employee cannot reach approvals", role: entity.RoleEmployee,
			from: navigation.ScreenEmployeeDashboard, route: navigation.RouteDashboard,
			event: navigation.EventApprovals, wantErr: navigation.ErrNoTransition,
		},
		{
			name: "back on home", role: entity.RoleManager,
			from: navigation.ScreenManagerDashboard, route: navigation.RouteDashboard,
			event: navigation.EventBack, wantErr: navigation.ErrNoTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, d := newService(t)
			p := principal(tt.role)

			sess := entity.Session{
				ID:        p.SessionID,
				AccountID: p.AccountID,
				Role:      tt.role,
				Screen:    string(tt.from),
				Route:     string(tt.route),
				Version:   3,
				ExpiresAt: testNow.Add(time.Hour),
			}
			before := sess

			d.repo.EXPECT().UpdateSession(gomock.Any(), p.SessionID, gomock.Any()).DoAndReturn(applyTo(&sess))

			v, err := s.Navigate(context.Background(), p, tt.event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, before, sess)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantScreen, v.Screen)
			require.Equal(t, tt.wantRoute, v.Route)
			require.Equal(t, string(tt.wantScreen), sess.Screen)
			require.Equal(t, 4, sess.Version)
			require.Equal(t, testNow, sess.UpdatedAt)
		})
	}
}

func TestService_Navigate_Logout(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleEmployee)

	sess := entity.Session{
		ID:        p.SessionID,
		AccountID: p.AccountID,
		Role:      entity.RoleEmployee,
		Screen:    string(navigation.ScreenMyTeam),
		Route:     string(navigation.RouteMyTeam),
	}

	d.repo.EXPECT().UpdateSession(gomock.Any(), p.SessionID, gomock.Any()).DoAndReturn(applyTo(&sess))
	d.repo.EXPECT().DeleteSession(gomock.Any(), p.SessionID).Return(nil)

	v, err := s.Navigate(context.Background(), p, navigation.EventLogout)
	require.NoError(t, err)
	require.Equal(t, navigation.ScreenLogin, v.Screen)
	require.Nil(t, v.NavBar)
}

func TestService_Navigate_EndedSession(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleHR)

	d.repo.EXPECT().UpdateSession(gomock.Any(), p.SessionID, gomock.Any()).Return(entity.Session{}, entity.ErrNotFound)

	_, err := s.Navigate(context.Background(), p, navigation.EventUsers)
	require.ErrorIs(t, err, entity.ErrSessionEnded)
}

func TestService_LoginFlowNavigate(t *testing.T) {
	s, _ := newService(t)

	v, err := s.LoginFlowNavigate(navigation.ScreenLogin, navigation.EventForgotPassword)
	require.NoError(t, err)
	require.Equal(t, navigation.ScreenForgotPassword, v.Screen)

	_, err = s.LoginFlowNavigate(navigation.ScreenLogin, navigation.EventDashboard)
	require.ErrorIs(t, err, navigation.ErrNoTransition)

	require.Equal(t, navigation.ScreenLogin, s.LoginScreen().Screen)
}

func TestService_Cleanup(t *testing.T) {
	s, d := newService(t)

	d.repo.EXPECT().DeleteExpiredSessions(gomock.Any(), testNow).Return(int64(2), nil)
	d.repo.EXPECT().DeleteAttemptsBefore(gomock.Any(), testNow.Add(-720*time.Hour)).Return(int64(0), nil)

	require.NoError(t, s.CleanExpiredSessions(context.Background()))
	require.NoError(t, s.CleanOldAttempts(context.Background()))
}

func TestService_Navigate_RequestLeavePickers(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleEmployee)

	sess := entity.Session{
		ID:        p.SessionID,
		AccountID: p.AccountID,
		Role:      entity.RoleEmployee,
		Screen:    string(navigation.ScreenEmployeeDashboard),
		Route:     string(navigation.RouteDashboard),
	}

	d.repo.EXPECT().UpdateSession(gomock.Any(), p.SessionID, gomock.Any()).DoAndReturn(applyTo(&sess))
	d.repo.EXPECT().LeaveTypes(gomock.Any()).Return([]entity.LeaveType{{ID: 1, Label: "Sick Leave"}}, nil)

	v, err := s.Navigate(context.Background(), p, navigation.EventRequestLeave)
	require.NoError(t, err)
	require.Equal(t, navigation.ScreenRequestLeave, v.Screen)
	require.Len(t, v.Pickers, 3)
	require.Equal(t, "leave_type_id", v.Pickers[1].Name)
	require.Equal(t, "1", v.Pickers[1].Options[0].Value)
}

func TestService_CurrentScreen(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleEmployee)

	d.repo.EXPECT().Session(gomock.Any(), p.SessionID).Return(entity.Session{
		ID:     p.SessionID,
		Screen: string(navigation.ScreenRequestLeave),
		Route:  string(navigation.RouteRequest),
	}, nil)
	d.repo.EXPECT().LeaveTypes(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := s.CurrentScreen(context.Background(), p)
	require.ErrorContains(t, err, "get leave types")

	d.repo.EXPECT().Session(gomock.Any(), p.SessionID).Return(entity.Session{
		ID:     p.SessionID,
		Screen: string(navigation.ScreenMyTeam),
		Route:  string(navigation.RouteMyTeam),
	}, nil)

	v, err := s.CurrentScreen(context.Background(), p)
	require.NoError(t, err)
	require.Empty(t, v.Pickers)
	require.NotNil(t, v.NavBar)

	d.repo.EXPECT().Session(gomock.Any(), p.SessionID).Return(entity.Session{}, entity.ErrNotFound)

	_, err = s.CurrentScreen(context.Background(), p)
	require.ErrorIs(t, err, entity.ErrSessionEnded)
}
