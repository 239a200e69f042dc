package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/navigation"
	"github.com/samandr77/microservices/attendance/internal/view"
)

func stateOf(sess entity.Session) navigation.State {
	return navigation.State{
		Screen: navigation.Screen(sess.Screen),
		Route:  navigation.Route(sess.Route),
	}
}

func (s *Service) CurrentScreen(ctx context.Context, p entity.Principal) (view.Screen, error) {
	router, err := navigation.ForRole(p.Role)
	if err != nil {
		return view.Screen{}, err
	}

	sess, err := s.repo.Session(ctx, p.SessionID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return view.Screen{}, entity.ErrSessionEnded
		}

		return view.Screen{}, fmt.Errorf("get session: %w", err)
	}

	return s.screenView(ctx, router, stateOf(sess))
}

// screenView adds the data driven parts of the screen, such as the leave
// type picker on the request form.
func (s *Service) screenView(ctx context.Context, router *navigation.Router, state navigation.State) (view.Screen, error) {
	v := view.ScreenView(router, state)
	if state.Screen != navigation.ScreenRequestLeave {
		return v, nil
	}

	types, err := s.repo.LeaveTypes(ctx)
	if err != nil {
		return view.Screen{}, fmt.Errorf("get leave types: %w", err)
	}

	return v.WithLeaveTypes(types)
}

// Navigate applies event to the session's screen under a row lock. Logout
// ends the session and returns the login screen.
func (s *Service) Navigate(ctx context.Context, p entity.Principal, event navigation.Event) (view.Screen, error) {
	router, err := navigation.ForRole(p.Role)
	if err != nil {
		return view.Screen{}, err
	}

	sess, err := s.repo.UpdateSession(ctx, p.SessionID, func(sess entity.Session) (entity.Session, error) {
		next, err := router.Apply(stateOf(sess), event)
		if err != nil {
			return sess, err
		}

		if next.Screen == navigation.ScreenLogin {
			return sess, errLoggedOut
		}

		sess.Screen = string(next.Screen)
		sess.Route = string(next.Route)
		sess.Version++
		sess.UpdatedAt = s.now()

		return sess, nil
	})

	s.metrics.Transition(string(event), err == nil || errors.Is(err, errLoggedOut))

	switch {
	case errors.Is(err, errLoggedOut):
		if err := s.Logout(ctx, p); err != nil {
			return view.Screen{}, err
		}

		flow := navigation.LoginFlow()

		return view.ScreenView(flow, flow.Initial()), nil
	case errors.Is(err, entity.ErrNotFound):
		return view.Screen{}, entity.ErrSessionEnded
	case err != nil:
		return view.Screen{}, err
	}

	slog.DebugContext(ctx, "navigated", "event", event, "screen", sess.Screen, "version", sess.Version)

	return s.screenView(ctx, router, stateOf(sess))
}

var errLoggedOut = errors.New("logged out")

// LoginFlowNavigate moves between the unauthenticated screens. It keeps no
// state; the client sends the screen it shows.
func (s *Service) LoginFlowNavigate(from navigation.Screen, event navigation.Event) (view.Screen, error) {
	flow := navigation.LoginFlow()

	next, err := flow.Apply(navigation.State{Screen: from}, event)
	s.metrics.Transition(string(event), err == nil)

	if err != nil {
		return view.Screen{}, err
	}

	return view.ScreenView(flow, next), nil
}

func (s *Service) LoginScreen() view.Screen {
	flow := navigation.LoginFlow()
	return view.ScreenView(flow, flow.Initial())
}

func (s *Service) CleanExpiredSessions(ctx context.Context) error {
	n, err := s.repo.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return fmt.Errorf("delete expired sessions: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "expired sessions deleted", "count", n)
	}

	return nil
}

func (s *Service) CleanOldAttempts(ctx context.Context) error {
	n, err := s.repo.DeleteAttemptsBefore(ctx, s.now().Add(-s.cfg.Session.AttemptRetention))
	if err != nil {
		return fmt.Errorf("delete login attempts: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "old login attempts deleted", "count", n)
	}

	return nil
}
