package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/navigation"
	"github.com/samandr77/microservices/attendance/internal/view"
	"github.com/samandr77/microservices/attendance/pkg/logger"
)

type LoginResult struct {
	AccessToken string            `json:"access_token"`
	ExpiresAt   time.Time         `json:"expires_at"`
	Account     entity.Account    `json:"account"`
	Dashboard   navigation.Screen `json:"dashboard"`
	View        view.Screen       `json:"view"`
}

func (s *Service) Login(ctx context.Context, identifier, password, role string) (LoginResult, error) {
	id := entity.NormalizeIdentifier(identifier)

	var missing []string
	if id == "" {
		missing = append(missing, "identifier")
	}

	if isBlank(password) {
		missing = append(missing, "password")
	}

	if len(missing) > 0 {
		return LoginResult{}, entity.NewValidationError(entity.EmptyCredentialsMessage, missing...)
	}

	r, err := entity.ParseRole(role)
	if err != nil {
		return LoginResult{}, err
	}

	acc, err := s.identity.Authenticate(ctx, id, password, r)
	s.saveAttempt(ctx, id, role, err == nil)
	s.metrics.Login(role, err == nil)

	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			ctx = logger.SetLogType(ctx, "security")
			slog.WarnContext(ctx, "login rejected", "identifier", id, "role", role)

			return LoginResult{}, entity.ErrInvalidCredentials
		}

		return LoginResult{}, fmt.Errorf("authenticate: %w", err)
	}

	router, err := navigation.ForRole(acc.Role)
	if err != nil {
		return LoginResult{}, err
	}

	now := s.now()
	state := router.Initial()

	session := entity.Session{
		ID:        uuid.Must(uuid.NewV4()),
		AccountID: acc.ID,
		Role:      acc.Role,
		Screen:    string(state.Screen),
		Route:     string(state.Route),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.cfg.JWT.AccessTokenTTL),
	}

	err = s.repo.CreateSession(ctx, session)
	if err != nil {
		return LoginResult{}, fmt.Errorf("create session: %w", err)
	}

	token, err := s.signToken(session)
	if err != nil {
		return LoginResult{}, err
	}

	slog.InfoContext(ctx, "user logged in", "account_id", acc.ID, "role", acc.Role, "session_id", session.ID)

	return LoginResult{
		AccessToken: token,
		ExpiresAt:   session.ExpiresAt,
		Account:     acc,
		Dashboard:   state.Screen,
		View:        view.ScreenView(router, state),
	}, nil
}

func (s *Service) saveAttempt(ctx context.Context, identifier, role string, success bool) {
	err := s.repo.SaveAttempt(ctx, entity.LoginAttempt{
		ID:         uuid.Must(uuid.NewV4()),
		Identifier: identifier,
		Role:       role,
		IPAddress:  entity.IPFromCtx(ctx),
		Success:    success,
		CreatedAt:  s.now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "save login attempt", "error", err)
	}
}

func (s *Service) signToken(session entity.Session) (string, error) {
	claims := entity.AccessClaims{
		SessionID: session.ID,
		Role:      session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			Subject:   session.AccountID.String(),
			ID:        session.ID.String(),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// ValidateToken resolves a bearer token to its principal. Tokens of ended or
// expired sessions are rejected.
func (s *Service) ValidateToken(ctx context.Context, token string) (entity.Principal, error) {
	var claims entity.AccessClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return []byte(s.cfg.JWT.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.JWT.Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return entity.Principal{}, fmt.Errorf("%w: %w", entity.ErrTokenInvalid, err)
	}

	accountID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return entity.Principal{}, fmt.Errorf("%w: subject: %w", entity.ErrTokenInvalid, err)
	}

	session, err := s.repo.Session(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Principal{}, entity.ErrSessionEnded
		}

		return entity.Principal{}, fmt.Errorf("get session: %w", err)
	}

	if session.AccountID != accountID || !session.ExpiresAt.After(s.now()) {
		return entity.Principal{}, entity.ErrSessionEnded
	}

	return entity.Principal{
		AccountID: session.AccountID,
		SessionID: session.ID,
		Role:      session.Role,
	}, nil
}

func (s *Service) Logout(ctx context.Context, p entity.Principal) error {
	err := s.repo.DeleteSession(ctx, p.SessionID)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}

	slog.InfoContext(ctx, "user logged out", "session_id", p.SessionID)

	return nil
}

type forgotPasswordForm struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// ForgotPassword sends reset instructions when the address belongs to an
// account. The outcome is the same for unknown addresses.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	form := forgotPasswordForm{Email: entity.NormalizeEmail(email)}

	if form.Email == "" {
		return entity.NewValidationError("Please enter your email address", "email")
	}

	if err := validateStruct(form, "Please enter a valid email address"); err != nil {
		return err
	}

	acc, err := s.repo.AccountByEmail(ctx, form.Email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.InfoContext(ctx, "password reset for unknown email")
			return nil
		}

		return fmt.Errorf("get account by email: %w", err)
	}

	s.notifier.SendEmail(ctx,
		"Reset your password",
		fmt.Sprintf("Hello %s,\n\nA password reset was requested for Employee ID %s. "+
			"Your HR administrator can issue a new password, or sign in and use Settings > Change Password.\n\n"+
			"If you did not request this, you can ignore this email.", acc.FullName, acc.Identifier),
		[]string{acc.Email},
	)

	return nil
}

func (s *Service) ChangePassword(ctx context.Context, p entity.Principal, in entity.ChangePasswordInput) error {
	if err := validate.Struct(in); err != nil {
		if fields := missingFields(err); len(fields) > 0 {
			return entity.NewValidationError(entity.FillAllFieldsMessage, fields...)
		}

		return err
	}

	if in.NewPassword != in.ConfirmPassword {
		return entity.NewValidationError("New passwords do not match", "confirm_password")
	}

	if len([]rune(in.NewPassword)) < entity.PasswordMinLen {
		return entity.NewValidationError(
			fmt.Sprintf("New password must be at least %d characters", entity.PasswordMinLen), "new_password")
	}

	acc, err := s.account(ctx, p)
	if err != nil {
		return err
	}

	if !acc.LocalPassword() {
		return fmt.Errorf("%w: password is managed by the identity service", entity.ErrForbidden)
	}

	err = bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.CurrentPassword))
	if err != nil {
		return entity.NewValidationError("Current password is incorrect", "current_password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.repo.UpdatePasswordHash(ctx, acc.ID, string(hash))
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	slog.InfoContext(logger.SetLogType(ctx, "security"), "password changed", "account_id", acc.ID)

	return nil
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
