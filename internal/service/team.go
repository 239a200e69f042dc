package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/pkg/logger"
)

const searchLimit = 50

func (s *Service) Profile(ctx context.Context, p entity.Principal) (entity.Account, error) {
	return s.account(ctx, p)
}

// MyTeam lists the caller's team with the caller flagged.
func (s *Service) MyTeam(ctx context.Context, p entity.Principal) ([]entity.TeamMember, error) {
	if err := authorize(p, entity.PermissionViewTeam); err != nil {
		return nil, err
	}

	acc, err := s.account(ctx, p)
	if err != nil {
		return nil, err
	}

	if acc.Team == "" {
		return []entity.TeamMember{{Account: acc, IsMe: true}}, nil
	}

	accounts, err := s.repo.AccountsByTeam(ctx, acc.Team)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}

	members := make([]entity.TeamMember, 0, len(accounts))
	for _, a := range accounts {
		members = append(members, entity.TeamMember{Account: a, IsMe: a.ID == acc.ID})
	}

	return members, nil
}

func (s *Service) SearchUsers(ctx context.Context, p entity.Principal, query string) ([]entity.Account, error) {
	if err := authorize(p, entity.PermissionManageUsers); err != nil {
		return nil, err
	}

	accounts, err := s.repo.SearchAccounts(ctx, trimmed(query), searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search accounts: %w", err)
	}

	return accounts, nil
}

// ChangeUserRole assigns a new role and ends the user's sessions, whose
// tokens carry the old role. HR cannot change its own role.
func (s *Service) ChangeUserRole(ctx context.Context, p entity.Principal, accountID uuid.UUID, role string) (entity.Account, error) {
	if err := authorize(p, entity.PermissionManageUsers); err != nil {
		return entity.Account{}, err
	}

	r, err := entity.ParseRole(role)
	if err != nil {
		return entity.Account{}, err
	}

	if accountID == p.AccountID {
		return entity.Account{}, entity.ErrForbidden
	}

	acc, err := s.repo.AccountByID(ctx, accountID)
	if err != nil {
		return entity.Account{}, err
	}

	if acc.Role == r {
		return acc, nil
	}

	err = s.repo.UpdateRole(ctx, accountID, r)
	if err != nil {
		return entity.Account{}, fmt.Errorf("update role: %w", err)
	}

	err = s.repo.DeleteSessionsByAccount(ctx, accountID)
	if err != nil {
		return entity.Account{}, fmt.Errorf("end sessions: %w", err)
	}

	slog.InfoContext(logger.SetLogType(ctx, "audit"), "role changed",
		"account_id", accountID, "from", acc.Role, "to", r, "by", p.AccountID)

	acc.Role = r

	return acc, nil
}

func (s *Service) UpdateProfile(ctx context.Context, p entity.Principal, upd entity.AccountUpdate) (entity.Account, error) {
	upd.FullName = trimmed(upd.FullName)
	upd.Email = entity.NormalizeEmail(upd.Email)
	upd.JobTitle = trimmed(upd.JobTitle)
	upd.AvatarURL = trimmed(upd.AvatarURL)

	if err := validate.Struct(upd); err != nil {
		if fields := missingFields(err); len(fields) > 0 {
			return entity.Account{}, entity.NewValidationError(entity.FillAllFieldsMessage, fields...)
		}

		return entity.Account{}, validateStruct(upd, "Please check the highlighted fields")
	}

	err := s.repo.UpdateProfile(ctx, p.AccountID, upd)
	if err != nil {
		return entity.Account{}, fmt.Errorf("update profile: %w", err)
	}

	return s.account(ctx, p)
}
