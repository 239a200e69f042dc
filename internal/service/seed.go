package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

const demoPassword = "pass123"

var demoAccounts = []entity.Account{
	{
		Identifier: "employee1",
		Role:       entity.RoleEmployee,
		FullName:   "Alex Employee",
		Email:      "employee1@company.com",
		JobTitle:   "Software Engineer",
		Team:       "Engineering",
	},
	{
		Identifier: "manager1",
		Role:       entity.RoleManager,
		FullName:   "Morgan Manager",
		Email:      "manager1@company.com",
		JobTitle:   "Engineering Manager",
		Team:       "Engineering",
	},
	{
		Identifier: "hr1",
		Role:       entity.RoleHR,
		FullName:   "Harper HR",
		Email:      "hr1@company.com",
		JobTitle:   "HR Administrator",
		Team:       "People",
	},
}

// SeedDemoAccounts creates the demo directory. Existing accounts are left
// untouched.
func (s *Service) SeedDemoAccounts(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	for _, a := range demoAccounts {
		a.ID = uuid.Must(uuid.NewV4())
		a.PasswordHash = string(hash)
		a.CreatedAt = s.now()

		err = s.repo.CreateAccount(ctx, a)
		if err != nil {
			if errors.Is(err, entity.ErrAlreadyExists) {
				continue
			}

			return fmt.Errorf("create demo account %s: %w", a.Identifier, err)
		}

		slog.InfoContext(ctx, "demo account created", "identifier", a.Identifier, "role", a.Role)
	}

	return nil
}
