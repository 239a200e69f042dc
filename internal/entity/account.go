package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// AccountSource tells which system verifies an account's password.
type AccountSource string

const (
	AccountSourceLocal    AccountSource = "local"
	AccountSourceIdentity AccountSource = "identity"
)

type Account struct {
	ID           uuid.UUID     `json:"id"`
	Identifier   string        `json:"identifier"`
	PasswordHash string        `json:"-"`
	Role         Role          `json:"role"`
	FullName     string        `json:"full_name"`
	Email        string        `json:"email"`
	JobTitle     string        `json:"job_title"`
	AvatarURL    string        `json:"avatar_url"`
	Team         string        `json:"team"`
	Source       AccountSource `json:"source"`
	CreatedAt    time.Time     `json:"created_at"`
}

// LocalPassword reports whether the password hash stored with the account is
// the one that signs it in.
func (a Account) LocalPassword() bool {
	return a.Source != AccountSourceIdentity && a.PasswordHash != ""
}

type TeamMember struct {
	Account
	IsMe bool `json:"is_me"`
}

type AccountUpdate struct {
	FullName  string `json:"full_name"  validate:"notblank,max=100"`
	Email     string `json:"email"      validate:"required,email,max=255"`
	JobTitle  string `json:"job_title"  validate:"max=100"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// NormalizeIdentifier trims and lower-cases an employee id. Identifiers are
// stored normalized, so lookups compare normalized values only.
func NormalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"notblank"`
	NewPassword     string `json:"new_password"     validate:"notblank"`
	ConfirmPassword string `json:"confirm_password" validate:"notblank"`
}

const PasswordMinLen = 6
