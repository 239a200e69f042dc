package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
)

// Session is a logged-in navigation session. Screen and Route hold the single
// active screen and the highlighted bottom navigation route.
type Session struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Role      Role
	Screen    string
	Route     string
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

type AccessClaims struct {
	SessionID uuid.UUID `json:"sid"`
	Role      Role      `json:"role"`
	jwt.RegisteredClaims
}

type LoginAttempt struct {
	ID         uuid.UUID
	Identifier string
	Role       string
	IPAddress  string
	Success    bool
	CreatedAt  time.Time
}
