package entity

import "github.com/gofrs/uuid/v5"

// Principal is the authenticated caller of a request.
type Principal struct {
	AccountID uuid.UUID
	SessionID uuid.UUID
	Role      Role
}

func (p Principal) Can(permission Permission) bool {
	return HasPermission(p.Role, permission)
}
