package service

import (
	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/internal/model"
)

// Principal is the authenticated caller as established by the identity layer.
type Principal struct {
	UserID uuid.UUID
	Role   string
	Name   string
	Email  string
}

func (p Principal) IsAdmin() bool { return p.Role == model.RoleAdmin }

// CanAccess reports whether p may read or modify a resource owned by ownerID.
func (p Principal) CanAccess(ownerID uuid.UUID) bool {
	return p.UserID == ownerID || p.IsAdmin()
}
