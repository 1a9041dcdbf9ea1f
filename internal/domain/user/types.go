package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role mirrors the backend's account roles. Visitors book and review
// places; owners manage listings and read revenue aggregates.
type Role string

const (
	RoleVisitor Role = "Visitor"
	RoleOwner   Role = "Owner"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleVisitor, RoleOwner:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
