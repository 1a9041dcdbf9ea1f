package shared

import "easebooking/internal/domain/user"

// Session is the caller's authenticated context, decoded from the
// backend-issued token and passed explicitly into every usecase. The
// raw token travels along because every backend call forwards it.
type Session struct {
	Token  string
	UserID int64
	Role   user.Role
}

func (s Session) IsVisitor() bool {
	return s.Role == user.RoleVisitor
}

func (s Session) IsOwner() bool {
	return s.Role == user.RoleOwner
}
