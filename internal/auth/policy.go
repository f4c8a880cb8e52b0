package auth

import (
	"errors"

	"github.com/projectify-app/projectify-backend/internal/auth/domain"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("admin access required")
)

// Capability is what an action demands of the caller.
type Capability int

const (
	CapAuthenticated Capability = iota
	CapAdmin
)

// Allowed is the authorization policy: a pure function of the resolved
// caller (nil means anonymous) and the required capability.
func Allowed(u *domain.User, cap Capability) bool {
	switch cap {
	case CapAuthenticated:
		return u != nil
	case CapAdmin:
		return u != nil && u.Role == domain.RoleAdmin
	}
	return false
}

// Require returns the matching domain error when the policy denies:
// ErrUnauthenticated for anonymous callers, ErrForbidden for wrong role.
func Require(u *domain.User, cap Capability) error {
	if Allowed(u, cap) {
		return nil
	}
	if u == nil {
		return ErrUnauthenticated
	}
	return ErrForbidden
}
