package user

import (
	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAdminRequired = errs.Sentinel("admin access required", errs.ErrForbidden)
	ErrMissingUser   = errs.Sentinel("verified token has no user id", errs.ErrUnauthorized)
)

// Identity is the caller as asserted by a verified access token.
type Identity struct {
	id    uuid.UUID
	email string
}

func NewIdentity(id uuid.UUID, email string) (Identity, error) {
	if id == uuid.Nil {
		return Identity{}, ErrMissingUser
	}
	return Identity{id: id, email: email}, nil
}

func (i Identity) ID() uuid.UUID { return i.id }
func (i Identity) Email() string  { return i.email }

// RequireAdmin checks the stored profile role; token claims are not trusted for it.
func RequireAdmin(stored Role) error {
	if !stored.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}
