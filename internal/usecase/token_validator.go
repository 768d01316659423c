package usecase

import (
	"github.com/Evidive-blue/evidive/internal/domain/user"
	"github.com/Evidive-blue/evidive/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// The token's role claim is the identity provider's role, not the profile
// role; authorization reads the profile from the store.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Identity{}, err
	}

	id, err := claims.SubjectID()
	if err != nil {
		return user.Identity{}, err
	}
	return user.NewIdentity(id, claims.Email)
}
