package usecase

import (
	"context"

	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/pkg/jwt"
	"bookfair-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

// Identity is what a valid token proves about the caller. Role is empty for
// tokens minted without a role claim.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*Identity, error)
	// ResolveRole reads the current role from the directory.
	ResolveRole(ctx context.Context, email string) (user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	users      queries.UserReadStore
}

func NewTokenValidator(jwtService *jwt.Service, users queries.UserReadStore) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		users:      users,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	identity := &Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
	}
	if claims.Role != "" {
		role, err := user.NewRole(claims.Role)
		if err != nil {
			return nil, err
		}
		identity.Role = role
	}
	return identity, nil
}

func (t *tokenValidatorImpl) ResolveRole(ctx context.Context, email string) (user.Role, error) {
	view, err := t.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", queries.ErrUserNotFound
		}
		return "", err
	}
	return user.NewRole(view.Role)
}
