package ports

import (
	"context"

	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	Delete(ctx context.Context, id uint64) error
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (domain.User, string, error)
	Login(ctx context.Context, username, password string) (domain.User, string, error)
	CurrentUser(ctx context.Context, userID uint64) (domain.User, error)
	DeleteAccount(ctx context.Context, userID uint64) error
}

// TokenClaims is the verified identity carried by a bearer token.
type TokenClaims struct {
	UserID    uint64
	ExpiresAt int64
}

type TokenService interface {
	Generate(userID uint64) (string, error)
	Validate(token string) (*TokenClaims, error)
}
