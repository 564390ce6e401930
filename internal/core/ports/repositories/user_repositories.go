package repositories

import (
	"context"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
)

// UserRepository defines persistence operations for login users.
// Users are keyed by tax id; there is no surrogate key.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByTaxID(ctx context.Context, taxID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	UpdateUserRole(ctx context.Context, taxID string, role domain.UserRole) error
	DeleteUser(ctx context.Context, taxID string) error
}
