package services

import (
	"context"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	"github.com/wevomedia/wevo_media_app/internal/dto"
)

// UserSvcFacade defines the service operations for login users.
// Mutations that act on another user take the acting user's tax id so the
// service can reject self-deletion and self-demotion.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByTaxID(ctx context.Context, taxID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, taxID string, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, taxID string, actorTaxID string) error
	ToggleRole(ctx context.Context, taxID string, actorTaxID string) (*domain.User, error)
}
