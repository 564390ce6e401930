package services

import (
	"context"
	"fmt"

	"github.com/wevomedia/wevo_media_app/internal/apperrors"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	portsrepo "github.com/wevomedia/wevo_media_app/internal/core/ports/repositories"
	"github.com/wevomedia/wevo_media_app/internal/dto"
	"github.com/wevomedia/wevo_media_app/internal/utils"
)

type UserService struct {
	userRepo portsrepo.UserRepository
}

func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleNormal
	}
	return s.createUser(ctx, req.TaxID, req.Name, req.Email, req.Password, role)
}

// Register creates a self-service account. The role is always normal; making
// an admin requires an existing admin.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	return s.createUser(ctx, req.TaxID, req.Name, req.Email, req.Password, domain.RoleNormal)
}

func (s *UserService) createUser(ctx context.Context, taxID, name, email, password string, role domain.UserRole) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := domain.User{
		TaxID:        taxID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetUserByTaxID(ctx context.Context, taxID string) (*domain.User, error) {
	return s.userRepo.FindUserByTaxID(ctx, taxID)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx)
}

func (s *UserService) UpdateUser(ctx context.Context, taxID string, req dto.UpdateUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Email = req.Email
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.PasswordHash = hash
	}

	if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", taxID, err)
	}
	if req.Role != "" && domain.UserRole(req.Role) != existing.Role {
		if err := s.userRepo.UpdateUserRole(ctx, taxID, domain.UserRole(req.Role)); err != nil {
			return nil, fmt.Errorf("failed to update role for user %s: %w", taxID, err)
		}
		existing.Role = domain.UserRole(req.Role)
	}
	return existing, nil
}

// DeleteUser removes an account. An admin cannot delete their own account;
// there must always be someone left holding the keys.
func (s *UserService) DeleteUser(ctx context.Context, taxID string, actorTaxID string) error {
	if taxID == actorTaxID {
		return fmt.Errorf("%w: you cannot delete your own account", apperrors.ErrValidation)
	}
	return s.userRepo.DeleteUser(ctx, taxID)
}

// ToggleRole flips a user between admin and normal. Self-demotion is rejected
// for the same reason self-deletion is.
func (s *UserService) ToggleRole(ctx context.Context, taxID string, actorTaxID string) (*domain.User, error) {
	if taxID == actorTaxID {
		return nil, fmt.Errorf("%w: you cannot change your own role", apperrors.ErrValidation)
	}
	user, err := s.userRepo.FindUserByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}

	newRole := domain.RoleAdmin
	if user.IsAdmin() {
		newRole = domain.RoleNormal
	}
	if err := s.userRepo.UpdateUserRole(ctx, taxID, newRole); err != nil {
		return nil, fmt.Errorf("failed to toggle role for user %s: %w", taxID, err)
	}
	user.Role = newRole
	return user, nil
}
