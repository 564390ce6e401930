package dto

import "github.com/wevomedia/wevo_media_app/internal/core/domain"

// CreateUserRequest carries the fields for an admin-created user.
type CreateUserRequest struct {
	TaxID    string `json:"taxID" binding:"required,taxid"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin normal"`
}

// RegisterRequest carries the public self-registration fields. The role is
// always normal.
type RegisterRequest struct {
	TaxID           string `json:"taxID" binding:"required,taxid"`
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// UpdateUserRequest replaces a user's mutable fields. The tax id itself is
// immutable; an empty password leaves the stored hash untouched.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin normal"`
}

// UserResponse is the wire representation of a user. The password hash never
// leaves the server.
type UserResponse struct {
	TaxID string `json:"taxID"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ListUsersResponse wraps the user list endpoint payload.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain user to its response form.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		TaxID: u.TaxID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}
