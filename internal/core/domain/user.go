package domain

// UserRole distinguishes administrators from normal users.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleNormal UserRole = "normal"
)

// User represents a login account. The tax id is the primary key and cannot
// change once the user is referenced by contracts, projects or tasks.
type User struct {
	TaxID        string   `json:"taxID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
