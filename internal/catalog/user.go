package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role gates access to the admin back office.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// IsValid returns true if the role is recognized.
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User is a storefront account.
type User struct {
	ID        string
	Email     string
	Name      string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a customer account with a fresh identifier.
func NewUser(email, name string) *User {
	now := time.Now()
	return &User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate reports the first field constraint the user violates.
func (u *User) Validate() error {
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	if !u.Role.IsValid() {
		return ErrUnknownRole
	}
	return nil
}
