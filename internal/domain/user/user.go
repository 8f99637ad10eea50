// Package user models accounts that can sign in to the admin API.
package user

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/validate"
)

// User is an account. Email is unique; PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == catalog.RoleAdmin
}

// Validate checks business rules for the User entity.
func (u *User) Validate(reg *catalog.Registry) error {
	fields := validate.Fields{}

	fields.Check(validate.Required(u.Name), "name", domain.MsgRequired)
	fields.Check(validate.Email(u.Email), "email", domain.MsgInvalidEmail)
	fields.Check(validate.Required(u.PasswordHash), "password", domain.MsgRequired)
	fields.Check(reg.HasRole(u.Role), "role", fmt.Sprintf("invalid: %q", u.Role))

	return fields.Err()
}

// Credentials is a sign-in attempt.
type Credentials struct {
	Email    string
	Password string
}

// Validate flags only the fields that fail the email and password validators.
func (c Credentials) Validate() error {
	fields := validate.Fields{}
	fields.Check(validate.Email(c.Email), "email", domain.MsgInvalidEmail)
	fields.Check(validate.Password(c.Password), "password",
		fmt.Sprintf("must be at least %d characters", validate.MinPasswordLength))
	return fields.Err()
}
