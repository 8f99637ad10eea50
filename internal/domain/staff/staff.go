// Package staff models program staff members.
package staff

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/validate"
)

// Staff is a member of the program team. Role is one of the registry roles.
type Staff struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
	Position  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins the first and last names.
func (s *Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Validate checks business rules for the Staff entity.
// Returns a *domain.ValidationError with per-field details, or nil.
func (s *Staff) Validate(reg *catalog.Registry) error {
	fields := validate.Fields{}

	fields.Check(validate.Required(s.FirstName), "first_name", domain.MsgRequired)
	fields.Check(validate.Required(s.LastName), "last_name", domain.MsgRequired)
	fields.Check(validate.Email(s.Email), "email", domain.MsgInvalidEmail)
	if s.Phone != "" {
		fields.Check(validate.PhoneNumber(s.Phone), "phone", domain.MsgInvalidPhone)
	}
	fields.Check(reg.HasRole(s.Role), "role", fmt.Sprintf("invalid: %q", s.Role))

	return fields.Err()
}

// Filter holds optional filter criteria for listing staff.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Role   string
	Active *bool
}

// Matches reports whether s passes the filter.
func (f Filter) Matches(s *Staff) bool {
	if f.Role != "" && s.Role != f.Role {
		return false
	}
	if f.Active != nil && s.Active != *f.Active {
		return false
	}
	return true
}
