// Package mentee models program participants.
package mentee

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/status"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/validate"
)

// Mentee is a program participant, optionally paired with a staff mentor.
type Mentee struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	MentorID  *int64
	Program   string
	Status    string
	StartDate time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category classifies the mentee's status.
func (m *Mentee) Category() status.Category {
	return status.Classify(status.Mentee, m.Status)
}

// Validate checks business rules for the Mentee entity. Whether MentorID
// references an existing staff member is checked by the application layer.
func (m *Mentee) Validate(reg *catalog.Registry) error {
	fields := validate.Fields{}

	fields.Check(validate.Required(m.FirstName), "first_name", domain.MsgRequired)
	fields.Check(validate.Required(m.LastName), "last_name", domain.MsgRequired)
	fields.Check(validate.Email(m.Email), "email", domain.MsgInvalidEmail)
	if m.Phone != "" {
		fields.Check(validate.PhoneNumber(m.Phone), "phone", domain.MsgInvalidPhone)
	}
	fields.Check(validate.Required(m.Program), "program", domain.MsgRequired)
	fields.Check(reg.HasStatus(status.Mentee, m.Status), "status", fmt.Sprintf("invalid: %q", m.Status))
	fields.Check(!m.StartDate.IsZero(), "start_date", domain.MsgRequired)
	if m.MentorID != nil {
		fields.Check(*m.MentorID > 0, "mentor_id", fmt.Sprintf("must be positive, got %d", *m.MentorID))
	}

	return fields.Err()
}

// Filter holds optional filter criteria for listing mentees.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status   string
	MentorID *int64
}

// Matches reports whether m passes the filter.
func (f Filter) Matches(m *Mentee) bool {
	if f.Status != "" && m.Status != f.Status {
		return false
	}
	if f.MentorID != nil && (m.MentorID == nil || *m.MentorID != *f.MentorID) {
		return false
	}
	return true
}
