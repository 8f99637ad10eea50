package staff

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
)

func validStaff() *Staff {
	return &Staff{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.org",
		Phone:     "(555) 010-2030",
		Role:      catalog.RoleMentor,
		Position:  "Senior Mentor",
		Active:    true,
	}
}

func TestStaff_Validate(t *testing.T) {
	t.Parallel()

	reg := catalog.Default()

	tests := []struct {
		name       string
		mutate     func(s *Staff)
		wantFields []string
	}{
		{name: "valid staff", mutate: func(*Staff) {}},
		{name: "phone is optional", mutate: func(s *Staff) { s.Phone = "" }},
		{
			name:       "blank names",
			mutate:     func(s *Staff) { s.FirstName = " "; s.LastName = "" },
			wantFields: []string{"first_name", "last_name"},
		},
		{name: "bad email", mutate: func(s *Staff) { s.Email = "ada@" }, wantFields: []string{"email"}},
		{name: "leading zero phone", mutate: func(s *Staff) { s.Phone = "020 7946 0958" }, wantFields: []string{"phone"}},
		{name: "unknown role", mutate: func(s *Staff) { s.Role = "owner" }, wantFields: []string{"role"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := validStaff()
			tt.mutate(s)

			err := s.Validate(reg)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("Fields = %v, want exactly %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("missing field %q in %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	active, inactive := true, false
	s := validStaff()

	if !(Filter{}).Matches(s) {
		t.Error("zero filter should match")
	}
	if !(Filter{Role: catalog.RoleMentor, Active: &active}).Matches(s) {
		t.Error("matching role and active should match")
	}
	if (Filter{Role: catalog.RoleAdmin}).Matches(s) {
		t.Error("different role should not match")
	}
	if (Filter{Active: &inactive}).Matches(s) {
		t.Error("inactive filter should not match active staff")
	}
}
