package validate_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/validate"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple address", input: "a@b.co", want: true},
		{name: "typical address", input: "test@example.com", want: true},
		{name: "subdomain", input: "jane.doe@mail.example.org", want: true},
		{name: "plus tag", input: "jane+mentor@example.com", want: true},
		{name: "double at", input: "a@@b", want: false},
		{name: "no at", input: "nodomain", want: false},
		{name: "no dot after at", input: "a@b", want: false},
		{name: "empty", input: "", want: false},
		{name: "whitespace only", input: "   ", want: false},
		{name: "space in local part", input: "jane doe@example.com", want: false},
		{name: "leading space", input: " a@b.co", want: false},
		{name: "tab in domain", input: "a@b\t.co", want: false},
		{name: "non-breaking space", input: "a b@c.de", want: false},
		{name: "missing local part", input: "@example.com", want: false},
		{name: "empty suffix", input: "a@example.", want: false},
		{name: "at sign in final segment", input: "a@b.c@d", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := validate.Email(tt.input); got != tt.want {
				t.Errorf("Email(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEmail_NoAtIsAlwaysInvalid(t *testing.T) {
	t.Parallel()

	inputs := []string{"x", "example.com", "first.last", "a.b.c.d", "mentor-at-example.com"}
	for _, in := range inputs {
		if strings.Contains(in, "@") {
			t.Fatalf("fixture %q contains @", in)
		}
		if validate.Email(in) {
			t.Errorf("Email(%q) = true, want false for input without @", in)
		}
	}
}

func TestEmailValue_NonStringIsRejected(t *testing.T) {
	t.Parallel()

	for _, v := range []any{nil, 42, 3.5, []byte("a@b.co"), struct{}{}} {
		if validate.EmailValue(v) {
			t.Errorf("EmailValue(%#v) = true, want false", v)
		}
	}
	if !validate.EmailValue("a@b.co") {
		t.Error(`EmailValue("a@b.co") = false, want true`)
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty", input: "", want: false},
		{name: "five characters", input: "abc12", want: false},
		{name: "six characters", input: "abc123", want: true},
		{name: "long", input: "correct horse battery staple", want: true},
		{name: "spaces count", input: "      ", want: true},
		{name: "multibyte counted as characters", input: "ééééé", want: false},
		{name: "six multibyte characters", input: "éééééé", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := validate.Password(tt.input); got != tt.want {
				t.Errorf("Password(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	t.Parallel()

	var nilString *string
	present := "x"

	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{name: "nil", input: nil, want: false},
		{name: "empty string", input: "", want: false},
		{name: "blank string", input: "  ", want: false},
		{name: "tabs and newlines", input: "\t\n", want: false},
		{name: "value", input: "x", want: true},
		{name: "numeric zero", input: 0, want: true},
		{name: "false", input: false, want: true},
		{name: "nil pointer", input: nilString, want: false},
		{name: "pointer to value", input: &present, want: true},
		{name: "nil slice", input: []string(nil), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := validate.Required(tt.input); got != tt.want {
				t.Errorf("Required(%#v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPhoneNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "formatted US number", input: "(123) 456-7890", want: true},
		{name: "plain digits", input: "1234567890", want: true},
		{name: "international", input: "+44 20 7946 0958", want: true},
		{name: "single digit", input: "7", want: true},
		{name: "sixteen digits", input: "1234567890123456", want: true},
		{name: "seventeen digits", input: "12345678901234567", want: false},
		{name: "leading zero", input: "0123456789", want: false},
		{name: "plus then zero", input: "+0123456789", want: false},
		{name: "letters", input: "555-CALL-NOW", want: false},
		{name: "dots are not separators", input: "123.456.7890", want: false},
		{name: "empty", input: "", want: false},
		{name: "only separators", input: "( ) -", want: false},
		{name: "double plus", input: "++1234", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := validate.PhoneNumber(tt.input); got != tt.want {
				t.Errorf("PhoneNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPhoneNumberValue_NonStringIsRejected(t *testing.T) {
	t.Parallel()

	if validate.PhoneNumberValue(1234567890) {
		t.Error("PhoneNumberValue(int) = true, want false")
	}
	if validate.PhoneNumberValue(nil) {
		t.Error("PhoneNumberValue(nil) = true, want false")
	}
	if !validate.PhoneNumberValue("(123) 456-7890") {
		t.Error("PhoneNumberValue(formatted string) = false, want true")
	}
}

func TestFileSize(t *testing.T) {
	t.Parallel()

	const mib = 1024 * 1024

	tests := []struct {
		name string
		size int64
		max  float64
		want bool
	}{
		{name: "exactly at limit", size: 5 * mib, max: 5, want: true},
		{name: "one byte over", size: 5*mib + 1, max: 5, want: false},
		{name: "empty file", size: 0, max: 5, want: true},
		{name: "default ceiling", size: 10 * mib, max: validate.DefaultMaxFileSizeMB, want: true},
		{name: "fractional ceiling", size: mib / 2, max: 0.5, want: true},
		{name: "over fractional ceiling", size: mib/2 + 1, max: 0.5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := validate.File{Size: tt.size}
			if got := validate.FileSize(f, tt.max); got != tt.want {
				t.Errorf("FileSize(size=%d, max=%v) = %v, want %v", tt.size, tt.max, got, tt.want)
			}
		})
	}
}

func TestFileType(t *testing.T) {
	t.Parallel()

	allowed := []string{"application/pdf", "image/png"}

	if !validate.FileType(validate.File{Type: "application/pdf"}, allowed) {
		t.Error("FileType(application/pdf) = false, want true")
	}
	if validate.FileType(validate.File{Type: "image/gif"}, allowed) {
		t.Error("FileType(image/gif) = true, want false")
	}
	if validate.FileType(validate.File{Type: "APPLICATION/PDF"}, allowed) {
		t.Error("FileType is case-sensitive, want false for upper-case type")
	}
	if validate.FileType(validate.File{Type: "application/pdf"}, nil) {
		t.Error("FileType with no allowed types = true, want false")
	}
}

func TestFields_Err(t *testing.T) {
	t.Parallel()

	fields := validate.Fields{}
	if err := fields.Err(); err != nil {
		t.Fatalf("empty Fields.Err() = %v, want nil", err)
	}

	fields.Check(validate.Email("test@example.com"), "email", domain.MsgInvalidEmail)
	fields.Check(validate.Password("abc12"), "password", "too short")
	fields.Add("password", "second message ignored")

	err := fields.Err()
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(*ValidationError) = false, got %T", err)
	}
	if len(verr.Fields) != 1 {
		t.Errorf("Fields = %v, want only password", verr.Fields)
	}
	if verr.Fields["password"] != "too short" {
		t.Errorf(`Fields["password"] = %q, want "too short"`, verr.Fields["password"])
	}
}

func TestValidators_ConcurrentUse(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !validate.Email("a@b.co") || validate.PhoneNumber("0123") || !validate.Password("abcdef") {
				t.Error("validator result changed under concurrent use")
			}
		}()
	}
	wg.Wait()
}
