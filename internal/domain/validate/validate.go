// Package validate provides the primitive input validators shared by request
// DTOs and domain entities. Every validator is a pure predicate: it never
// panics and never returns an error, only true or false.
//
// The patterns are deliberately permissive and must not be tightened: a phone
// number with a leading zero is rejected, and an email address only needs a
// local part, an "@", a domain and a dot-separated suffix.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
)

const (
	// MinPasswordLength is the minimum number of characters in a password.
	MinPasswordLength = 6

	// DefaultMaxFileSizeMB is the size ceiling used when callers have no
	// class-specific limit.
	DefaultMaxFileSizeMB = 10

	bytesPerMB = 1 << 20
)

// nonSpace matches one character that is neither whitespace nor "@".
// \s in RE2 is ASCII-only, so Unicode separators are listed explicitly.
const nonSpace = `[^\s\v\p{Z}\x{FEFF}@]`

var (
	emailPattern = regexp.MustCompile(`^` + nonSpace + `+@` + nonSpace + `+\.[^\s\v\p{Z}\x{FEFF}]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
)

// File describes an uploaded file for size and type checks. Size is in bytes
// and Type is the MIME type (e.g. "application/pdf").
type File struct {
	Name string
	Size int64
	Type string
}

// Email reports whether s looks like an email address. The check is purely
// syntactic: no normalization, length cap or deliverability check.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// EmailValue is Email for values of unknown type. Non-strings are rejected.
func EmailValue(v any) bool {
	s, ok := v.(string)
	return ok && Email(s)
}

// Password reports whether s has at least MinPasswordLength characters.
// Length is counted in code points, not bytes.
func Password(s string) bool {
	return utf8.RuneCountInString(s) >= MinPasswordLength
}

// Required reports whether v is present: non-nil, and its string form is not
// blank after trimming. Numeric zero is present ("0").
func Required(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return Required(rv.Elem().Interface())
	case reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return false
		}
	}

	return strings.TrimSpace(fmt.Sprint(v)) != ""
}

// PhoneNumber reports whether s is a phone number once whitespace, hyphens
// and parentheses are removed: an optional "+", a non-zero first digit and
// at most 15 further digits.
func PhoneNumber(s string) bool {
	return phonePattern.MatchString(stripPhoneSeparators(s))
}

// PhoneNumberValue is PhoneNumber for values of unknown type. Non-strings are
// rejected.
func PhoneNumberValue(v any) bool {
	s, ok := v.(string)
	return ok && PhoneNumber(s)
}

func stripPhoneSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '(' || r == ')' || r == '\ufeff' {
			return -1
		}
		return r
	}, s)
}

// FileSize reports whether f.Size is at most maxSizeMB mebibytes.
func FileSize(f File, maxSizeMB float64) bool {
	return float64(f.Size) <= maxSizeMB*bytesPerMB
}

// FileType reports whether f.Type is one of allowedTypes. Matching is exact.
func FileType(f File, allowedTypes []string) bool {
	return slices.Contains(allowedTypes, f.Type)
}

// Fields accumulates field-level failures. The first message recorded for a
// field wins.
type Fields map[string]string

// Check records msg for field when ok is false.
func (f Fields) Check(ok bool, field, msg string) {
	if ok {
		return
	}
	if _, exists := f[field]; !exists {
		f[field] = msg
	}
}

// Add records msg for field unconditionally, unless the field already failed.
func (f Fields) Add(field, msg string) {
	f.Check(false, field, msg)
}

// Err returns a *domain.ValidationError when any field failed, nil otherwise.
func (f Fields) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: f}
}
