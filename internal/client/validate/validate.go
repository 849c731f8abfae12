// Package validate implements the field rules shared by the enrollment and
// copy-trading forms.
//
// Every rule comes in two flavours: a predicate (IsPhone, IsAadhaar, ...)
// and a checker returning nil or an *Error with the most specific message
// for the first rule that failed. Checks run in a fixed order: presence,
// length, character set, leading digit, then pattern.
package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/tradingprofessor/internal/common"
)

// Error is a field-scoped validation failure. It matches common.ErrValidation.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == common.ErrValidation }

func fail(msg string) error { return &Error{Message: msg} }

// Message returns the user-facing text of a validation error, or err.Error()
// for anything else.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRe = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?@(?:[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?\.)+[A-Za-z]{2,}$`)
)

const (
	NameMinLen    = 2
	NameMaxLen    = 50
	AddressMinLen = 10
	AddressMaxLen = 200
	PhoneLen      = 10
	PincodeLen    = 6
	AadhaarLen    = 12
)

// Digits drops every non-digit rune.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsName reports whether s is 2-50 letters and spaces after trimming.
func IsName(s string) bool {
	return Name("Name", s) == nil
}

// Name checks a person or place name. label starts the message, e.g.
// "First name" or "City".
func Name(label, s string) error {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		return fail(label + " is required")
	case n < NameMinLen:
		return fail(label + " must be at least 2 characters")
	case n > NameMaxLen:
		return fail(label + " cannot exceed 50 characters")
	case !nameRe.MatchString(s):
		return fail(label + " can only contain letters and spaces")
	}
	return nil
}

func IsEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

func Email(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fail("Email is required")
	}
	if !emailRe.MatchString(s) {
		return fail("Please enter a valid email address")
	}
	return nil
}

// IsPhone reports whether s holds exactly 10 digits starting with 6-9.
// Non-digit characters are ignored.
func IsPhone(s string) bool {
	return Phone(s) == nil
}

func Phone(s string) error {
	d := Digits(s)
	switch {
	case d == "":
		return fail("Phone number is required")
	case len(d) != PhoneLen:
		return fail("Phone number must be 10 digits")
	case d[0] < '6':
		return fail("Phone number must start with 6, 7, 8, or 9")
	}
	return nil
}

// IsPincode reports whether s is exactly 6 digits not starting with 0.
func IsPincode(s string) bool {
	return Pincode(s) == nil
}

func Pincode(s string) error {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return fail("Pincode is required")
	case len(s) != PincodeLen || Digits(s) != s:
		return fail("Pincode must be 6 digits")
	case s[0] == '0':
		return fail("Pincode cannot start with 0")
	}
	return nil
}

var bannedAadhaar = map[string]struct{}{
	"123456789012": {},
	"987654321098": {},
}

// IsAadhaar checks the shape of an Aadhaar number: 12 digits, leading digit
// 2-9, not one repeated digit, not a well-known test sequence. Separators
// such as spaces or dashes are ignored. There is no checksum verification.
func IsAadhaar(s string) bool {
	return Aadhaar(s) == nil
}

func Aadhaar(s string) error {
	s = Digits(s)
	switch {
	case s == "":
		return fail("Aadhaar number is required")
	case len(s) != AadhaarLen:
		return fail("Aadhaar number must be 12 digits")
	case s[0] == '0' || s[0] == '1':
		return fail("Aadhaar number cannot start with 0 or 1")
	case strings.Count(s, s[:1]) == AadhaarLen:
		return fail("Aadhaar number cannot have all identical digits")
	}
	if _, banned := bannedAadhaar[s]; banned {
		return fail("Please enter a valid 12-digit Aadhaar number")
	}
	return nil
}

func Address(s string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	switch {
	case n == 0:
		return fail("Address is required")
	case n < AddressMinLen:
		return fail("Address must be at least 10 characters")
	case n > AddressMaxLen:
		return fail("Address cannot exceed 200 characters")
	}
	return nil
}

// Accepted checks a mandatory consent flag.
func Accepted(v bool, msg string) error {
	if !v {
		return fail(msg)
	}
	return nil
}

// LettersAndSpaces keeps only the runes nameRe accepts: ASCII letters and
// ASCII whitespace.
func LettersAndSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
			return r
		case r == ' ', r == '\t', r == '\n', r == '\f', r == '\r':
			return r
		}
		return -1
	}, s)
}
