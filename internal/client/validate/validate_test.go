package validate

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/tradingprofessor/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireMessage(t *testing.T, err error, want string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, want, Message(err))
}

func TestError_IsValidationAndMessage(t *testing.T) {
	err := fmt.Errorf("field email: %w", Email("x"))
	assert.True(t, errors.Is(err, common.ErrValidation))
	assert.Equal(t, "Please enter a valid email address", Message(err))
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "boom", Message(errors.New("boom")))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "919876543210", Digits("+91 (98765) 43-210"))
	assert.Equal(t, "", Digits("abc"))
}

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "First name is required"},
		{"   ", "First name is required"},
		{"A", "First name must be at least 2 characters"},
		{strings.Repeat("a", 51), "First name cannot exceed 50 characters"},
		{"Ravi2", "First name can only contain letters and spaces"},
		{"Ravi Shankar", ""},
		{"  Jo  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := Name("First name", tt.in)
			if tt.want == "" {
				require.NoError(t, err)
				return
			}
			requireMessage(t, err, tt.want)
		})
	}
	assert.True(t, IsName("Mumbai"))
	assert.False(t, IsName("M"))
}

func TestEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@example.com", "a_b-c@sub.domain.in", "x1@y-z.org"}
	for _, s := range valid {
		assert.True(t, IsEmail(s), s)
	}
	invalid := []string{".a@b.com", "a.@b.com", "a@b", "a@-b.com", "a@b.c", "a b@c.com", "@b.com"}
	for _, s := range invalid {
		assert.False(t, IsEmail(s), s)
	}

	requireMessage(t, Email(""), "Email is required")
	requireMessage(t, Email("nope"), "Please enter a valid email address")
}

func TestPhone(t *testing.T) {
	assert.True(t, IsPhone("9876543210"))
	assert.True(t, IsPhone("98765-43210"))
	assert.False(t, IsPhone("5876543210"))
	assert.False(t, IsPhone("987654321"))

	requireMessage(t, Phone(""), "Phone number is required")
	requireMessage(t, Phone("98765"), "Phone number must be 10 digits")
	requireMessage(t, Phone("1234567890"), "Phone number must start with 6, 7, 8, or 9")
}

func TestPincode(t *testing.T) {
	assert.False(t, IsPincode("012345"))
	assert.True(t, IsPincode("123456"))
	assert.False(t, IsPincode("12345"))
	assert.False(t, IsPincode("12a456"))

	requireMessage(t, Pincode(""), "Pincode is required")
	requireMessage(t, Pincode("1234567"), "Pincode must be 6 digits")
	requireMessage(t, Pincode("012345"), "Pincode cannot start with 0")
}

func TestAadhaar(t *testing.T) {
	assert.False(t, IsAadhaar("111111111111"))
	assert.True(t, IsAadhaar("234567890123"))
	assert.True(t, IsAadhaar("2345 6789 0123"))
	assert.True(t, IsAadhaar("2345-6789-0123"))
	assert.True(t, IsAadhaar("2345.6789.0123"))
	assert.False(t, IsAadhaar("2345-6789-012"))
	assert.False(t, IsAadhaar("123456789012"))
	assert.False(t, IsAadhaar("987654321098"))
	assert.False(t, IsAadhaar("034567890123"))

	requireMessage(t, Aadhaar(""), "Aadhaar number is required")
	requireMessage(t, Aadhaar("23456789"), "Aadhaar number must be 12 digits")
	requireMessage(t, Aadhaar("2345-6789-0123-4"), "Aadhaar number must be 12 digits")
	requireMessage(t, Aadhaar("----"), "Aadhaar number is required")
	requireMessage(t, Aadhaar("1345 6789 0123"), "Aadhaar number cannot start with 0 or 1")
	requireMessage(t, Aadhaar("222222222222"), "Aadhaar number cannot have all identical digits")
	requireMessage(t, Aadhaar("987654321098"), "Please enter a valid 12-digit Aadhaar number")
}

func TestAddress(t *testing.T) {
	requireMessage(t, Address(""), "Address is required")
	requireMessage(t, Address("MG Road"), "Address must be at least 10 characters")
	requireMessage(t, Address(strings.Repeat("x", 201)), "Address cannot exceed 200 characters")
	require.NoError(t, Address("12 MG Road, Indiranagar"))
}

func TestAccepted(t *testing.T) {
	require.NoError(t, Accepted(true, "x"))
	requireMessage(t, Accepted(false, "You must accept the terms and conditions"), "You must accept the terms and conditions")
}

func TestLettersAndSpaces(t *testing.T) {
	assert.Equal(t, "Ravi Kumar", LettersAndSpaces("Ra1vi Ku-mar!"))
	assert.Equal(t, "Jos", LettersAndSpaces("José"))
	assert.Equal(t, "Ana Mara", LettersAndSpaces("Ana\u00a0María"))
}

func TestLettersAndSpaces_OutputPassesName(t *testing.T) {
	for _, in := range []string{"José", "Zoë Singh", "Ñandú", "Ravi  Kumar", "Åsa\tLind"} {
		out := LettersAndSpaces(in)
		require.NoError(t, Name("First name", out), "normalized %q to %q", in, out)
	}
}
