package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/tradingprofessor/internal/common"
)

// AgeBounds is the inclusive age range accepted for date of birth.
type AgeBounds struct {
	Min int
	Max int
}

var DefaultAgeBounds = AgeBounds{Min: 18, Max: 100}

// Age returns completed years between dob and now.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// DateOfBirth checks a YYYY-MM-DD date: it must parse, lie in the past and
// give an age within bounds.
func DateOfBirth(s string, now time.Time, bounds AgeBounds) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fail("Date of birth is required")
	}

	dob, err := time.ParseInLocation(common.DateLayout, s, now.Location())
	if err != nil {
		return fail("Please enter a valid date of birth")
	}
	if !dob.Before(now) {
		return fail("Date of birth must be in the past")
	}

	if age := Age(dob, now); age < bounds.Min || age > bounds.Max {
		return fail(fmt.Sprintf("You must be between %d and %d years old", bounds.Min, bounds.Max))
	}
	return nil
}
