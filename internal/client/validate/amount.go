package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	MinInvestment = decimal.NewFromInt(10_000)
	MaxInvestment = decimal.NewFromInt(1_00_00_000)
)

const (
	GoalsMinLen = 20
	GoalsMaxLen = 500
)

// ParseAmount reads a rupee amount, tolerating grouping commas and a
// leading ₹ sign.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(strings.TrimSpace(s))
}

// InvestmentAmount checks 10,000 <= amount <= 1,00,00,000.
func InvestmentAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return fail("Investment amount is required")
	}
	amount, err := ParseAmount(s)
	if err != nil {
		return fail("Please enter a valid amount")
	}
	switch {
	case amount.LessThan(MinInvestment):
		return fail("Minimum investment amount is ₹10,000")
	case amount.GreaterThan(MaxInvestment):
		return fail("Maximum investment amount is ₹1,00,00,000")
	}
	return nil
}

// InvestmentGoals checks the free-text goals: 20-500 characters.
func InvestmentGoals(s string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	switch {
	case n == 0:
		return fail("Investment goals are required")
	case n < GoalsMinLen:
		return fail("Investment goals must be at least 20 characters")
	case n > GoalsMaxLen:
		return fail("Investment goals cannot exceed 500 characters")
	}
	return nil
}
