package models

import "github.com/shopspring/decimal"

// Course is one offer in the catalogue. Name is what the registration form
// receives as courseName.
type Course struct {
	ID            string
	Name          string
	Subtitle      string
	Duration      string
	Sessions      string
	Level         string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	Popular       bool
	Topics        []string
	Bonuses       []string
}

// Discount is the saving against the original price, never negative.
func (c Course) Discount() decimal.Decimal {
	d := c.OriginalPrice.Sub(c.Price)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
