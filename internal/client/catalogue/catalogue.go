// Package catalogue holds the fixed course offer and rupee formatting used
// when presenting prices and revenue.
package catalogue

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var phases = []models.Course{
	{
		ID:            "1",
		Name:          "Foundation Phase",
		Subtitle:      "Basic to Intermediate",
		Duration:      "2 Days Online",
		Sessions:      "2.5 Hours/Day",
		Level:         "Beginner to Intermediate",
		Price:         decimal.NewFromInt(19999),
		OriginalPrice: decimal.NewFromInt(25999),
		Topics: []string{
			"Market Basics & Terminology",
			"Foundation Of Market",
			"Trend Analysis",
			"Strike Selection",
			"Greeks Understanding",
		},
		Bonuses: []string{
			"1 Month TP Premium Group Access",
			"Live Sessions",
		},
	},
	{
		ID:            "2",
		Name:          "Advanced Phase",
		Subtitle:      "Professional Trading",
		Duration:      "3 Days Online",
		Sessions:      "2.5 Hours/Day",
		Level:         "Intermediate to Advanced",
		Price:         decimal.NewFromInt(34999),
		OriginalPrice: decimal.NewFromInt(45999),
		Popular:       true,
		Topics: []string{
			"Insight Based Formula",
			"Point Variation Strategies",
			"Manipulation Finding Strategies",
			"Role Of Emotion",
			"Psychology",
		},
		Bonuses: []string{
			"2 Month TP Premium Group Access",
			"Live Sessions",
			"Free Combination Website Paid Version",
		},
	},
	{
		ID:            "3",
		Name:          "Master Phase",
		Subtitle:      "Expert Level Trading",
		Duration:      "4 Days Online",
		Sessions:      "2.5 Hours/Day",
		Level:         "Advanced to Expert",
		Price:         decimal.NewFromInt(57999),
		OriginalPrice: decimal.NewFromInt(75999),
		Topics: []string{
			"Timing-Based Formula",
			"Option Trick",
			"Stock Option",
			"Stopless Smith",
			"Change Of Mindset",
		},
		Bonuses: []string{
			"3 Months TP Premium Group Access",
			"Live Sessions",
			"Advanced Trend Analysis Software Free",
		},
	},
}

// bundle is every phase at a package price; it is not counted as a course.
var bundle = models.Course{
	ID:            "all",
	Name:          "Complete Master Package",
	Subtitle:      "All 3 Phases + Bonuses",
	Duration:      "5 Days Online",
	Sessions:      "2.5 Hours/Day",
	Level:         "Beginner to Expert",
	Price:         decimal.NewFromInt(89999),
	OriginalPrice: decimal.NewFromInt(112997),
	Topics:        []string{"All Phase 1, 2 & 3 Content"},
	Bonuses: []string{
		"6 Month Premium TP Group Access",
		"Live sessions",
		"Advanced Trend Analysis Software",
		"Free Combination Website Paid Version",
	},
}

// Phases returns a copy of the individual course phases in order.
func Phases() []models.Course {
	out := make([]models.Course, len(phases))
	for i, c := range phases {
		out[i] = clone(c)
	}
	return out
}

// Bundle returns the all-phases package.
func Bundle() models.Course { return clone(bundle) }

// Count is the number of distinct courses shown on the dashboard.
func Count() int { return len(phases) }

// Lookup finds an offer by id or by name, ignoring case.
func Lookup(key string) (models.Course, bool) {
	key = strings.TrimSpace(key)
	for _, c := range append(slices.Clone(phases), bundle) {
		if c.ID == key || strings.EqualFold(c.Name, key) {
			return clone(c), true
		}
	}
	return models.Course{}, false
}

func clone(c models.Course) models.Course {
	c.Topics = slices.Clone(c.Topics)
	c.Bonuses = slices.Clone(c.Bonuses)
	return c
}

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount in rupees with Indian digit grouping.
func FormatINR(d decimal.Decimal) string {
	if d.IsInteger() {
		return printer.Sprintf("₹%v", number.Decimal(d.IntPart()))
	}
	return printer.Sprintf("₹%v", number.Decimal(d.InexactFloat64(), number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
