package catalogue

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhases(t *testing.T) {
	list := Phases()
	require.Len(t, list, 3)
	assert.Equal(t, Count(), len(list))

	names := []string{list[0].Name, list[1].Name, list[2].Name}
	assert.Equal(t, []string{"Foundation Phase", "Advanced Phase", "Master Phase"}, names)
	assert.True(t, list[1].Popular)
	assert.True(t, decimal.NewFromInt(6000).Equal(list[0].Discount()))

	for _, c := range list {
		assert.NotEmpty(t, c.Topics, c.Name)
		assert.True(t, c.Price.LessThan(c.OriginalPrice), c.Name)
	}
}

func TestPhases_ReturnsCopies(t *testing.T) {
	a := Phases()
	a[0].Topics[0] = "changed"
	a[0].Name = "changed"

	b := Phases()
	assert.Equal(t, "Foundation Phase", b[0].Name)
	assert.Equal(t, "Market Basics & Terminology", b[0].Topics[0])
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("2")
	require.True(t, ok)
	assert.Equal(t, "Advanced Phase", c.Name)

	c, ok = Lookup("  master phase ")
	require.True(t, ok)
	assert.Equal(t, "3", c.ID)

	c, ok = Lookup("all")
	require.True(t, ok)
	assert.Equal(t, Bundle().Name, c.Name)

	_, ok = Lookup("Crypto Phase")
	assert.False(t, ok)
}

func TestFormatINR(t *testing.T) {
	digits := func(s string) string {
		return strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, s)
	}

	got := FormatINR(decimal.NewFromInt(1234567))
	assert.True(t, strings.HasPrefix(got, "₹"), got)
	assert.Equal(t, "1234567", digits(got))
	assert.Contains(t, got, ",")

	got = FormatINR(decimal.RequireFromString("999.5"))
	assert.Equal(t, "99950", digits(got))
}
