package admin

import (
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRegistrations(t *testing.T) []models.Registration {
	t.Helper()
	regs := NormalizeCollection[models.Registration](json.RawMessage(registrationsJSON), "registrations")
	require.Len(t, regs, 3)
	return regs
}

func regIDs(regs []models.Registration) []string {
	out := []string{}
	for _, r := range regs {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterRegistrations(t *testing.T) {
	regs := sampleRegistrations(t)

	tests := []struct {
		name   string
		filter RegistrationFilter
		want   []string
	}{
		{"no filter", RegistrationFilter{}, []string{"r1", "r2", "r3"}},
		{"email-only substring", RegistrationFilter{Query: "MAIL.COM"}, []string{"r3"}},
		{"name", RegistrationFilter{Query: "ravi"}, []string{"r2"}},
		{"phone", RegistrationFilter{Query: "98765"}, []string{"r1"}},
		{"course", RegistrationFilter{Query: "phase 2"}, []string{"r2"}},
		{"status only", RegistrationFilter{Status: "active"}, []string{"r2"}},
		{"status all", RegistrationFilter{Status: "all"}, []string{"r1", "r2", "r3"}},
		{"and semantics", RegistrationFilter{Query: "asha", Status: "active"}, []string{}},
		{"and match", RegistrationFilter{Query: "asha", Status: "pending"}, []string{"r1"}},
		{"no cross-field match", RegistrationFilter{Query: "raoasha"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, regIDs(FilterRegistrations(regs, tt.filter)))
		})
	}
}

func TestFilterPayments(t *testing.T) {
	pays := NormalizeCollection[models.Payment](json.RawMessage(paymentsJSON), "payments")
	require.Len(t, pays, 4)

	got := FilterPayments(pays, "RAVI")
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	got = FilterPayments(pays, "example.com")
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	assert.Len(t, FilterPayments(pays, ""), 4)
	assert.Empty(t, FilterPayments(pays, "9876"), "phone is not searched for payments")
}
