package admin

import (
	"strings"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
)

// RegistrationFilter narrows the registration list. Query is a
// case-insensitive substring over name, email, phone and course; Status
// is an exact match. Both must hold. Empty fields (or Status "all") match
// everything.
type RegistrationFilter struct {
	Query  string
	Status string
}

func FilterRegistrations(list []models.Registration, f RegistrationFilter) []models.Registration {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	status := strings.ToLower(strings.TrimSpace(f.Status))
	if status == "all" {
		status = ""
	}

	out := make([]models.Registration, 0, len(list))
	for _, r := range list {
		if status != "" && string(r.Status) != status {
			continue
		}
		if q != "" && !strings.Contains(registrationHaystack(r), q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func registrationHaystack(r models.Registration) string {
	return strings.ToLower(strings.Join([]string{
		r.FirstName, r.LastName, r.Name, r.Email, r.Phone, r.CourseName,
	}, "\x00"))
}

// FilterPayments matches the query against payer name and email.
func FilterPayments(list []models.Payment, query string) []models.Payment {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Payment, 0, len(list))
	for _, p := range list {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Email), q) {
			out = append(out, p)
		}
	}
	return out
}
