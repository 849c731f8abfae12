package admin

import (
	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/shopspring/decimal"
)

// Stats is the dashboard summary of a snapshot.
type Stats struct {
	TotalStudents      int
	ByStatus           map[models.RegistrationStatus]int
	TotalPayments      int
	SuccessfulPayments int
	Revenue            decimal.Decimal
	TotalCourses       int
}

// ComputeStats counts registrations per status and sums successful payments.
func ComputeStats(regs []models.Registration, pays []models.Payment, courses int) Stats {
	s := Stats{
		TotalStudents: len(regs),
		ByStatus:      make(map[models.RegistrationStatus]int, len(models.RegistrationStatuses)),
		TotalPayments: len(pays),
		Revenue:       decimal.Zero,
		TotalCourses:  courses,
	}
	for _, st := range models.RegistrationStatuses {
		s.ByStatus[st] = 0
	}
	for _, r := range regs {
		s.ByStatus[r.Status]++
	}
	for _, p := range pays {
		if p.Class() == models.PaymentSucceeded {
			s.SuccessfulPayments++
			s.Revenue = s.Revenue.Add(p.Amount)
		}
	}
	return s
}
