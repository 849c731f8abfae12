package form

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/validate"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testOptions() Options {
	return Options{Now: func() time.Time { return fixedNow }, Ages: validate.DefaultAgeBounds}
}

func pngFile(size int) *models.Attachment {
	return &models.Attachment{Name: "scan.png", ContentType: "image/png", Data: make([]byte, size)}
}

// filledRegistration returns a draft that passes every registration check.
func filledRegistration(t *testing.T, s *Schema) Draft {
	t.Helper()
	d := Initial(s)
	for _, a := range []Action{
		UpdateField{FirstName, "Asha"},
		UpdateField{LastName, "Rao"},
		UpdateField{Email, "asha@example.com"},
		UpdateField{Phone, "98765 43210"},
		UpdateField{DateOfBirth, "1990-05-20"},
		UpdateField{Address, "12 MG Road, Indiranagar"},
		UpdateField{City, "Bengaluru"},
		UpdateField{State, "Karnataka"},
		UpdateField{Pincode, "560038"},
		UpdateField{AadharNumber, "234567890123"},
		AttachFile{AadharFile, pngFile(1024)},
		AttachFile{SignatureFile, pngFile(512)},
		SetFlag{AgreeTerms, true},
	} {
		d = Reduce(s, d, a)
	}
	return d
}
