package form

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/validate"
)

// Field names a form input. Values match the multipart keys the backend expects.
type Field string

const (
	FirstName   Field = "firstName"
	LastName    Field = "lastName"
	Email       Field = "email"
	Phone       Field = "phone"
	DateOfBirth Field = "dateOfBirth"
	Address     Field = "address"
	City        Field = "city"
	State       Field = "state"
	Pincode     Field = "pincode"
	CourseName  Field = "courseName"

	AadharNumber  Field = "aadharNumber"
	AadharFile    Field = "aadharFile"
	SignatureFile Field = "signatureFile"

	AgreeTerms     Field = "agreeTerms"
	AgreeMarketing Field = "agreeMarketing"

	DisclaimerAccepted  Field = "disclaimerAccepted"
	RiskWarningAccepted Field = "riskWarningAccepted"
	InvestmentAmount    Field = "investmentAmount"
	InvestmentGoals     Field = "investmentGoals"
	TermsAccepted       Field = "termsAccepted"

	// General holds errors that cannot be pinned to an input.
	General Field = "general"
)

// Kind selects which draft map stores a field.
type Kind int

const (
	KindText Kind = iota
	KindFlag
	KindFile
)

// Value is the current content of one field, whatever its kind.
type Value struct {
	Text string
	Flag bool
	File *models.Attachment
}

// CheckEnv carries what validation needs from outside the draft.
type CheckEnv struct {
	Now  time.Time
	Ages validate.AgeBounds
}

// FieldSpec describes how a field is edited, checked and sent.
type FieldSpec struct {
	Kind  Kind
	Label string
	// Normalize runs on every text update before storage.
	Normalize func(string) string
	// Check returns a validate error or nil. Nil Check means always valid.
	Check func(v Value, env CheckEnv) error
	// Wire converts the stored text to the value sent to the backend.
	Wire func(string) string
	// Multiline text is entered as several lines.
	Multiline bool
}

func keepDigits(max int) func(string) string {
	return func(s string) string {
		d := validate.Digits(s)
		if len(d) > max {
			d = d[:max]
		}
		return d
	}
}

// groupAadhaar keeps at most 12 digits and inserts a space every 4.
func groupAadhaar(s string) string {
	d := keepDigits(validate.AadhaarLen)(s)
	var b strings.Builder
	for i, r := range d {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func amountChars(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
}
