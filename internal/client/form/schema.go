package form

import (
	"time"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/validate"
)

// Step is one page of a wizard. Advancing validates only its fields.
type Step struct {
	Title  string
	Fields []Field
}

// Schema is the static description of a multi-step form.
type Schema struct {
	Name string
	// Title is the human name used in banners, e.g. "Registration".
	Title    string
	Endpoint string
	Steps    []Step
	Fields   map[Field]FieldSpec
	Rules    []ErrorRule
	// Presets seed text fields of every fresh draft.
	Presets map[Field]string

	ages validate.AgeBounds
	now  func() time.Time
}

// Options tune a schema at construction.
type Options struct {
	Ages validate.AgeBounds
	// Now defaults to time.Now.
	Now func() time.Time
	// Presets seed text fields, e.g. the course picked from the catalogue.
	Presets map[Field]string
}

func (o Options) apply(s *Schema) *Schema {
	s.ages = o.Ages
	if s.ages == (validate.AgeBounds{}) {
		s.ages = validate.DefaultAgeBounds
	}
	s.now = o.Now
	if s.now == nil {
		s.now = time.Now
	}
	s.Presets = make(map[Field]string, len(o.Presets))
	for f, v := range o.Presets {
		if spec, ok := s.Fields[f]; ok && spec.Kind == KindText {
			s.Presets[f] = v
		}
	}
	return s
}

func (s *Schema) env() CheckEnv {
	return CheckEnv{Now: s.now(), Ages: s.ages}
}

// StepCount is the number of wizard pages.
func (s *Schema) StepCount() int { return len(s.Steps) }

// StepOf returns the 1-based step owning f, or 0.
func (s *Schema) StepOf(f Field) int {
	for i, st := range s.Steps {
		for _, sf := range st.Fields {
			if sf == f {
				return i + 1
			}
		}
	}
	return 0
}

// FieldOrder lists every field in step order.
func (s *Schema) FieldOrder() []Field {
	var out []Field
	for _, st := range s.Steps {
		out = append(out, st.Fields...)
	}
	return out
}

// Check runs the rule for a single field against v.
func (s *Schema) Check(f Field, v Value) error {
	spec, ok := s.Fields[f]
	if !ok || spec.Check == nil {
		return nil
	}
	return spec.Check(v, s.env())
}

func textCheck(fn func(string) error) func(Value, CheckEnv) error {
	return func(v Value, _ CheckEnv) error { return fn(v.Text) }
}

func nameCheck(label string) func(Value, CheckEnv) error {
	return func(v Value, _ CheckEnv) error { return validate.Name(label, v.Text) }
}

func flagCheck(msg string) func(Value, CheckEnv) error {
	return func(v Value, _ CheckEnv) error { return validate.Accepted(v.Flag, msg) }
}

func fileCheck(rule validate.FileRule) func(Value, CheckEnv) error {
	return func(v Value, _ CheckEnv) error { return rule.Check(v.File) }
}

func dobCheck(v Value, env CheckEnv) error {
	return validate.DateOfBirth(v.Text, env.Now, env.Ages)
}

func aadhaarWire(s string) string { return validate.Digits(s) }

// identityFields are shared by both forms.
func identityFields() map[Field]FieldSpec {
	letters := validate.LettersAndSpaces
	return map[Field]FieldSpec{
		FirstName:     {Kind: KindText, Label: "First name", Normalize: letters, Check: nameCheck("First name")},
		LastName:      {Kind: KindText, Label: "Last name", Normalize: letters, Check: nameCheck("Last name")},
		Email:         {Kind: KindText, Label: "Email", Check: textCheck(validate.Email)},
		Phone:         {Kind: KindText, Label: "Phone number", Normalize: keepDigits(validate.PhoneLen), Check: textCheck(validate.Phone)},
		DateOfBirth:   {Kind: KindText, Label: "Date of birth (YYYY-MM-DD)", Check: dobCheck},
		Address:       {Kind: KindText, Label: "Address", Check: textCheck(validate.Address)},
		City:          {Kind: KindText, Label: "City", Normalize: letters, Check: nameCheck("City")},
		State:         {Kind: KindText, Label: "State", Normalize: letters, Check: nameCheck("State")},
		Pincode:       {Kind: KindText, Label: "Pincode", Normalize: keepDigits(validate.PincodeLen), Check: textCheck(validate.Pincode)},
		AadharNumber:  {Kind: KindText, Label: "Aadhaar number", Normalize: groupAadhaar, Check: textCheck(validate.Aadhaar), Wire: aadhaarWire},
		AadharFile:    {Kind: KindFile, Label: "Aadhaar card (JPG, PNG or PDF, max 5MB)", Check: fileCheck(validate.AadhaarFile)},
		SignatureFile: {Kind: KindFile, Label: "Signature (JPG or PNG, max 2MB)", Check: fileCheck(validate.SignatureFile)},
	}
}

// Registration describes the three-step course enrollment form.
func Registration(o Options) *Schema {
	fields := identityFields()
	fields[CourseName] = FieldSpec{Kind: KindText, Label: "Course"}
	fields[AgreeTerms] = FieldSpec{Kind: KindFlag, Label: "I agree to the terms and conditions", Check: flagCheck("You must accept the terms and conditions")}
	fields[AgreeMarketing] = FieldSpec{Kind: KindFlag, Label: "Send me updates and offers"}

	s := &Schema{
		Name:     "registration",
		Title:    "Registration",
		Endpoint: "/api/registration/submit",
		Steps: []Step{
			{Title: "Personal Information", Fields: []Field{FirstName, LastName, Email, Phone, DateOfBirth}},
			{Title: "Address Details", Fields: []Field{Address, City, State, Pincode}},
			{Title: "Documents & Consent", Fields: []Field{AadharNumber, AadharFile, SignatureFile, AgreeTerms, AgreeMarketing}},
		},
		Fields: fields,
		Rules:  RegistrationRules,
	}
	return o.apply(s)
}

// CopyTrading describes the four-step copy-trading application.
func CopyTrading(o Options) *Schema {
	fields := identityFields()
	fields[DisclaimerAccepted] = FieldSpec{Kind: KindFlag, Label: "I have read the disclaimer", Check: flagCheck("You must accept the disclaimer")}
	fields[RiskWarningAccepted] = FieldSpec{Kind: KindFlag, Label: "I understand trading involves risk of loss", Check: flagCheck("You must acknowledge the risk warning")}
	fields[InvestmentAmount] = FieldSpec{Kind: KindText, Label: "Investment amount (₹10,000 - ₹1,00,00,000)", Normalize: amountChars, Check: textCheck(validate.InvestmentAmount)}
	fields[InvestmentGoals] = FieldSpec{Kind: KindText, Label: "Investment goals (20-500 characters)", Check: textCheck(validate.InvestmentGoals), Multiline: true}
	fields[TermsAccepted] = FieldSpec{Kind: KindFlag, Label: "I accept the terms and conditions", Check: flagCheck("You must accept the terms and conditions")}

	s := &Schema{
		Name:     "copy-trading",
		Title:    "Copy trading application",
		Endpoint: "/api/trading-form/applications",
		Steps: []Step{
			{Title: "Disclaimer", Fields: []Field{DisclaimerAccepted, RiskWarningAccepted}},
			{Title: "Personal Information", Fields: []Field{FirstName, LastName, Email, Phone, DateOfBirth, AadharNumber, Address, City, State, Pincode}},
			{Title: "Investment Details", Fields: []Field{InvestmentAmount, InvestmentGoals}},
			{Title: "Documents", Fields: []Field{AadharFile, SignatureFile, TermsAccepted}},
		},
		Fields: fields,
		Rules:  CopyTradingRules,
	}
	return o.apply(s)
}
