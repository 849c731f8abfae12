package form

import (
	"maps"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/validate"
)

// Action is a transition request applied by Reduce.
type Action interface {
	action()
}

// UpdateField stores a normalized text value and clears that field's error.
type UpdateField struct {
	Field Field
	Value string
}

// SetFlag stores a checkbox value and clears that field's error.
type SetFlag struct {
	Field Field
	Value bool
}

// AttachFile validates and stores a picked document. A rejected file sets
// the field error and leaves the previous attachment in place.
type AttachFile struct {
	Field Field
	File  *models.Attachment
}

// AdvanceStep validates the fields of step From and moves to the next step.
// It does nothing unless the draft is currently on From, so a repeated
// dispatch cannot skip a step.
type AdvanceStep struct {
	From int
}

// RetreatStep moves back one step and clears every error.
type RetreatStep struct{}

// Reset returns to the initial draft.
type Reset struct{}

// ValidateAll checks every field before submission. On failure the draft
// moves to the first step holding an error.
type ValidateAll struct{}

// SetServerErrors merges field errors reported by the backend.
type SetServerErrors struct {
	Errors  map[Field]string
	Message string
}

// BeginSubmit locks the draft while a request is in flight.
type BeginSubmit struct{}

// SubmitSucceeded clears the draft and marks it submitted.
type SubmitSucceeded struct {
	Message string
}

// SubmitFailed unlocks the draft and records the failure.
type SubmitFailed struct {
	Errors  map[Field]string
	Message string
}

func (UpdateField) action()     {}
func (SetFlag) action()         {}
func (AttachFile) action()      {}
func (AdvanceStep) action()     {}
func (RetreatStep) action()     {}
func (Reset) action()           {}
func (ValidateAll) action()     {}
func (SetServerErrors) action() {}
func (BeginSubmit) action()     {}
func (SubmitSucceeded) action() {}
func (SubmitFailed) action()    {}

// FixErrorsMessage is the banner shown when local validation blocks submit.
const FixErrorsMessage = "Please fix the validation errors below"

// Reduce is the pure transition function of the form state machine. It
// returns a new draft and never mutates d. Editing actions are ignored
// unless the draft is in the Editing phase.
func Reduce(s *Schema, d Draft, a Action) Draft {
	switch a := a.(type) {
	case Reset:
		return Initial(s)

	case BeginSubmit:
		if d.Phase != Editing {
			return d
		}
		d = d.Clone()
		d.Phase = Submitting
		d.Message = ""
		delete(d.Errors, General)
		return d

	case SubmitSucceeded:
		if d.Phase != Submitting {
			return d
		}
		next := Initial(s)
		next.Phase = Submitted
		next.Message = a.Message
		return next

	case SubmitFailed:
		if d.Phase != Submitting {
			return d
		}
		d = withErrors(d, a.Errors)
		d.Phase = Editing
		d.Message = a.Message
		d.Step = firstErrorStep(s, d)
		return d
	}

	if d.Phase != Editing {
		return d
	}

	switch a := a.(type) {
	case UpdateField:
		spec, ok := s.Fields[a.Field]
		if !ok || spec.Kind != KindText {
			return d
		}
		v := a.Value
		if spec.Normalize != nil {
			v = spec.Normalize(v)
		}
		d = d.Clone()
		d.Values[a.Field] = v
		delete(d.Errors, a.Field)
		return d

	case SetFlag:
		spec, ok := s.Fields[a.Field]
		if !ok || spec.Kind != KindFlag {
			return d
		}
		d = d.Clone()
		d.Flags[a.Field] = a.Value
		delete(d.Errors, a.Field)
		return d

	case AttachFile:
		spec, ok := s.Fields[a.Field]
		if !ok || spec.Kind != KindFile {
			return d
		}
		d = d.Clone()
		if err := s.Check(a.Field, Value{File: a.File}); err != nil {
			d.Errors[a.Field] = validate.Message(err)
			return d
		}
		d.Files[a.Field] = a.File
		delete(d.Errors, a.Field)
		return d

	case AdvanceStep:
		if a.From != d.Step || d.Step < 1 || d.Step > len(s.Steps) {
			return d
		}
		errs := checkFields(s, d, s.Steps[d.Step-1].Fields)
		d = d.Clone()
		for _, f := range s.Steps[d.Step-1].Fields {
			delete(d.Errors, f)
		}
		if len(errs) > 0 {
			maps.Copy(d.Errors, errs)
			return d
		}
		if d.Step < len(s.Steps) {
			d.Step++
		}
		return d

	case RetreatStep:
		d = d.Clone()
		if d.Step > 1 {
			d.Step--
		}
		d.Errors = map[Field]string{}
		d.Message = ""
		return d

	case ValidateAll:
		errs := checkFields(s, d, s.FieldOrder())
		d = d.Clone()
		d.Errors = errs
		if len(errs) > 0 {
			d.Message = FixErrorsMessage
			d.Step = firstErrorStep(s, d)
		}
		return d

	case SetServerErrors:
		d = withErrors(d, a.Errors)
		if a.Message != "" {
			d.Message = a.Message
		}
		return d
	}

	return d
}

// Errors returns the local validation errors of the whole draft.
func Errors(s *Schema, d Draft) map[Field]string {
	return checkFields(s, d, s.FieldOrder())
}

func checkFields(s *Schema, d Draft, fields []Field) map[Field]string {
	errs := map[Field]string{}
	for _, f := range fields {
		if err := s.Check(f, d.Value(f)); err != nil {
			errs[f] = validate.Message(err)
		}
	}
	return errs
}

func withErrors(d Draft, errs map[Field]string) Draft {
	d = d.Clone()
	if d.Errors == nil {
		d.Errors = map[Field]string{}
	}
	maps.Copy(d.Errors, errs)
	return d
}

// firstErrorStep is the lowest step owning an error, or the current step
// when only general errors exist.
func firstErrorStep(s *Schema, d Draft) int {
	for i, st := range s.Steps {
		for _, f := range st.Fields {
			if _, bad := d.Errors[f]; bad {
				return i + 1
			}
		}
	}
	return d.Step
}
