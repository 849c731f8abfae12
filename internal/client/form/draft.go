package form

import (
	"maps"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
)

// Phase is the submission lifecycle of a draft.
type Phase int

const (
	Editing Phase = iota
	Submitting
	Submitted
)

func (p Phase) String() string {
	switch p {
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	default:
		return "editing"
	}
}

// Draft is the in-progress state of a form. Treat it as immutable: Reduce
// never modifies the maps of the draft it receives.
type Draft struct {
	Step   int
	Phase  Phase
	Values map[Field]string
	Flags  map[Field]bool
	Files  map[Field]*models.Attachment
	Errors map[Field]string
	// Message is the banner of the last submission attempt.
	Message string
}

// Initial returns the empty draft for s: first step, every text field
// empty (or preset), every flag false, no files, no errors.
func Initial(s *Schema) Draft {
	d := Draft{
		Step:   1,
		Phase:  Editing,
		Values: map[Field]string{},
		Flags:  map[Field]bool{},
		Files:  map[Field]*models.Attachment{},
		Errors: map[Field]string{},
	}
	for f, spec := range s.Fields {
		switch spec.Kind {
		case KindText:
			d.Values[f] = s.Presets[f]
		case KindFlag:
			d.Flags[f] = false
		case KindFile:
			d.Files[f] = nil
		}
	}
	return d
}

// Value returns the current content of f.
func (d Draft) Value(f Field) Value {
	return Value{Text: d.Values[f], Flag: d.Flags[f], File: d.Files[f]}
}

// Error returns the message recorded for f, if any.
func (d Draft) Error(f Field) string { return d.Errors[f] }

// HasErrors reports whether any field or general error is recorded.
func (d Draft) HasErrors() bool { return len(d.Errors) > 0 }

// Clone returns a draft with copied maps. Attachments are shared.
func (d Draft) Clone() Draft {
	d.Values = maps.Clone(d.Values)
	d.Flags = maps.Clone(d.Flags)
	d.Files = maps.Clone(d.Files)
	d.Errors = maps.Clone(d.Errors)
	return d
}
