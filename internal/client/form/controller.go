package form

import (
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/dmitrijs2005/tradingprofessor/internal/common"
)

// Controller owns the live draft of one form instance and serializes
// every transition through Reduce.
type Controller struct {
	mu     sync.Mutex
	schema *Schema
	draft  Draft
}

func NewController(s *Schema) *Controller {
	return &Controller{schema: s, draft: Initial(s)}
}

func (c *Controller) Schema() *Schema { return c.schema }

// Draft returns a snapshot that the caller may freely modify.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// Dispatch applies a and returns the resulting snapshot.
func (c *Controller) Dispatch(a Action) Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = Reduce(c.schema, c.draft, a)
	return c.draft.Clone()
}

func (c *Controller) Update(f Field, v string) Draft {
	return c.Dispatch(UpdateField{Field: f, Value: v})
}

func (c *Controller) SetFlag(f Field, v bool) Draft {
	return c.Dispatch(SetFlag{Field: f, Value: v})
}

func (c *Controller) Attach(f Field, a *models.Attachment) Draft {
	return c.Dispatch(AttachFile{Field: f, File: a})
}

// Advance validates the current step and moves forward if it is clean.
// The boolean reports whether the step passed validation.
func (c *Controller) Advance() (Draft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft.Phase != Editing {
		return c.draft.Clone(), false
	}
	from := c.draft.Step
	c.draft = Reduce(c.schema, c.draft, AdvanceStep{From: from})
	for _, f := range c.schema.Steps[from-1].Fields {
		if _, bad := c.draft.Errors[f]; bad {
			return c.draft.Clone(), false
		}
	}
	return c.draft.Clone(), true
}

// Begin moves an editing draft into Submitting. It is the in-flight lock of
// the submit action: a second caller gets common.ErrSubmitInProgress, and a
// submitted draft yields common.ErrAlreadySubmitted until it is reset.
func (c *Controller) Begin() (Draft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.draft.Phase {
	case Submitting:
		return c.draft.Clone(), common.ErrSubmitInProgress
	case Submitted:
		return c.draft.Clone(), common.ErrAlreadySubmitted
	}
	c.draft = Reduce(c.schema, c.draft, BeginSubmit{})
	return c.draft.Clone(), nil
}

func (c *Controller) Retreat() Draft { return c.Dispatch(RetreatStep{}) }

func (c *Controller) Reset() Draft { return c.Dispatch(Reset{}) }

// Payload renders a draft as multipart text fields and file parts. Text is
// trimmed and passed through the field's Wire conversion; flags become
// "true" or "false"; missing files are omitted.
func Payload(s *Schema, d Draft) (map[string]string, map[Field]*models.Attachment) {
	text := make(map[string]string, len(s.Fields))
	files := map[Field]*models.Attachment{}

	for f, spec := range s.Fields {
		switch spec.Kind {
		case KindText:
			v := strings.TrimSpace(d.Values[f])
			if spec.Wire != nil {
				v = spec.Wire(v)
			}
			text[string(f)] = v
		case KindFlag:
			text[string(f)] = strconv.FormatBool(d.Flags[f])
		case KindFile:
			if a := d.Files[f]; a != nil {
				files[f] = a
			}
		}
	}
	return text, files
}
