package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/form"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/dmitrijs2005/tradingprofessor/internal/common"
	"github.com/dmitrijs2005/tradingprofessor/internal/filex"
)

// Interactive input indirections, swapped in tests.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getYesNo      = GetYesNo
	getSecret     = GetSecret
	readDocument  = filex.ReadDocument
)

// Words accepted at any wizard prompt.
const (
	wordBack   = ":back"
	wordCancel = ":cancel"
)

type move int

const (
	moveNext move = iota
	moveBack
	moveCancel
)

func wizardWord(in string) (move, bool) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case wordBack:
		return moveBack, true
	case wordCancel:
		return moveCancel, true
	}
	return moveNext, false
}

// runWizard walks the user through every step of the form behind fc and
// submits it. Pressing Enter keeps the current value of a field.
func (a *App) runWizard(ctx context.Context, fc *form.Controller) error {
	s := fc.Schema()
	printlnFn(a.out, s.Title+" (type "+wordBack+" for the previous step, "+wordCancel+" to stop)")

	for {
		d := fc.Draft()
		step := s.Steps[d.Step-1]
		printlnFn(a.out, fmt.Sprintf("\nStep %d of %d: %s", d.Step, s.StepCount(), step.Title))

		mv, err := a.fillStep(fc, step)
		if err != nil {
			return err
		}

		switch mv {
		case moveCancel:
			fc.Reset()
			printlnFn(a.out, "Cancelled.")
			return nil
		case moveBack:
			if d.Step == 1 {
				printlnFn(a.out, "Already at the first step.")
			}
			fc.Retreat()
			continue
		}

		if d.Step < s.StepCount() {
			if next, ok := fc.Advance(); !ok {
				a.printErrors(s, next)
			}
			continue
		}

		done, err := a.submitForm(ctx, fc)
		if done || err != nil {
			return err
		}
	}
}

// submitForm reports done once the form was accepted or the user gave up.
func (a *App) submitForm(ctx context.Context, fc *form.Controller) (bool, error) {
	printlnFn(a.out, "Submitting...")
	d, err := a.submit.Submit(ctx, fc)

	switch {
	case err == nil:
		printlnFn(a.out, d.Message)
		return true, nil

	case errors.Is(err, common.ErrValidation):
		a.printErrors(fc.Schema(), d)
		return false, nil

	case errors.Is(err, common.ErrSubmitInProgress), errors.Is(err, common.ErrAlreadySubmitted):
		return true, err
	}

	a.printErrors(fc.Schema(), d)
	retry, rerr := getYesNo(a.reader, "Edit and try again?", a.out)
	if rerr != nil || !retry {
		return true, err
	}
	return false, nil
}

func (a *App) fillStep(fc *form.Controller, step form.Step) (move, error) {
	for _, f := range step.Fields {
		mv, err := a.fillField(fc, f)
		if err != nil || mv != moveNext {
			return mv, err
		}
	}
	return moveNext, nil
}

func (a *App) fillField(fc *form.Controller, f form.Field) (move, error) {
	spec := fc.Schema().Fields[f]
	d := fc.Draft()

	prompt := spec.Label
	if e := d.Error(f); e != "" {
		prompt += " (" + e + ")"
	}

	switch spec.Kind {
	case form.KindFlag:
		cur := "n"
		if d.Flags[f] {
			cur = "y"
		}
		in, err := getSimpleText(a.reader, prompt+" (y/n) ["+cur+"]", a.out)
		if err != nil {
			return moveNext, err
		}
		if mv, ok := wizardWord(in); ok {
			return mv, nil
		}
		switch strings.ToLower(in) {
		case "y", "yes":
			fc.SetFlag(f, true)
		case "n", "no":
			fc.SetFlag(f, false)
		}
		return moveNext, nil

	case form.KindFile:
		return a.fillFile(fc, f, prompt)
	}

	if cur := d.Values[f]; cur != "" {
		prompt += " [" + cur + "]"
	}
	read := getSimpleText
	if spec.Multiline {
		read = getMultiline
	}
	in, err := read(a.reader, prompt, a.out)
	if err != nil {
		return moveNext, err
	}
	if mv, ok := wizardWord(in); ok {
		return mv, nil
	}
	if in != "" {
		fc.Update(f, in)
	}
	return moveNext, nil
}

// fillFile asks for a path until the picked file passes the field rule or
// the user keeps the current attachment with an empty line.
func (a *App) fillFile(fc *form.Controller, f form.Field, prompt string) (move, error) {
	if cur := fc.Draft().Files[f]; cur != nil {
		prompt += " [" + cur.Name + "]"
	}
	for {
		in, err := getSimpleText(a.reader, prompt+"\nPath to file:", a.out)
		if err != nil {
			return moveNext, err
		}
		if mv, ok := wizardWord(in); ok {
			return mv, nil
		}
		if in == "" {
			return moveNext, nil
		}

		name, ct, data, err := readDocument(in)
		if err != nil {
			printlnFn(a.out, "Cannot read file:", err)
			continue
		}
		d := fc.Attach(f, &models.Attachment{Name: name, ContentType: ct, Data: data})
		if e := d.Error(f); e != "" {
			printlnFn(a.out, e)
			continue
		}
		return moveNext, nil
	}
}

// printErrors shows the banner and the field errors in form order.
func (a *App) printErrors(s *form.Schema, d form.Draft) {
	if d.Message != "" {
		printlnFn(a.out, d.Message)
	}
	for _, f := range s.FieldOrder() {
		if e := d.Error(f); e != "" {
			printlnFn(a.out, "  - "+s.Fields[f].Label+": "+e)
		}
	}
	if g := d.Error(form.General); g != "" && g != d.Message {
		printlnFn(a.out, "  - "+g)
	}
}
