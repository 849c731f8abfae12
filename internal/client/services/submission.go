// Package services contains application services for the trading-professor
// client. This file defines the submission pipeline shared by the
// enrollment and copy-trading forms.
package services

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/client"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/form"
	"github.com/dmitrijs2005/tradingprofessor/internal/common"
	"github.com/dmitrijs2005/tradingprofessor/internal/logging"
)

// NetworkMessage is shown for any failure that never produced a usable response.
const NetworkMessage = "Network error. Please check your connection and try again."

// SubmissionService turns a locally valid draft into one multipart request
// and folds the outcome back into the form.
//
// Contract:
//   - Submit validates the whole draft first; nothing is sent while any
//     field is invalid.
//   - Exactly one request is issued per successful Begin on the controller,
//     so concurrent or repeated calls get common.ErrSubmitInProgress or
//     common.ErrAlreadySubmitted instead of a second request.
//   - On success the draft is reset and marked Submitted; on failure it
//     stays editable with field and general errors filled in.
type SubmissionService interface {
	Submit(ctx context.Context, fc *form.Controller) (form.Draft, error)
}

type submissionService struct {
	client client.Client
	log    logging.Logger
}

func NewSubmissionService(c client.Client, log logging.Logger) SubmissionService {
	if log == nil {
		log = logging.Nop()
	}
	return &submissionService{client: c, log: log}
}

func (s *submissionService) Submit(ctx context.Context, fc *form.Controller) (form.Draft, error) {
	schema := fc.Schema()
	log := s.log.With("form", schema.Name)

	switch d := fc.Draft(); d.Phase {
	case form.Submitting:
		return d, common.ErrSubmitInProgress
	case form.Submitted:
		return d, common.ErrAlreadySubmitted
	}

	d := fc.Dispatch(form.ValidateAll{})
	if d.HasErrors() {
		log.Debug(ctx, "submit blocked by validation", "fields", len(d.Errors))
		return d, fmt.Errorf("%w: %s", common.ErrValidation, form.FixErrorsMessage)
	}

	d, err := fc.Begin()
	if err != nil {
		return d, err
	}

	fields, attachments := form.Payload(schema, d)
	parts := make([]client.FilePart, 0, len(attachments))
	for _, f := range slices.Sorted(maps.Keys(attachments)) {
		parts = append(parts, client.FilePart{Field: string(f), Attachment: attachments[f]})
	}

	log.Info(ctx, "submitting form", "endpoint", schema.Endpoint, "files", len(parts))

	res, err := s.client.Submit(ctx, schema.Endpoint, fields, parts)
	if err != nil {
		failed := s.failure(schema, err)
		log.Warn(ctx, "submission failed", "error", err, "general", failed.Errors[form.General])
		return fc.Dispatch(failed), err
	}

	msg := res.Message
	if msg == "" {
		msg = schema.Title + " submitted successfully!"
	}
	log.Info(ctx, "submission accepted", "message", msg)
	return fc.Dispatch(form.SubmitSucceeded{Message: msg}), nil
}

// failure maps a client error onto the draft's error map.
func (s *submissionService) failure(schema *form.Schema, err error) form.SubmitFailed {
	var se *client.ServerError
	if !errors.As(err, &se) {
		return form.SubmitFailed{
			Errors:  map[form.Field]string{form.General: NetworkMessage},
			Message: NetworkMessage,
		}
	}

	errs := form.ServerErrors(schema, se.Errors)

	msg := se.Message
	if msg == "" {
		msg = schema.Title + " failed. Please try again."
	}

	duplicate := form.IsDuplicate(se.StatusCode, se.Message)
	for _, e := range errs {
		duplicate = duplicate || form.IsDuplicate(0, e)
	}

	switch {
	case duplicate:
		errs[form.General] = form.DuplicateMessage
		msg = form.DuplicateMessage
	case len(errs) == 0:
		errs[form.General] = msg
	}

	return form.SubmitFailed{Errors: errs, Message: msg}
}
