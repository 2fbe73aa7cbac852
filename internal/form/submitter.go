// Package form runs the submit lifecycle shared by every service form:
// validate, send exactly one request, then keep or drop the result.
package form

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-writing-services/internal/backend"
	"go-writing-services/internal/catalog"
	apperrors "go-writing-services/internal/errors"
	"go-writing-services/internal/observer"
	"go-writing-services/internal/textdiff"
	"go-writing-services/pkg/models"
	"go-writing-services/pkg/validation"
)

// NotificationLevel is the severity of a toast
type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
)

// Notification is the transient message shown after a submit
type Notification struct {
	Level   NotificationLevel
	Message string
}

// Outcome is what a single Submit produced
type Outcome struct {
	SubmissionID string
	State        State
	Status       Status
	FieldErrors  validation.FieldErrors
	Result       models.Result
	Changes      *models.Change
	Notification *Notification
	Mocked       bool
	Duration     time.Duration
	// Err is the backend error when Status is StatusFailed.
	Err error
}

// Submitter drives a Machine through one submission
type Submitter struct {
	backends  *backend.Selector
	publisher observer.Subject
	newID     func() string
	now       func() time.Time
}

// NewSubmitter creates a submitter. publisher may be nil.
func NewSubmitter(backends *backend.Selector, publisher observer.Subject) *Submitter {
	return &Submitter{
		backends:  backends,
		publisher: publisher,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Submit validates req and, when valid, sends it to the backend chosen for
// svc. The returned error is non-nil only when the machine refused to
// start (ErrBusy) or was driven illegally; backend failures are reported
// through Outcome.Status and Outcome.Err.
func (s *Submitter) Submit(ctx context.Context, m *Machine, svc *catalog.Service, req models.ServiceRequest) (*Outcome, error) {
	id := s.newID()
	event := observer.SubmissionEvent{SubmissionID: id, Service: svc.Slug}

	if err := m.Begin(); err != nil {
		event.EventType = observer.SubmissionRejected
		event.ErrorType = string(apperrors.ErrorTypeConflict)
		event.ErrorMessage = err.Error()
		s.publish(ctx, event)
		return nil, err
	}

	if fieldErrors := validation.ValidateRequest(req); len(fieldErrors) > 0 {
		if err := m.Reject(); err != nil {
			return nil, err
		}
		event.EventType = observer.SubmissionRejected
		event.ErrorType = string(apperrors.ErrorTypeValidation)
		event.ErrorMessage = fieldErrors.Error()
		s.publish(ctx, event)

		state, status := m.Snapshot()
		return &Outcome{SubmissionID: id, State: state, Status: status, FieldErrors: fieldErrors}, nil
	}

	req.Normalize()
	be := s.backends.For(svc.Slug)
	event.Lang = req.Language()
	event.Mocked = be.Mocked()

	if err := m.Submit(); err != nil {
		return nil, err
	}
	event.EventType = observer.SubmissionStarted
	s.publish(ctx, event)

	start := s.now()
	result, err := be.Submit(ctx, svc, req)
	duration := s.now().Sub(start)
	event.Duration = duration

	outcome := &Outcome{SubmissionID: id, Mocked: be.Mocked(), Duration: duration}

	if err != nil {
		if terr := m.Fail(); terr != nil {
			return nil, terr
		}
		if _, ok := apperrors.As(err); !ok {
			err = apperrors.NewInternalError("submission failed", err)
		}
		appErr, _ := apperrors.As(err)

		event.EventType = observer.SubmissionFailed
		event.ErrorType = string(appErr.Type)
		event.ErrorMessage = err.Error()
		s.publish(ctx, event)

		outcome.Err = err
		outcome.Notification = &Notification{Level: NotifyError, Message: svc.FailureMessage}
	} else {
		if terr := m.Succeed(); terr != nil {
			return nil, terr
		}
		event.EventType = observer.SubmissionCompleted
		s.publish(ctx, event)

		outcome.Result = result
		outcome.Changes = textdiff.Summarize(result)
		outcome.Notification = &Notification{Level: NotifySuccess, Message: svc.SuccessMessage}
	}

	outcome.State, outcome.Status = m.Snapshot()
	return outcome, nil
}

func (s *Submitter) publish(ctx context.Context, event observer.SubmissionEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = s.now().UTC()
	s.publisher.NotifyObservers(ctx, event)
}
