package form

import (
	"errors"
	"fmt"
	"sync"

	apperrors "go-writing-services/internal/errors"
)

// State is the phase a form is in
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
)

// Status records how the last submission of an idle form ended
type Status string

const (
	StatusNone      Status = ""
	StatusInvalid   Status = "invalid"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

var (
	// ErrBusy is returned when a submission starts while another one of the
	// same form is still running.
	ErrBusy = apperrors.NewConflictError("a submission for this form is already in progress", nil)

	// ErrIllegalTransition is wrapped by every transition the machine refuses.
	ErrIllegalTransition = errors.New("illegal form transition")
)

// Machine tracks one form. The zero value is not usable; use NewMachine.
//
//	Idle -> Validating -> Idle(invalid)
//	Idle -> Validating -> Submitting -> Idle(succeeded | failed)
type Machine struct {
	mu     sync.Mutex
	state  State
	status Status
}

func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

// Snapshot returns the current state and the last status.
func (m *Machine) Snapshot() (State, Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.status
}

// Loading reports whether a request is in flight.
func (m *Machine) Loading() bool {
	s, _ := m.Snapshot()
	return s == StateSubmitting
}

// Begin moves an idle form into validation. Any other state means a
// submission is already underway and yields ErrBusy.
func (m *Machine) Begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateIdle {
		return ErrBusy
	}
	m.state = StateValidating
	return nil
}

// Reject ends validation with field errors.
func (m *Machine) Reject() error {
	return m.transition(StateValidating, StateIdle, StatusInvalid)
}

// Submit hands a validated request to the backend.
func (m *Machine) Submit() error {
	return m.transition(StateValidating, StateSubmitting, StatusNone)
}

// Succeed records a stored result.
func (m *Machine) Succeed() error {
	return m.transition(StateSubmitting, StateIdle, StatusSucceeded)
}

// Fail records a failed backend call.
func (m *Machine) Fail() error {
	return m.transition(StateSubmitting, StateIdle, StatusFailed)
}

func (m *Machine) transition(from, to State, status Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != from {
		return fmt.Errorf("%w: %s -> %s (current %s)", ErrIllegalTransition, from, to, m.state)
	}
	m.state = to
	if to == StateIdle {
		m.status = status
	}
	return nil
}
