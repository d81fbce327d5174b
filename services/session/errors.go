package session

import (
	"errors"
	"fmt"

	"shutterdesk/models"
)

// ErrNoPriceAvailable signals that no meaningful total can be computed for a
// session. It is distinct from a $0 price: zero means "nothing is computable
// yet" in this domain, never a real amount.
var ErrNoPriceAvailable = errors.New("no price available")

// ErrInvalidSession signals a malformed or missing session record. The
// operation is aborted and nothing is produced.
var ErrInvalidSession = errors.New("invalid session record")

// IllegalTransitionError is returned when a requested status change is not
// reachable from the session's current status. No partial mutation occurs.
type IllegalTransitionError struct {
	From models.SessionStatus
	To   models.SessionStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition from %q to %q", e.From, e.To)
}

// ActionNotAllowedError is returned when a side-effect command is invoked in
// a lifecycle state that does not offer it.
type ActionNotAllowedError struct {
	Action Action
	Status models.SessionStatus
}

func (e *ActionNotAllowedError) Error() string {
	return fmt.Sprintf("action %q is not available in status %q", e.Action, e.Status)
}

// ExternalOperationError wraps a failure from an external collaborator
// (store, portfolio, invoicing, mailer). It carries the attempted command so
// the caller can retry or report; the core performs no retries and leaves
// local state untouched.
type ExternalOperationError struct {
	Command string
	Err     error
}

func (e *ExternalOperationError) Error() string {
	return fmt.Sprintf("external operation %q failed: %v", e.Command, e.Err)
}

func (e *ExternalOperationError) Unwrap() error {
	return e.Err
}
