package session

import "shutterdesk/models"

// Action is an operation an operator may take on a session in its current
// lifecycle state.
type Action string

const (
	ActionApprove       Action = "approve"        // -> booked
	ActionSendQuote     Action = "send-quote"     // -> quoted
	ActionEdit          Action = "edit"
	ActionView          Action = "view"
	ActionPrintQuote    Action = "print-quote"
	ActionPrintOrder    Action = "print-order"
	ActionPrintInvoice  Action = "print-invoice"
	ActionEmail         Action = "email"
	ActionGenerateShoot Action = "generate-shoot" // creates a portfolio record
	ActionCreateInvoice Action = "create-invoice" // -> invoiced via the invoicing service
)

// transitions is the exhaustive status reachability table. Nothing moves
// backward and invoiced is terminal.
var transitions = map[models.SessionStatus][]models.SessionStatus{
	models.StatusPending:  {models.StatusQuoted, models.StatusBooked},
	models.StatusQuoted:   {models.StatusBooked},
	models.StatusBooked:   {models.StatusInvoiced},
	models.StatusInvoiced: {},
}

// statusActions lists the actions presented to an operator per state.
// Invoiced sessions deliberately omit edit; they are immutable to the
// operator.
var statusActions = map[models.SessionStatus][]Action{
	models.StatusPending: {ActionApprove, ActionSendQuote, ActionEdit, ActionView, ActionPrintQuote, ActionEmail},
	models.StatusQuoted:  {ActionApprove, ActionEdit, ActionView, ActionPrintQuote, ActionEmail},
	models.StatusBooked:  {ActionGenerateShoot, ActionCreateInvoice, ActionEdit, ActionView, ActionPrintQuote, ActionPrintOrder, ActionEmail},
	models.StatusInvoiced: {ActionView, ActionPrintInvoice, ActionEmail},
}

// CanTransition reports whether target is reachable from current in one step.
func CanTransition(current, target models.SessionStatus) bool {
	for _, next := range transitions[current] {
		if next == target {
			return true
		}
	}
	return false
}

// Transition validates a requested status change against the reachability
// table and returns a change request for the caller to apply. It performs no
// persistence itself.
func Transition(sess models.Session, target models.SessionStatus) (*models.StatusChange, error) {
	if sess.ID == "" || !sess.Status.Valid() {
		return nil, ErrInvalidSession
	}
	if !CanTransition(sess.Status, target) {
		return nil, &IllegalTransitionError{From: sess.Status, To: target}
	}
	return &models.StatusChange{
		SessionID: sess.ID,
		From:      sess.Status,
		To:        target,
	}, nil
}

// ActionsFor returns the actions legal in the given state, in presentation
// order. The returned slice is a copy.
func ActionsFor(status models.SessionStatus) []Action {
	actions := statusActions[status]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}
