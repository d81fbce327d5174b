package session

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shutterdesk/models"
	"shutterdesk/utils"

	"go.uber.org/zap"
)

// TransitionSession validates and applies a status change. The state machine
// decides legality; the session store applies the change. Nothing is
// persisted when the transition is illegal.
func (s *DefaultSessionService) TransitionSession(ctx context.Context, id string, target models.SessionStatus) (*models.Session, error) {
	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	change, err := Transition(*sess, target)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(ctx, change.SessionID, change.To); err != nil {
		return nil, &ExternalOperationError{Command: "update-status", Err: err}
	}

	sess.Status = change.To
	return sess, nil
}

// GenerateShoot runs the generate-shoot command: it builds a portfolio
// request from the session and hands it to the portfolio service. The
// session's status does not change.
func (s *DefaultSessionService) GenerateShoot(ctx context.Context, id string) (*models.Shoot, error) {
	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actionAllowed(sess.Status, ActionGenerateShoot) {
		return nil, &ActionNotAllowedError{Action: ActionGenerateShoot, Status: sess.Status}
	}

	req := BuildShootRequest(*sess)
	shoot, err := s.Portfolio.CreateShoot(ctx, req)
	if err != nil {
		return nil, &ExternalOperationError{Command: string(ActionGenerateShoot), Err: err}
	}
	return shoot, nil
}

// CreateInvoice runs the create-invoice command: it computes the current
// total, hands an invoice request to the invoicing service and, only on the
// collaborator's success, drives the session to invoiced. A collaborator
// failure leaves the status untouched so the command can be re-attempted.
func (s *DefaultSessionService) CreateInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actionAllowed(sess.Status, ActionCreateInvoice) {
		return nil, &ActionNotAllowedError{Action: ActionCreateInvoice, Status: sess.Status}
	}

	packages, addOns, err := s.catalogSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	req, err := BuildInvoiceRequest(*sess, packages, addOns)
	if err != nil {
		return nil, err
	}

	inv, err := s.Invoicing.CreateInvoice(ctx, *req)
	if err != nil {
		return nil, &ExternalOperationError{Command: string(ActionCreateInvoice), Err: err}
	}

	if err := s.Repo.UpdateStatus(ctx, sess.ID, models.StatusInvoiced); err != nil {
		utils.GetLogger().Error("invoice created but status update failed",
			zap.String("sessionId", sess.ID),
			zap.String("invoiceId", inv.InvoiceID),
			zap.Error(err),
		)
		return nil, &ExternalOperationError{Command: "update-status", Err: err}
	}
	return inv, nil
}

// BuildDocument generates a printable document for a session against the
// current catalog snapshot.
func (s *DefaultSessionService) BuildDocument(ctx context.Context, id string, kind models.DocumentKind) (*models.Document, error) {
	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	packages, addOns, err := s.catalogSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return GenerateDocument(*sess, kind, packages, addOns)
}

// EmailClient queues an email to the session's client carrying the document
// that matches the current lifecycle state (invoice once invoiced, order
// confirmation when booked, quote otherwise).
func (s *DefaultSessionService) EmailClient(ctx context.Context, id string, note string) error {
	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	packages, addOns, err := s.catalogSnapshot(ctx)
	if err != nil {
		return err
	}

	kind := emailDocumentKind(sess.Status)
	doc, err := GenerateDocument(*sess, kind, packages, addOns)
	if err != nil {
		return err
	}

	payload := models.EmailPayload{
		SessionID: sess.ID,
		To:        sess.ClientEmail,
		Subject:   fmt.Sprintf("%s for your %s session", doc.Title, doc.SessionType),
		Body:      note,
		Document:  doc,
	}
	if err := s.Notification.EnqueueClientEmail(ctx, payload); err != nil {
		return &ExternalOperationError{Command: string(ActionEmail), Err: err}
	}
	return nil
}

// BuildShootRequest derives the portfolio command payload from a session.
func BuildShootRequest(sess models.Session) models.ShootRequest {
	view := BuildView(sess)
	title := cases.Title(language.English).String(view.SessionType)

	req := models.ShootRequest{
		SessionID:   view.ID,
		Title:       fmt.Sprintf("%s Session - %s", title, view.ClientName),
		Description: fmt.Sprintf("%s session for %s on %s", view.SessionType, view.ClientName, view.Date),
		Category:    view.SessionType,
		Date:        view.Date,
	}
	if strings.Contains(sess.ClientEmail, "@") {
		req.ClientEmails = []string{sess.ClientEmail}
	}
	return req
}

// BuildInvoiceRequest derives the invoicing command payload from a session
// and the current catalog. It fails with ErrNoPriceAvailable when no total
// is computable; an invoice with no amount is meaningless.
func BuildInvoiceRequest(sess models.Session, packages []models.Package, addOns []models.AddOn) (*models.InvoiceRequest, error) {
	total, err := ComputeTotal(sess, packages, addOns)
	if err != nil {
		return nil, err
	}
	items, _ := buildLineItems(sess, packages, addOns)
	view := BuildView(sess)

	return &models.InvoiceRequest{
		SessionID:   view.ID,
		ClientName:  view.ClientName,
		ClientEmail: sess.ClientEmail,
		Amount:      total,
		LineItems:   items,
		Status:      "open",
	}, nil
}

func actionAllowed(status models.SessionStatus, action Action) bool {
	for _, a := range statusActions[status] {
		if a == action {
			return true
		}
	}
	return false
}

// emailDocumentKind picks the document attached to a client email based on
// how far the session has progressed.
func emailDocumentKind(status models.SessionStatus) models.DocumentKind {
	switch status {
	case models.StatusInvoiced:
		return models.DocumentInvoice
	case models.StatusBooked:
		return models.DocumentOrder
	}
	return models.DocumentQuote
}
