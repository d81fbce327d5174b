package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"shutterdesk/models"
)

type fakeSessionRepo struct {
	sessions     map[string]models.Session
	statusWrites []models.StatusChange
	failStatus   bool
}

func newFakeSessionRepo(sessions ...models.Session) *fakeSessionRepo {
	repo := &fakeSessionRepo{sessions: map[string]models.Session{}}
	for _, sess := range sessions {
		repo.sessions[sess.ID] = sess
	}
	return repo
}

func (r *fakeSessionRepo) Create(ctx context.Context, sess models.Session) (string, error) {
	if sess.ID == "" {
		sess.ID = "generated"
	}
	if sess.Status == "" {
		sess.Status = models.StatusPending
	}
	r.sessions[sess.ID] = sess
	return sess.ID, nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	sess, ok := r.sessions[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &sess, nil
}

func (r *fakeSessionRepo) List(ctx context.Context) ([]models.Session, error) {
	var out []models.Session
	for _, sess := range r.sessions {
		out = append(out, sess)
	}
	return out, nil
}

func (r *fakeSessionRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, ok := r.sessions[id]; !ok {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *fakeSessionRepo) UpdateStatus(ctx context.Context, id string, status models.SessionStatus) error {
	if r.failStatus {
		return errors.New("store unavailable")
	}
	sess, ok := r.sessions[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	r.statusWrites = append(r.statusWrites, models.StatusChange{SessionID: id, From: sess.Status, To: status})
	sess.Status = status
	r.sessions[id] = sess
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) EnsureIndexes() error { return nil }

type fakeCatalogRepo struct {
	packages []models.Package
	addOns   []models.AddOn
}

func (r *fakeCatalogRepo) ListPackages(ctx context.Context) ([]models.Package, error) {
	return r.packages, nil
}

func (r *fakeCatalogRepo) ListAddOns(ctx context.Context) ([]models.AddOn, error) {
	return r.addOns, nil
}

func (r *fakeCatalogRepo) UpsertPackage(ctx context.Context, pkg models.Package) error { return nil }
func (r *fakeCatalogRepo) UpsertAddOn(ctx context.Context, addon models.AddOn) error   { return nil }
func (r *fakeCatalogRepo) EnsureIndexes() error                                        { return nil }

type fakePortfolio struct {
	requests []models.ShootRequest
	fail     bool
}

func (p *fakePortfolio) CreateShoot(ctx context.Context, req models.ShootRequest) (*models.Shoot, error) {
	if p.fail {
		return nil, errors.New("portfolio service down")
	}
	p.requests = append(p.requests, req)
	return &models.Shoot{ID: "shoot-1", SessionID: req.SessionID, Title: req.Title}, nil
}

func (p *fakePortfolio) ListShootsForSession(ctx context.Context, sessionID string) ([]models.Shoot, error) {
	return nil, nil
}

type fakeInvoicing struct {
	requests []models.InvoiceRequest
	fail     bool
}

func (i *fakeInvoicing) CreateInvoice(ctx context.Context, req models.InvoiceRequest) (*models.Invoice, error) {
	if i.fail {
		return nil, errors.New("invoicing service down")
	}
	i.requests = append(i.requests, req)
	return &models.Invoice{InvoiceID: "inv-1", SessionID: req.SessionID, Amount: req.Amount}, nil
}

func (i *fakeInvoicing) ListInvoicesForSession(ctx context.Context, sessionID string) ([]models.Invoice, error) {
	return nil, nil
}

type fakeNotification struct {
	payloads []models.EmailPayload
	fail     bool
}

func (n *fakeNotification) EnqueueClientEmail(ctx context.Context, payload models.EmailPayload) error {
	if n.fail {
		return errors.New("queue down")
	}
	n.payloads = append(n.payloads, payload)
	return nil
}

func newTestService(repo *fakeSessionRepo) (*DefaultSessionService, *fakePortfolio, *fakeInvoicing, *fakeNotification) {
	packages, addOns := testCatalog()
	pf := &fakePortfolio{}
	inv := &fakeInvoicing{}
	notif := &fakeNotification{}
	svc := &DefaultSessionService{
		Repo:         repo,
		Catalog:      &fakeCatalogRepo{packages: packages, addOns: addOns},
		Portfolio:    pf,
		Invoicing:    inv,
		Notification: notif,
	}
	return svc, pf, inv, notif
}

func bookedSession() models.Session {
	return models.Session{
		ID:          "s1",
		ClientName:  "Ada Byron",
		ClientEmail: "ada@example.com",
		SessionType: "engagement",
		Date:        "2026-05-10",
		Status:      models.StatusBooked,
		PackageID:   "premium",
		AddOnIDs:    models.IDList{"rush", "album"},
	}
}

func TestTransitionSession(t *testing.T) {
	ctx := context.Background()

	t.Run("legal transition persists", func(t *testing.T) {
		repo := newFakeSessionRepo(models.Session{ID: "s1", ClientName: "Ada", Status: models.StatusPending})
		svc, _, _, _ := newTestService(repo)

		sess, err := svc.TransitionSession(ctx, "s1", models.StatusQuoted)
		require.NoError(t, err)
		assert.Equal(t, models.StatusQuoted, sess.Status)
		require.Len(t, repo.statusWrites, 1)
		assert.Equal(t, models.StatusPending, repo.statusWrites[0].From)
	})

	t.Run("illegal transition persists nothing", func(t *testing.T) {
		repo := newFakeSessionRepo(models.Session{ID: "s1", ClientName: "Ada", Status: models.StatusInvoiced})
		svc, _, _, _ := newTestService(repo)

		_, err := svc.TransitionSession(ctx, "s1", models.StatusBooked)
		var illegal *IllegalTransitionError
		require.ErrorAs(t, err, &illegal)
		assert.Empty(t, repo.statusWrites)
		assert.Equal(t, models.StatusInvoiced, repo.sessions["s1"].Status)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc, _, _, _ := newTestService(newFakeSessionRepo())
		_, err := svc.TransitionSession(ctx, "ghost", models.StatusBooked)
		assert.ErrorIs(t, err, mongo.ErrNoDocuments)
	})
}

func TestGenerateShoot(t *testing.T) {
	ctx := context.Background()

	t.Run("builds a portfolio request from the session", func(t *testing.T) {
		repo := newFakeSessionRepo(bookedSession())
		svc, pf, _, _ := newTestService(repo)

		shoot, err := svc.GenerateShoot(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "shoot-1", shoot.ID)

		require.Len(t, pf.requests, 1)
		req := pf.requests[0]
		assert.Equal(t, "s1", req.SessionID)
		assert.Equal(t, "Engagement Session - Ada Byron", req.Title)
		assert.Equal(t, "engagement", req.Category)
		assert.Equal(t, []string{"ada@example.com"}, req.ClientEmails)
	})

	t.Run("not offered outside booked", func(t *testing.T) {
		sess := bookedSession()
		sess.Status = models.StatusPending
		svc, pf, _, _ := newTestService(newFakeSessionRepo(sess))

		_, err := svc.GenerateShoot(ctx, "s1")
		var notAllowed *ActionNotAllowedError
		require.ErrorAs(t, err, &notAllowed)
		assert.Empty(t, pf.requests)
	})

	t.Run("collaborator failure is wrapped and retryable", func(t *testing.T) {
		repo := newFakeSessionRepo(bookedSession())
		svc, pf, _, _ := newTestService(repo)
		pf.fail = true

		_, err := svc.GenerateShoot(ctx, "s1")
		var external *ExternalOperationError
		require.ErrorAs(t, err, &external)
		assert.Equal(t, "generate-shoot", external.Command)

		pf.fail = false
		_, err = svc.GenerateShoot(ctx, "s1")
		assert.NoError(t, err)
	})
}

func TestCreateInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("success drives status to invoiced", func(t *testing.T) {
		repo := newFakeSessionRepo(bookedSession())
		svc, _, inv, _ := newTestService(repo)

		invoice, err := svc.CreateInvoice(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, 1200.0, invoice.Amount)

		require.Len(t, inv.requests, 1)
		assert.Len(t, inv.requests[0].LineItems, 3)
		assert.Equal(t, "open", inv.requests[0].Status)
		assert.Equal(t, models.StatusInvoiced, repo.sessions["s1"].Status)
	})

	t.Run("collaborator failure leaves status untouched", func(t *testing.T) {
		repo := newFakeSessionRepo(bookedSession())
		svc, _, inv, _ := newTestService(repo)
		inv.fail = true

		_, err := svc.CreateInvoice(ctx, "s1")
		var external *ExternalOperationError
		require.ErrorAs(t, err, &external)
		assert.Equal(t, "create-invoice", external.Command)
		assert.Equal(t, models.StatusBooked, repo.sessions["s1"].Status)

		// Re-attempt succeeds once the collaborator recovers.
		inv.fail = false
		_, err = svc.CreateInvoice(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusInvoiced, repo.sessions["s1"].Status)
	})

	t.Run("no computable price aborts the command", func(t *testing.T) {
		sess := bookedSession()
		sess.PackageID = "deleted"
		sess.AddOnIDs = nil
		svc, _, inv, _ := newTestService(newFakeSessionRepo(sess))

		_, err := svc.CreateInvoice(ctx, "s1")
		assert.ErrorIs(t, err, ErrNoPriceAvailable)
		assert.Empty(t, inv.requests)
	})

	t.Run("not offered outside booked", func(t *testing.T) {
		sess := bookedSession()
		sess.Status = models.StatusQuoted
		svc, _, _, _ := newTestService(newFakeSessionRepo(sess))

		_, err := svc.CreateInvoice(ctx, "s1")
		var notAllowed *ActionNotAllowedError
		assert.ErrorAs(t, err, &notAllowed)
	})
}

func TestEmailClient(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches the document for the current state", func(t *testing.T) {
		repo := newFakeSessionRepo(bookedSession())
		svc, _, _, notif := newTestService(repo)

		require.NoError(t, svc.EmailClient(ctx, "s1", "see attached"))
		require.Len(t, notif.payloads, 1)
		payload := notif.payloads[0]
		assert.Equal(t, "ada@example.com", payload.To)
		require.NotNil(t, payload.Document)
		assert.Equal(t, models.DocumentOrder, payload.Document.Kind)
		assert.Equal(t, "see attached", payload.Body)
	})

	t.Run("invoiced sessions email the invoice", func(t *testing.T) {
		sess := bookedSession()
		sess.Status = models.StatusInvoiced
		svc, _, _, notif := newTestService(newFakeSessionRepo(sess))

		require.NoError(t, svc.EmailClient(ctx, "s1", ""))
		assert.Equal(t, models.DocumentInvoice, notif.payloads[0].Document.Kind)
	})

	t.Run("queue failure is wrapped", func(t *testing.T) {
		svc, _, _, notif := newTestService(newFakeSessionRepo(bookedSession()))
		notif.fail = true

		err := svc.EmailClient(ctx, "s1", "")
		var external *ExternalOperationError
		require.ErrorAs(t, err, &external)
		assert.Equal(t, "email", external.Command)
	})
}

func TestSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("computed total and legal actions", func(t *testing.T) {
		svc, _, _, _ := newTestService(newFakeSessionRepo(bookedSession()))

		summary, err := svc.Summary(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, summary.PriceAvailable)
		assert.Equal(t, 1200.0, summary.Total)
		assert.Contains(t, summary.Actions, "create-invoice")
		assert.Contains(t, summary.Actions, "generate-shoot")
	})

	t.Run("price unknown is not zero", func(t *testing.T) {
		sess := bookedSession()
		sess.PackageID = ""
		sess.AddOnIDs = nil
		svc, _, _, _ := newTestService(newFakeSessionRepo(sess))

		summary, err := svc.Summary(ctx, "s1")
		require.NoError(t, err)
		assert.False(t, summary.PriceAvailable)
		assert.Equal(t, 0.0, summary.Total)
	})
}

func TestListSessionsSnapshot(t *testing.T) {
	repo := newFakeSessionRepo(
		models.Session{ID: "101", ClientName: "Ada", SessionType: "engagement", Date: "2026-05-10", Status: models.StatusPending},
		models.Session{ID: "102", ClientName: "Grace", SessionType: "motorcycle", Date: "2026-03-02", Status: models.StatusBooked},
	)
	svc, _, _, _ := newTestService(repo)

	snap, err := svc.ListSessions(context.Background(), "", FilterOptions{}, SortByDate, SortAsc)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.SnapshotID)
	require.Len(t, snap.Rows, 2)
	assert.Equal(t, displayNumberBase, snap.Rows[0].DisplayNo)
	assert.Equal(t, "102", snap.Rows[0].SessionID)
}
