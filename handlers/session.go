package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"shutterdesk/models"
	"shutterdesk/services/session"
	"shutterdesk/utils"
)

// SessionHandler exposes the booking workflow over HTTP.
type SessionHandler struct {
	Service session.SessionService
	Logger  *zap.Logger
}

func NewSessionHandler(svc session.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{Service: svc, Logger: logger}
}

// ListSessions runs the query pipeline (search, filter, sort) and responds
// with a snapshot of presentation rows. Display numbers are valid only
// within the returned snapshot.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	opts := session.FilterOptions{
		Status:      c.Query("status"),
		SessionType: c.Query("type"),
		DateFrom:    c.Query("from"),
		DateTo:      c.Query("to"),
	}
	key := session.SortKey(c.DefaultQuery("sort", string(session.SortByDate)))
	dir := session.SortDirection(c.DefaultQuery("dir", string(session.SortAsc)))

	snap, err := h.Service.ListSessions(c.Request.Context(), c.Query("q"), opts, key, dir)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GetSnapshot re-reads a previously rendered listing snapshot.
func (h *SessionHandler) GetSnapshot(c *gin.Context) {
	snap, err := h.Service.GetSnapshot(c.Request.Context(), c.Param("snapshotID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "snapshot not found or expired", err.Error())
		return
	}
	c.JSON(http.StatusOK, snap)
}

// CreateSession stores a new session record.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var sess models.Session
	if err := c.ShouldBindJSON(&sess); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := h.Service.CreateSession(c.Request.Context(), sess)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetSession returns a session by its real identifier.
func (h *SessionHandler) GetSession(c *gin.Context) {
	sess, err := h.Service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// UpdateSession applies a partial field update. Status cannot be changed
// through this endpoint; transitions go through the state machine.
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sess, err := h.Service.UpdateSession(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// DeleteSession removes a session.
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.Service.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// GetSummary returns the computed total (when available) and the legal
// actions for a selected session.
func (h *SessionHandler) GetSummary(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// TransitionSession moves a session to a new lifecycle status.
func (h *SessionHandler) TransitionSession(c *gin.Context) {
	var input struct {
		Target models.SessionStatus `json:"target" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sess, err := h.Service.TransitionSession(c.Request.Context(), c.Param("id"), input.Target)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// GenerateShoot creates a portfolio shoot record from a booked session.
func (h *SessionHandler) GenerateShoot(c *gin.Context) {
	shoot, err := h.Service.GenerateShoot(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shoot)
}

// CreateInvoice invoices a booked session and drives it to invoiced.
func (h *SessionHandler) CreateInvoice(c *gin.Context) {
	inv, err := h.Service.CreateInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// EmailClient queues an email to the session's client with the document
// matching its current state.
func (h *SessionHandler) EmailClient(c *gin.Context) {
	var input struct {
		Note string `json:"note"`
	}
	// The body is optional; a bare POST sends the document with no note.
	_ = c.ShouldBindJSON(&input)

	if err := h.Service.EmailClient(c.Request.Context(), c.Param("id"), input.Note); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": true})
}

// GetDocument generates a printable document (quote, order or invoice).
func (h *SessionHandler) GetDocument(c *gin.Context) {
	kind := models.DocumentKind(c.Param("kind"))
	if !kind.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "unknown document kind", string(kind))
		return
	}
	doc, err := h.Service.BuildDocument(c.Request.Context(), c.Param("id"), kind)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// respondError maps the service error taxonomy onto HTTP statuses.
func (h *SessionHandler) respondError(c *gin.Context, err error) {
	var illegal *session.IllegalTransitionError
	var notAllowed *session.ActionNotAllowedError
	var external *session.ExternalOperationError

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
	case errors.As(err, &illegal):
		utils.JSONError(c, http.StatusConflict, "illegal transition", err.Error())
	case errors.As(err, &notAllowed):
		utils.JSONError(c, http.StatusConflict, "action not available", err.Error())
	case errors.Is(err, session.ErrInvalidSession):
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid session", err.Error())
	case errors.Is(err, session.ErrNoPriceAvailable):
		utils.JSONError(c, http.StatusUnprocessableEntity, "price unknown", err.Error())
	case errors.As(err, &external):
		utils.JSONError(c, http.StatusBadGateway, "external operation failed", err.Error())
	default:
		h.Logger.Error("session handler failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
