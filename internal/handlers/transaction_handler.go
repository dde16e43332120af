package handlers

import (
	"context"
	"errors"
	"io"
	"iter"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/jeffleon2/ums-payment-service/internal/models/dto"
	"github.com/jeffleon2/ums-payment-service/internal/service"
	"github.com/sirupsen/logrus"
)

type TransactionService interface {
	CreateFromPendingPayment(ctx context.Context, payment *dto.PendingPayment) (*models.Transaction, bool, error)
	Get(ctx context.Context, id string) (*models.Transaction, error)
	ListByStatus(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	ListPending(ctx context.Context) iter.Seq2[models.Transaction, error]
	Approve(ctx context.Context, id string) (*models.Transaction, error)
	Reject(ctx context.Context, id string, reason string) (*models.Transaction, error)
	Settle(ctx context.Context, id string) (*models.Transaction, error)
}

type Reconciler interface {
	Sweep(ctx context.Context) (int, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

var (
	_ TransactionService = (*service.TransactionService)(nil)
	_ Reconciler         = (*service.Reconciler)(nil)
)

type TransactionHandler struct {
	Service    TransactionService
	Reconciler Reconciler
	Health     HealthChecker
}

func NewTransactionHandler(s TransactionService, r Reconciler, h HealthChecker) *TransactionHandler {
	return &TransactionHandler{Service: s, Reconciler: r, Health: h}
}

// POST /transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.PendingPayment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.MessageID) == "" {
		req.MessageID = uuid.New().String()
	}

	tx, created, err := h.Service.CreateFromPendingPayment(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, tx)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// GET /transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	tx, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// GET /transactions?status=&student_id=&limit=
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	filter := models.TransactionFilter{
		Status:    models.TransactionStatus(strings.ToUpper(c.Query("status"))),
		StudentID: c.Query("student_id"),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	filter.Limit = limit

	txs, err := h.Service.ListByStatus(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs, "count": len(txs)})
}

// GET /transactions/pending?limit=
func (h *TransactionHandler) ListPending(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	if limit == 0 {
		limit = service.DefaultListLimit
	}
	limit = min(limit, service.MaxListLimit)

	txs := []models.Transaction{}
	for tx, err := range h.Service.ListPending(c.Request.Context()) {
		if err != nil {
			writeError(c, err)
			return
		}
		txs = append(txs, tx)
		if len(txs) == limit {
			break
		}
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs, "count": len(txs)})
}

// POST /transactions/:id/approve
func (h *TransactionHandler) Approve(c *gin.Context) {
	tx, err := h.Service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// POST /transactions/:id/reject
func (h *TransactionHandler) Reject(c *gin.Context) {
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tx, err := h.Service.Reject(c.Request.Context(), c.Param("id"), strings.TrimSpace(req.Reason))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// POST /transactions/:id/settle
func (h *TransactionHandler) Settle(c *gin.Context) {
	tx, err := h.Service.Settle(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// POST /admin/reconcile
func (h *TransactionHandler) Reconcile(c *gin.Context) {
	n, err := h.Reconciler.Sweep(c.Request.Context())
	if err != nil {
		logrus.Errorf("Manual reconciliation finished with errors: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "republished": n})
		return
	}
	c.JSON(http.StatusOK, gin.H{"republished": n})
}

// GET /health
func (h *TransactionHandler) HealthCheck(c *gin.Context) {
	if err := h.Health.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseLimit reads the optional limit query parameter; 0 means unset. On bad
// input it writes the 400 response and reports false.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return 0, false
	}
	return limit, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlreadyTerminal), errors.Is(err, models.ErrConcurrentModification):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrMalformedEvent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.Errorf("Request failed: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
