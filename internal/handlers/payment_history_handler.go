package handlers

import (
	"context"
	"net/http"

	"github.com/IsPeeves/lumenixorg/internal/validation"
	"github.com/IsPeeves/lumenixorg/models"

	"github.com/gin-gonic/gin"
)

// PaymentHistoryStore is the slice of the payment history repository the
// handler needs. There is deliberately no update or delete: history rows are
// immutable once written.
type PaymentHistoryStore interface {
	Create(ctx context.Context, p models.PaymentHistory) (models.PaymentHistory, error)
	ListByClient(ctx context.Context, clientID uint) ([]models.PaymentHistory, error)
}

type PaymentHistoryHandler struct {
	repo PaymentHistoryStore
}

func NewPaymentHistoryHandler(repo PaymentHistoryStore) *PaymentHistoryHandler {
	return &PaymentHistoryHandler{repo: repo}
}

// Create records a confirmed payment for a client.
func (h *PaymentHistoryHandler) Create(c *gin.Context) {
	var in validation.PaymentHistoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := validation.NewPaymentHistory(in)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.repo.Create(c.Request.Context(), payment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListByClient returns a client's payment history, most recent first.
func (h *PaymentHistoryHandler) ListByClient(c *gin.Context) {
	clientID, ok := parseID(c, "clientId", "client")
	if !ok {
		return
	}
	history, err := h.repo.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
