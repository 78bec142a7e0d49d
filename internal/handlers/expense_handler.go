package handlers

import (
	"context"
	"net/http"

	"github.com/IsPeeves/lumenixorg/internal/repository"
	"github.com/IsPeeves/lumenixorg/internal/validation"
	"github.com/IsPeeves/lumenixorg/models"

	"github.com/gin-gonic/gin"
)

// ExpenseStore is the slice of the expense repository the handler needs.
type ExpenseStore interface {
	List(ctx context.Context, opt repository.ListOptions) ([]models.Expense, int64, error)
	GetByID(ctx context.Context, id uint) (models.Expense, error)
	Create(ctx context.Context, e models.Expense) (models.Expense, error)
	Update(ctx context.Context, id uint, updates map[string]any) (models.Expense, error)
	Delete(ctx context.Context, id uint) error
}

type ExpenseHandler struct {
	repo ExpenseStore
}

func NewExpenseHandler(repo ExpenseStore) *ExpenseHandler {
	return &ExpenseHandler{repo: repo}
}

func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, total, err := h.repo.List(c.Request.Context(), listOptions(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if c.Query("page") == "" {
		c.JSON(http.StatusOK, expenses)
		return
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, expenses, total))
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "expense")
	if !ok {
		return
	}
	expense, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var in validation.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	expense, err := validation.NewExpense(in)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.repo.Create(c.Request.Context(), expense)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "expense")
	if !ok {
		return
	}

	var in validation.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updates, err := validation.ExpenseUpdate(in)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "expense")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted successfully", "id": id})
}
