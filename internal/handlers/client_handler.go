package handlers

import (
	"context"
	"net/http"

	"github.com/IsPeeves/lumenixorg/internal/repository"
	"github.com/IsPeeves/lumenixorg/internal/validation"
	"github.com/IsPeeves/lumenixorg/models"

	"github.com/gin-gonic/gin"
)

// ClientStore is the slice of the client repository the handler needs.
type ClientStore interface {
	List(ctx context.Context, opt repository.ListOptions) ([]models.Client, int64, error)
	GetByID(ctx context.Context, id uint) (models.Client, error)
	Create(ctx context.Context, c models.Client) (models.Client, error)
	Update(ctx context.Context, id uint, updates map[string]any) (models.Client, error)
	Delete(ctx context.Context, id uint) error
}

type ClientHandler struct {
	repo ClientStore
}

func NewClientHandler(repo ClientStore) *ClientHandler {
	return &ClientHandler{repo: repo}
}

// List returns clients newest-first. Without a page parameter the full
// collection comes back as a plain array (the session cache contract); with
// one, a paginated envelope.
func (h *ClientHandler) List(c *gin.Context) {
	clients, total, err := h.repo.List(c.Request.Context(), listOptions(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if c.Query("page") == "" {
		c.JSON(http.StatusOK, clients)
		return
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, clients, total))
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "client")
	if !ok {
		return
	}
	client, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var in validation.ClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	client, err := validation.NewClient(in)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.repo.Create(c.Request.Context(), client)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "client")
	if !ok {
		return
	}

	var in validation.ClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updates, err := validation.ClientUpdate(in)
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

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "client")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted successfully", "id": id})
}
