package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/IsPeeves/lumenixorg/internal/repository"
	"github.com/IsPeeves/lumenixorg/internal/validation"
	"github.com/IsPeeves/lumenixorg/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	portfolioCacheKey = "portfolio:projects"
	portfolioCacheTTL = 5 * time.Minute
)

// ProjectStore is the slice of the project repository the handler needs.
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id uint) (models.Project, error)
	Create(ctx context.Context, p models.Project) (models.Project, error)
	Update(ctx context.Context, id uint, updates map[string]any) (models.Project, error)
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, orders []repository.ProjectOrder) error
}

type ProjectHandler struct {
	repo ProjectStore
	rdb  *redis.Client
}

// NewProjectHandler builds the handler. rdb may be nil, which disables the
// portfolio listing cache.
func NewProjectHandler(repo ProjectStore, rdb *redis.Client) *ProjectHandler {
	return &ProjectHandler{repo: repo, rdb: rdb}
}

// List serves the portfolio, sorted by display order with newest-first
// tie-break. This is the public landing page's hot path, so the listing is
// cached in Redis and invalidated on every project mutation.
func (h *ProjectHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		cached, err := h.rdb.Get(ctx, portfolioCacheKey).Result()
		if err == nil {
			var projects []models.Project
			if json.Unmarshal([]byte(cached), &projects) == nil {
				c.JSON(http.StatusOK, projects)
				return
			}
			slog.Warn("failed to unmarshal cached portfolio", "data_len", len(cached))
		} else if err != redis.Nil {
			slog.Error("redis GET failed", "key", portfolioCacheKey, "error", err)
		}
	}

	projects, err := h.repo.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(projects); err == nil {
			if err := h.rdb.Set(ctx, portfolioCacheKey, data, portfolioCacheTTL).Err(); err != nil {
				slog.Error("failed to cache portfolio", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}
	project, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var in validation.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := validation.NewProject(in)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.repo.Create(c.Request.Context(), project)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	var in validation.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updates, err := validation.ProjectUpdate(in)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, updated)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "project")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "project deleted successfully", "id": id})
}

// Reorder re-assigns display order values in bulk and returns the refreshed
// listing so the admin panel can swap its collection in one step.
func (h *ProjectHandler) Reorder(c *gin.Context) {
	var in []validation.ProjectOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validation.ProjectReorder(in); err != nil {
		respondError(c, err)
		return
	}

	orders := make([]repository.ProjectOrder, len(in))
	for i, item := range in {
		orders[i] = repository.ProjectOrder{ID: item.ID, Order: item.Order}
	}

	if err := h.repo.Reorder(c.Request.Context(), orders); err != nil {
		respondError(c, err)
		return
	}
	h.invalidateCache(c.Request.Context())

	projects, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) invalidateCache(ctx context.Context) {
	if h.rdb == nil {
		return
	}
	if err := h.rdb.Del(ctx, portfolioCacheKey).Err(); err != nil {
		slog.Error("failed to invalidate portfolio cache", "error", err)
	}
}
