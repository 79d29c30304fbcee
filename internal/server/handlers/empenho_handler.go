package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/cmpinhao/empenho-api/internal/domain/models"
	"github.com/cmpinhao/empenho-api/internal/repository/mongodb"
)

// EmpenhoHandler handles the CRUD HTTP surface for empenho records.
type EmpenhoHandler struct {
	repo   mongodb.Repository
	logger *zap.Logger
}

// NewEmpenhoHandler constructs the HTTP handler adapter.
func NewEmpenhoHandler(repo mongodb.Repository, logger *zap.Logger) *EmpenhoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmpenhoHandler{repo: repo, logger: logger}
}

// Create stores a new empenho and returns it with its assigned identifier.
func (h *EmpenhoHandler) Create(c *gin.Context) {
	var empenho models.Empenho
	if err := c.ShouldBindJSON(&empenho); err != nil {
		h.logger.Warn("invalid empenho payload", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, bindErrorBody(err))
		return
	}

	created, err := h.repo.Create(c.Request.Context(), empenho)
	if err != nil {
		h.logger.Error("failed creating empenho", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create empenho"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List returns the stored empenhos wrapped in a collection object.
func (h *EmpenhoHandler) List(c *gin.Context) {
	empenhos, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing empenhos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list empenhos"})
		return
	}

	c.JSON(http.StatusOK, models.EmpenhoCollection{Empenhos: empenhos})
}

// Show returns a single empenho by its identifier.
func (h *EmpenhoHandler) Show(c *gin.Context) {
	id, ok := h.objectID(c)
	if !ok {
		return
	}

	empenho, err := h.repo.Get(c.Request.Context(), id)
	if errors.Is(err, mongodb.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.logger.Error("failed loading empenho", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load empenho"})
		return
	}

	c.JSON(http.StatusOK, empenho)
}

// Update applies a partial update and returns the resulting document.
func (h *EmpenhoHandler) Update(c *gin.Context) {
	id, ok := h.objectID(c)
	if !ok {
		return
	}

	var update models.EmpenhoUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.logger.Warn("invalid empenho update payload", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, bindErrorBody(err))
		return
	}

	empenho, err := h.repo.Update(c.Request.Context(), id, update)
	if errors.Is(err, mongodb.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.logger.Error("failed updating empenho", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update empenho"})
		return
	}

	c.JSON(http.StatusOK, empenho)
}

// Delete removes an empenho by its identifier.
func (h *EmpenhoHandler) Delete(c *gin.Context) {
	id, ok := h.objectID(c)
	if !ok {
		return
	}

	err := h.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, mongodb.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.logger.Error("failed deleting empenho", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete empenho"})
		return
	}

	c.Status(http.StatusNoContent)
}

// objectID parses the id path parameter, answering 400 when it is not a
// valid ObjectID hex string.
func (h *EmpenhoHandler) objectID(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.Param("id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		h.logger.Warn("invalid empenho id", zap.String("id", raw), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid empenho id %q", raw)})
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *EmpenhoHandler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Empenho %s not found", c.Param("id"))})
}
