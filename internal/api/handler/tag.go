package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/recipebox/internal/api/auth"
	"github.com/recipebox/recipebox/internal/api/models"
)

// ListTags returns the user's tags ordered by name. With assigned_only=1
// only tags attached to at least one of the user's recipes are returned.
func (h *Handler) ListTags(c *gin.Context) {
	user := auth.CurrentUser(c)
	assignedOnly := c.Query("assigned_only") == "1"

	tags, err := h.db.GetTags(c.Request.Context(), user.ID, assignedOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tags"})
		return
	}

	c.JSON(http.StatusOK, models.ToTagResponses(tags))
}

// CreateTag creates a tag owned by the user.
func (h *Handler) CreateTag(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req models.CreateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	tag, err := h.db.CreateTag(c.Request.Context(), user.ID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tag"})
		return
	}

	c.JSON(http.StatusCreated, models.ToTagResponse(*tag))
}
