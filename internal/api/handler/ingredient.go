package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/recipebox/internal/api/auth"
	"github.com/recipebox/recipebox/internal/api/models"
)

// ListIngredients returns the user's ingredients ordered by name, with the
// same assigned_only filter as tags.
func (h *Handler) ListIngredients(c *gin.Context) {
	user := auth.CurrentUser(c)
	assignedOnly := c.Query("assigned_only") == "1"

	ingredients, err := h.db.GetIngredients(c.Request.Context(), user.ID, assignedOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ingredients"})
		return
	}

	c.JSON(http.StatusOK, models.ToIngredientResponses(ingredients))
}

// CreateIngredient creates an ingredient owned by the user.
func (h *Handler) CreateIngredient(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req models.CreateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	ingredient, err := h.db.CreateIngredient(c.Request.Context(), user.ID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create ingredient"})
		return
	}

	c.JSON(http.StatusCreated, models.ToIngredientResponse(*ingredient))
}
