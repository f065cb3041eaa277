package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/recipebox/recipebox/internal/api/auth"
	"github.com/recipebox/recipebox/internal/api/models"
	"github.com/recipebox/recipebox/internal/database"
	"github.com/recipebox/recipebox/internal/storage"
	"gorm.io/gorm"
)

// ListRecipes returns the user's recipes ordered by id. The tags and
// ingredients query parameters take comma-separated id lists; a recipe
// matches a list when it references at least one of the ids.
func (h *Handler) ListRecipes(c *gin.Context) {
	user := auth.CurrentUser(c)

	tagIDs, err := parseIDList(c.Query("tags"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tags filter"})
		return
	}
	ingredientIDs, err := parseIDList(c.Query("ingredients"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredients filter"})
		return
	}

	recipes, err := h.db.GetRecipes(c.Request.Context(), user.ID, tagIDs, ingredientIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}

	c.JSON(http.StatusOK, models.ToRecipeResponses(recipes))
}

// resolveTags loads the given tag ids within the user's scope. It writes a
// 400 response and returns false when any id doesn't resolve.
func (h *Handler) resolveTags(c *gin.Context, userID uint, ids []uint) ([]database.Tag, bool) {
	tags, err := h.db.GetTagsByIDs(c.Request.Context(), userID, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve tags"})
		return nil, false
	}
	if len(tags) != len(ids) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag ids"})
		return nil, false
	}
	return tags, true
}

func (h *Handler) resolveIngredients(c *gin.Context, userID uint, ids []uint) ([]database.Ingredient, bool) {
	ingredients, err := h.db.GetIngredientsByIDs(c.Request.Context(), userID, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve ingredients"})
		return nil, false
	}
	if len(ingredients) != len(ids) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient ids"})
		return nil, false
	}
	return ingredients, true
}

// CreateRecipe creates a recipe owned by the user, with optional tag and
// ingredient associations referencing the user's own entities.
func (h *Handler) CreateRecipe(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req models.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	tags, ok := h.resolveTags(c, user.ID, req.Tags)
	if !ok {
		return
	}
	ingredients, ok := h.resolveIngredients(c, user.ID, req.Ingredients)
	if !ok {
		return
	}

	recipe := database.Recipe{
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		UserID:      user.ID,
		Tags:        tags,
		Ingredients: ingredients,
	}
	if err := h.db.CreateRecipe(c.Request.Context(), &recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, models.ToRecipeResponse(recipe))
}

// GetRecipe returns the detail representation of one of the user's recipes.
func (h *Handler) GetRecipe(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := h.db.GetRecipe(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get recipe"})
		return
	}

	c.JSON(http.StatusOK, models.ToRecipeDetailResponse(*recipe))
}

// UpdateRecipe partially updates a recipe. Omitted fields stay unchanged;
// a supplied tags or ingredients list replaces the full association set.
func (h *Handler) UpdateRecipe(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := h.db.GetRecipe(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get recipe"})
		return
	}

	var req models.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updates := make(map[string]any)
	if req.Title != nil {
		if *req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title must not be empty"})
			return
		}
		updates["title"] = *req.Title
	}
	if req.TimeMinutes != nil {
		updates["time_minutes"] = *req.TimeMinutes
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}

	if err := h.db.UpdateRecipeFields(c.Request.Context(), recipe, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
		return
	}

	if req.Tags != nil {
		tags, ok := h.resolveTags(c, user.ID, *req.Tags)
		if !ok {
			return
		}
		if err := h.db.ReplaceRecipeTags(c.Request.Context(), recipe, tags); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
			return
		}
	}
	if req.Ingredients != nil {
		ingredients, ok := h.resolveIngredients(c, user.ID, *req.Ingredients)
		if !ok {
			return
		}
		if err := h.db.ReplaceRecipeIngredients(c.Request.Context(), recipe, ingredients); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
			return
		}
	}

	c.JSON(http.StatusOK, models.ToRecipeDetailResponse(*recipe))
}

// ReplaceRecipe fully updates a recipe. Tag and ingredient lists omitted
// from the payload clear the associations.
func (h *Handler) ReplaceRecipe(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := h.db.GetRecipe(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get recipe"})
		return
	}

	var req models.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	tags, ok := h.resolveTags(c, user.ID, req.Tags)
	if !ok {
		return
	}
	ingredients, ok := h.resolveIngredients(c, user.ID, req.Ingredients)
	if !ok {
		return
	}

	updates := map[string]any{
		"title":        req.Title,
		"time_minutes": req.TimeMinutes,
		"price":        req.Price,
		"link":         req.Link,
	}
	if err := h.db.UpdateRecipeFields(c.Request.Context(), recipe, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
		return
	}
	if err := h.db.ReplaceRecipeTags(c.Request.Context(), recipe, tags); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
		return
	}
	if err := h.db.ReplaceRecipeIngredients(c.Request.Context(), recipe, ingredients); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, models.ToRecipeDetailResponse(*recipe))
}

// DeleteRecipe removes one of the user's recipes.
func (h *Handler) DeleteRecipe(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.db.DeleteRecipe(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recipe"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage attaches a multipart image to a recipe. The file is stored
// under a generated name and the previous image, if any, is removed.
func (h *Handler) UploadImage(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := h.db.GetRecipe(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get recipe"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}
	defer file.Close() //nolint:errcheck

	name, err := h.images.Save(fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, storage.ErrNotAnImage) || errors.Is(err, storage.ErrTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	oldImage := recipe.ImagePath
	if err := h.db.SetRecipeImage(c.Request.Context(), recipe, name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	if err := h.images.Remove(oldImage); err != nil {
		log.Error("failed to remove previous image", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    recipe.ID,
		"image": "/media/" + name,
	})
}
