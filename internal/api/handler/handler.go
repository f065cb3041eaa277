package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/recipebox/internal/api/auth"
	"github.com/recipebox/recipebox/internal/database"
	"github.com/recipebox/recipebox/internal/storage"
)

// Handler bundles the dependencies shared by all endpoint handlers.
type Handler struct {
	db     *database.Client
	tokens *auth.Manager
	images *storage.ImageStore
}

func New(db *database.Client, tokens *auth.Manager, images *storage.ImageStore) *Handler {
	return &Handler{
		db:     db,
		tokens: tokens,
		images: images,
	}
}

// pathID parses the numeric :id route parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

// parseIDList parses a comma-separated id list query parameter.
func parseIDList(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
