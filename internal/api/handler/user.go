package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/recipebox/recipebox/internal/api/auth"
	"github.com/recipebox/recipebox/internal/api/models"
	"github.com/recipebox/recipebox/internal/config"
	"github.com/recipebox/recipebox/internal/database"
)

// CreateUser registers a new account.
func (h *Handler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	if len(req.Password) < config.MinPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 5 characters"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	user, err := h.db.CreateUser(c.Request.Context(), &database.User{
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
		IsActive: true,
	})
	if err != nil {
		if errors.Is(err, database.ErrEmailRequired) || errors.Is(err, database.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, models.ToUserResponse(user))
}

// CreateToken exchanges valid credentials for a bearer token.
func (h *Handler) CreateToken(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.db.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil || !user.IsActive || !auth.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to authenticate with provided credentials"})
		return
	}

	token, err := h.tokens.IssueToken(user)
	if err != nil {
		log.Error("failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(c *gin.Context) {
	user := auth.CurrentUser(c)

	c.JSON(http.StatusOK, models.MeResponse{
		Email: user.Email,
		Name:  user.Name,
	})
}

// UpdateMe updates the authenticated user's name and/or password.
// A new password is re-hashed before storing.
func (h *Handler) UpdateMe(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req models.UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Password != nil {
		if len(*req.Password) < config.MinPasswordLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 5 characters"})
			return
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			log.Error("failed to hash password", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
			return
		}
		updates["password"] = hash
	}

	if len(updates) > 0 {
		if err := h.db.UpdateUser(c.Request.Context(), user, updates); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
			return
		}
	}

	c.JSON(http.StatusOK, models.MeResponse{
		Email: user.Email,
		Name:  user.Name,
	})
}
