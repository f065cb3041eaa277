package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/recipebox/recipebox/internal/api/auth"
	"github.com/recipebox/recipebox/internal/api/handler"
	"github.com/recipebox/recipebox/internal/config"
	"github.com/recipebox/recipebox/internal/database"
	"github.com/recipebox/recipebox/internal/storage"
)

// Server wires the gin engine, database and token manager together.
type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	httpSrv   *http.Server
	db        *database.Client
	tokens    *auth.Manager
	images    *storage.ImageStore
}

// New creates the API server and registers all routes.
func New(cfg *config.Config, db *database.Client) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	images, err := storage.NewImageStore(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create image store: %w", err)
	}

	ginEngine := gin.Default()
	ginEngine.HandleMethodNotAllowed = true

	s := &Server{
		cfg:       cfg,
		ginEngine: ginEngine,
		db:        db,
		tokens:    auth.New(cfg.Auth, db),
		images:    images,
	}
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))

	h := handler.New(s.db, s.tokens, s.images)

	// Stored recipe images
	s.ginEngine.Static("/media", s.images.Dir())

	user := s.ginEngine.Group("/user")
	user.POST("/create", h.CreateUser)
	user.POST("/token", h.CreateToken)

	me := user.Group("/me")
	me.Use(s.tokens.RequireAuth())
	me.GET("", h.Me)
	me.PATCH("", h.UpdateMe)

	recipe := s.ginEngine.Group("/recipe")
	recipe.Use(s.tokens.RequireAuth())
	recipe.GET("/tags", h.ListTags)
	recipe.POST("/tags", h.CreateTag)
	recipe.GET("/ingredients", h.ListIngredients)
	recipe.POST("/ingredients", h.CreateIngredient)
	recipe.GET("/recipes", h.ListRecipes)
	recipe.POST("/recipes", h.CreateRecipe)
	recipe.GET("/recipes/:id", h.GetRecipe)
	recipe.PATCH("/recipes/:id", h.UpdateRecipe)
	recipe.PUT("/recipes/:id", h.ReplaceRecipe)
	recipe.DELETE("/recipes/:id", h.DeleteRecipe)
	recipe.POST("/recipes/:id/upload-image", h.UploadImage)

	admin := s.ginEngine.Group("/admin")
	admin.Use(s.tokens.RequireAuth(), s.tokens.RequireStaff())
	admin.GET("/users", h.AdminListUsers)
	admin.GET("/users/:id", h.AdminGetUser)
	admin.PATCH("/users/:id", h.AdminUpdateUser)
	admin.GET("/recipes", h.AdminListRecipes)
	admin.GET("/tags", h.AdminListTags)
	admin.GET("/ingredients", h.AdminListIngredients)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.ginEngine
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.httpSrv = &http.Server{
		Addr:    s.cfg.Listen,
		Handler: s.ginEngine,
	}
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
