package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/recipebox/internal/config"
	"github.com/recipebox/recipebox/internal/database"
	"github.com/stretchr/testify/require"
)

// newTestServer spins up a server backed by a temp sqlite database and a
// temp uploads directory.
func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Listen:    "127.0.0.1:0",
		ServerURL: "http://localhost:8000",
		Auth: &config.AuthConfig{
			Secret:   "test-secret",
			TokenTTL: time.Hour,
		},
		Database: &config.DatabaseConfig{
			Path: filepath.Join(t.TempDir(), "test.db"),
		},
		Uploads: &config.UploadsConfig{
			Dir:      t.TempDir(),
			MaxBytes: 10 << 20,
		},
	}

	db, err := database.New(cfg.Database.Path)
	require.NoError(t, err)

	srv, err := New(cfg, db)
	require.NoError(t, err)

	return srv, db
}

// doJSON performs a JSON request against the test server. An empty token
// leaves the Authorization header unset.
func doJSON(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept-Encoding", "identity")

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

// decodeJSON unmarshals a response recorder body.
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, srv *Server, email, password, name string) string {
	t.Helper()

	w := doJSON(t, srv, http.MethodPost, "/user/create", "", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/user/token", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeJSON(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
