package api

import (
	"net/http"
	"testing"

	"github.com/recipebox/recipebox/internal/api/models"
	"github.com/recipebox/recipebox/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTags_Unauthorized(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/recipe/tags", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListTags_OrderedByName(t *testing.T) {
	srv, db := newTestServer(t)
	token := registerUser(t, srv, "test@example.com", "testpass", "test")

	user, err := db.GetUserByEmail(t.Context(), "test@example.com")
	require.NoError(t, err)

	_, err = db.CreateTag(t.Context(), user.ID, "Vegan")
	require.NoError(t, err)
	_, err = db.CreateTag(t.Context(), user.ID, "Dessert")
	require.NoError(t, err)

	w := doJSON(t, srv, http.MethodGet, "/recipe/tags", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []models.AttributeResponse
	decodeJSON(t, w, &tags)
	require.Len(t, tags, 2)
	assert.Equal(t, "Dessert", tags[0].Name)
	assert.Equal(t, "Vegan", tags[1].Name)
}

func TestListTags_ScopedToUser(t *testing.T) {
	srv, db := newTestServer(t)
	token := registerUser(t, srv, "user1@example.com", "testpass", "user1")
	registerUser(t, srv, "user2@example.com", "testpass", "user2")

	user2, err := db.GetUserByEmail(t.Context(), "user2@example.com")
	require.NoError(t, err)
	_, err = db.CreateTag(t.Context(), user2.ID, "user2_tag")
	require.NoError(t, err)

	user1, err := db.GetUserByEmail(t.Context(), "user1@example.com")
	require.NoError(t, err)
	_, err = db.CreateTag(t.Context(), user1.ID, "user1_tag")
	require.NoError(t, err)

	w := doJSON(t, srv, http.MethodGet, "/recipe/tags", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []models.AttributeResponse
	decodeJSON(t, w, &tags)
	require.Len(t, tags, 1)
	assert.Equal(t, "user1_tag", tags[0].Name)
}

func TestCreateTag(t *testing.T) {
	srv, db := newTestServer(t)
	token := registerUser(t, srv, "test@example.com", "testpass", "test")

	w := doJSON(t, srv, http.MethodPost, "/recipe/tags", token, map[string]string{
		"name": "Test tag",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	user, err := db.GetUserByEmail(t.Context(), "test@example.com")
	require.NoError(t, err)
	tags, err := db.GetTags(t.Context(), user.ID, false)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Test tag", tags[0].Name)
}

func TestCreateTag_EmptyName(t *testing.T) {
	srv, _ := newTestServer(t)
	token := registerUser(t, srv, "test@example.com", "testpass", "test")

	w := doJSON(t, srv, http.MethodPost, "/recipe/tags", token, map[string]string{
		"name": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTags_AssignedOnly(t *testing.T) {
	srv, db := newTestServer(t)
	token := registerUser(t, srv, "test@example.com", "testpass", "test")

	user, err := db.GetUserByEmail(t.Context(), "test@example.com")
	require.NoError(t, err)

	assigned, err := db.CreateTag(t.Context(), user.ID, "assigned")
	require.NoError(t, err)
	_, err = db.CreateTag(t.Context(), user.ID, "unassigned")
	require.NoError(t, err)

	// Attach the tag to two recipes to verify de-duplication
	for _, title := range []string{"Pancakes", "Waffles"} {
		recipe := &database.Recipe{
			Title:       title,
			TimeMinutes: 10,
			Price:       5.00,
			UserID:      user.ID,
			Tags:        []database.Tag{*assigned},
		}
		require.NoError(t, db.CreateRecipe(t.Context(), recipe))
	}

	w := doJSON(t, srv, http.MethodGet, "/recipe/tags?assigned_only=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []models.AttributeResponse
	decodeJSON(t, w, &tags)
	require.Len(t, tags, 1)
	assert.Equal(t, "assigned", tags[0].Name)
}
