package api

import (
	"net/http"
	"testing"

	"github.com/recipebox/recipebox/internal/api/models"
	"github.com/recipebox/recipebox/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIngredients_Unauthorized(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/recipe/ingredients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListIngredients_OrderedByName(t *testing.T) {
	srv, db := newTestServer(t)
	token := registerUser(t, srv, "test@example.com", "testpass", "test")

	user, err := db.GetUserByEmail(t.Context(), "test@example.com")
	require.NoError(t, err)

	_, err = db.CreateIngredient(t.Context(), user.ID, "Salt")
	require.NoError(t, err)
	_, err = db.CreateIngredient(t.Context(), user.ID, "Kale")
	require.NoError(t, err)

	w := doJSON(t, srv, http.MethodGet, "/recipe/ingredients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ingredients []models.AttributeResponse
	decodeJSON(t, w, &ingredients)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "Kale", ingredients[0].Name)
	assert.Equal(t, "Salt", ingredients[1].Name)
}

func TestListIngredients_ScopedToUser(t *testing.T) {
	srv, db := newTestServer(t)
	token := registerUser(t, srv, "user1@example.com", "testpass", "user1")
	registerUser(t, srv, "user2@example.com", "testpass", "user2")

	user2, err := db.GetUserByEmail(t.Context(), "user2@example.com")
	require.NoError(t, err)
	_, err = db.CreateIngredient(t.Context(), user2.ID, "Vinegar")
	require.NoError(t, err)

	user1, err := db.GetUserByEmail(t.Context(), "user1@example.com")
	require.NoError(t, err)
	_, err = db.CreateIngredient(t.Context(), user1.ID, "Tumeric")
	require.NoError(t, err)

	w := doJSON(t, srv, http.MethodGet, "/recipe/ingredients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ingredients []models.AttributeResponse
	decodeJSON(t, w, &ingredients)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Tumeric", ingredients[0].Name)
}

func TestCreateIngredient(t *testing.T) {
	srv, db := newTestServer(t)
	token := registerUser(t, srv, "test@example.com", "testpass", "test")

	w := doJSON(t, srv, http.MethodPost, "/recipe/ingredients", token, map[string]string{
		"name": "Cabbage",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	user, err := db.GetUserByEmail(t.Context(), "test@example.com")
	require.NoError(t, err)
	ingredients, err := db.GetIngredients(t.Context(), user.ID, false)
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Cabbage", ingredients[0].Name)
}

func TestCreateIngredient_EmptyName(t *testing.T) {
	srv, _ := newTestServer(t)
	token := registerUser(t, srv, "test@example.com", "testpass", "test")

	w := doJSON(t, srv, http.MethodPost, "/recipe/ingredients", token, map[string]string{
		"name": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIngredients_AssignedOnly(t *testing.T) {
	srv, db := newTestServer(t)
	token := registerUser(t, srv, "test@example.com", "testpass", "test")

	user, err := db.GetUserByEmail(t.Context(), "test@example.com")
	require.NoError(t, err)

	assigned, err := db.CreateIngredient(t.Context(), user.ID, "Apples")
	require.NoError(t, err)
	_, err = db.CreateIngredient(t.Context(), user.ID, "Oranges")
	require.NoError(t, err)

	recipe := &database.Recipe{
		Title:       "Apple crumble",
		TimeMinutes: 35,
		Price:       4.50,
		UserID:      user.ID,
		Ingredients: []database.Ingredient{*assigned},
	}
	require.NoError(t, db.CreateRecipe(t.Context(), recipe))

	w := doJSON(t, srv, http.MethodGet, "/recipe/ingredients?assigned_only=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ingredients []models.AttributeResponse
	decodeJSON(t, w, &ingredients)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Apples", ingredients[0].Name)
}
