package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lcainswebdeveloper/shopping-list-challenge/config"
	"github.com/lcainswebdeveloper/shopping-list-challenge/models"
	"github.com/lcainswebdeveloper/shopping-list-challenge/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Grocery{},
		&models.ShoppingList{},
		&models.ShoppingListItem{},
	))
	config.DB = db
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware())

	guarded := r.Group("/shopping-lists/:id")
	guarded.Use(ShoppingListOwnership())
	guarded.GET("/items", func(c *gin.Context) {
		list := MustGetShoppingList(c)
		c.JSON(http.StatusOK, gin.H{"id": list.ID})
	})

	return r
}

func TestAuthMiddlewareRejectsMissingOrBadTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	setupTestDB(t)
	r := testRouter()

	tests := []struct {
		name       string
		authHeader string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/shopping-lists/some-id/items", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestOwnershipReturns404ForUnknownList(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	setupTestDB(t)
	r := testRouter()

	token, err := utils.GenerateJWT(1, "owner@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/shopping-lists/no-such-list/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Shopping List not found.")
}

func TestOwnershipReturns403ForAnotherUsersList(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	setupTestDB(t)
	r := testRouter()

	list := &models.ShoppingList{UserID: 1}
	require.NoError(t, config.DB.Create(list).Error)

	token, err := utils.GenerateJWT(2, "intruder@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/shopping-lists/"+list.ID+"/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Sorry you are not the owner of this shopping list.")
}

func TestOwnershipAllowsTheOwnerThrough(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	setupTestDB(t)
	r := testRouter()

	list := &models.ShoppingList{UserID: 1}
	require.NoError(t, config.DB.Create(list).Error)

	token, err := utils.GenerateJWT(1, "owner@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/shopping-lists/"+list.ID+"/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), list.ID)
}
