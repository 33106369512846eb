// middlewares/shopping_list_middleware.go
package middlewares

import (
	"net/http"

	"github.com/lcainswebdeveloper/shopping-list-challenge/config"
	"github.com/lcainswebdeveloper/shopping-list-challenge/models"

	"github.com/gin-gonic/gin"
)

// ShoppingListOwnership resolves the :id route param to a shopping list and
// rejects the request unless the caller owns it. Must run after
// AuthMiddleware; every item-level route sits behind this guard.
func ShoppingListOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		var list models.ShoppingList
		if err := config.DB.First(&list, "id = ?", c.Param("id")).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Shopping List not found."})
			return
		}

		if list.UserID != c.GetUint("userID") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Sorry you are not the owner of this shopping list."})
			return
		}

		c.Set("shoppingList", &list)
		c.Next()
	}
}

// MustGetShoppingList pulls the list resolved by ShoppingListOwnership out of
// the request context.
func MustGetShoppingList(c *gin.Context) *models.ShoppingList {
	return c.MustGet("shoppingList").(*models.ShoppingList)
}
