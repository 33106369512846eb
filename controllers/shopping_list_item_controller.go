package controllers

import (
	"net/http"

	"github.com/lcainswebdeveloper/shopping-list-challenge/middlewares"
	"github.com/lcainswebdeveloper/shopping-list-challenge/services"
	"github.com/lcainswebdeveloper/shopping-list-challenge/utils"

	"github.com/gin-gonic/gin"
)

// GET /shopping-lists/:id/items
//
// Returns the list with its items and subtotal, plus the full catalog with a
// selected flag so a client can render what is and isn't on the list yet.
func ListShoppingListItems(c *gin.Context) {
	shoppingList := middlewares.MustGetShoppingList(c)

	money, err := utils.NewMoneyFormatter("GBP")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listSvc := services.NewShoppingListService(money)
	grocerySvc := services.NewGroceryService()

	assembled, err := listSvc.Assemble(shoppingList)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	groceries, err := grocerySvc.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	itemSvc := services.NewShoppingListItemService(grocerySvc)
	items, err := itemSvc.ItemsFor(shoppingList)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	selected := make(map[string]bool, len(items))
	for _, item := range items {
		selected[item.GrocerySlug] = true
	}

	withSelection := make([]map[string]interface{}, 0, len(groceries))
	for _, g := range groceries {
		resource := groceryResource(g, money)
		resource["selected"] = selected[g.Slug]
		withSelection = append(withSelection, resource)
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"shopping_list": assembled,
		"groceries":     withSelection,
	}})
}

// POST /shopping-lists/:id/items
func UpsertShoppingListItems(c *gin.Context) {
	shoppingList := middlewares.MustGetShoppingList(c)

	var body struct {
		Items map[string]interface{} `json:"items"`
	}
	// an absent or malformed body is the same as an empty items mapping:
	// validation reports it against the items field
	if err := c.ShouldBindJSON(&body); err != nil {
		body.Items = nil
	}

	grocerySvc := services.NewGroceryService()
	itemSvc := services.NewShoppingListItemService(grocerySvc)

	validated, result, err := itemSvc.ValidateItems(body.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.Failed() {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	if _, err := itemSvc.Upsert(shoppingList, validated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	money, err := utils.NewMoneyFormatter("GBP")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listSvc := services.NewShoppingListService(money)
	assembled, err := listSvc.Assemble(shoppingList)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": assembled})
}

// DELETE /shopping-lists/:id/items/:slug
func DeleteShoppingListItem(c *gin.Context) {
	shoppingList := middlewares.MustGetShoppingList(c)

	grocerySvc := services.NewGroceryService()
	itemSvc := services.NewShoppingListItemService(grocerySvc)

	if err := itemSvc.Delete(shoppingList, c.Param("slug")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
