package controllers

import (
	"net/http"

	"github.com/lcainswebdeveloper/shopping-list-challenge/services"
	"github.com/lcainswebdeveloper/shopping-list-challenge/utils"

	"github.com/gin-gonic/gin"
)

// GET /shopping-lists
func ListShoppingLists(c *gin.Context) {
	money, err := utils.NewMoneyFormatter("GBP")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listSvc := services.NewShoppingListService(money)

	lists, err := listSvc.ListForUser(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data := make([]map[string]interface{}, 0, len(lists))
	for i := range lists {
		assembled, err := listSvc.Assemble(&lists[i])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		data = append(data, assembled)
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// POST /shopping-lists
func CreateShoppingList(c *gin.Context) {
	money, err := utils.NewMoneyFormatter("GBP")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listSvc := services.NewShoppingListService(money)

	list, err := listSvc.Create(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	assembled, err := listSvc.Assemble(list)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": assembled})
}
