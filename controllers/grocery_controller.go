package controllers

import (
    "net/http"

    "github.com/lcainswebdeveloper/shopping-list-challenge/models"
    "github.com/lcainswebdeveloper/shopping-list-challenge/services"
    "github.com/lcainswebdeveloper/shopping-list-challenge/utils"

    "github.com/gin-gonic/gin"
)

func groceryResource(g models.Grocery, money utils.MoneyFormatter) map[string]interface{} {
    return map[string]interface{}{
        "slug":                g.Slug,
        "name":                g.Name,
        "unit_price_in_pence": g.UnitPriceInPence,
        "formatted_price":     money.Format(g.UnitPriceInPence),
        "currency":            money.CurrencyCode(),
    }
}

// GET /groceries
func ListGroceries(c *gin.Context) {
    money, err := utils.NewMoneyFormatter("GBP")
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    grocerySvc := services.NewGroceryService()
    groceries, err := grocerySvc.All()
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    data := make([]map[string]interface{}, 0, len(groceries))
    for _, g := range groceries {
        data = append(data, groceryResource(g, money))
    }

    c.JSON(http.StatusOK, gin.H{"data": data})
}
