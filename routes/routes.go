package routes

import (
    "github.com/lcainswebdeveloper/shopping-list-challenge/controllers"
    "github.com/lcainswebdeveloper/shopping-list-challenge/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Everything else needs a valid bearer token
    api := r.Group("/")
    api.Use(middlewares.AuthMiddleware())
    {
        api.GET("/user", controllers.GetUser)
        api.GET("/groceries", controllers.ListGroceries)

        api.GET("/shopping-lists", controllers.ListShoppingLists)
        api.POST("/shopping-lists", controllers.CreateShoppingList)

        // Item routes additionally require list ownership
        items := api.Group("/shopping-lists/:id")
        items.Use(middlewares.ShoppingListOwnership())
        {
            items.GET("/items", controllers.ListShoppingListItems)
            items.POST("/items", controllers.UpsertShoppingListItems)
            items.DELETE("/items/:slug", controllers.DeleteShoppingListItem)
        }
    }

    return r
}
