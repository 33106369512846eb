package controllers

import (
	"net/http"

	"github.com/lcainswebdeveloper/shopping-list-challenge/services"

	"github.com/gin-gonic/gin"
)

// GET /user
func GetUser(c *gin.Context) {
	user, err := services.FindUserByEmail(c.GetString("email"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
	})
}
