package config

import (
	"log"

	"github.com/lcainswebdeveloper/shopping-list-challenge/models"

	"gorm.io/gorm/clause"
)

// SeedGroceries loads the grocery catalog. Existing slugs are left alone so a
// price edited in the database survives a restart.
func SeedGroceries() {
	groceries := []models.Grocery{
		{Slug: "milk", Name: "Milk", UnitPriceInPence: 120},
		{Slug: "bread", Name: "Bread", UnitPriceInPence: 100},
		{Slug: "eggs", Name: "Eggs", UnitPriceInPence: 200},
		{Slug: "cheese", Name: "Cheese", UnitPriceInPence: 250},
		{Slug: "apples", Name: "Apples", UnitPriceInPence: 150},
		{Slug: "bananas", Name: "Bananas", UnitPriceInPence: 130},
		{Slug: "chicken-breast", Name: "Chicken Breast", UnitPriceInPence: 400},
		{Slug: "rice", Name: "Rice", UnitPriceInPence: 90},
		{Slug: "pasta", Name: "Pasta", UnitPriceInPence: 110},
		{Slug: "tomatoes", Name: "Tomatoes", UnitPriceInPence: 140},
		{Slug: "potatoes", Name: "Potatoes", UnitPriceInPence: 120},
		{Slug: "onions", Name: "Onions", UnitPriceInPence: 80},
		{Slug: "carrots", Name: "Carrots", UnitPriceInPence: 90},
		{Slug: "butter", Name: "Butter", UnitPriceInPence: 180},
		{Slug: "yogurt", Name: "Yogurt", UnitPriceInPence: 110},
		{Slug: "orange-juice", Name: "Orange Juice", UnitPriceInPence: 160},
		{Slug: "cereal", Name: "Cereal", UnitPriceInPence: 210},
		{Slug: "bacon", Name: "Bacon", UnitPriceInPence: 350},
		{Slug: "lettuce", Name: "Lettuce", UnitPriceInPence: 100},
		{Slug: "cucumber", Name: "Cucumber", UnitPriceInPence: 90},
	}

	err := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&groceries).Error
	if err != nil {
		log.Fatalf("Grocery seeding failed: %v", err)
	}
}
