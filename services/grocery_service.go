// services/grocery_service.go
package services

import (
	"github.com/lcainswebdeveloper/shopping-list-challenge/config"
	"github.com/lcainswebdeveloper/shopping-list-challenge/models"
)

// GroceryService is the read-only catalog lookup. Safe to call from any
// request; it never writes.
type GroceryService struct{}

func NewGroceryService() *GroceryService {
	return &GroceryService{}
}

// All returns the whole catalog ordered by slug.
func (s *GroceryService) All() ([]models.Grocery, error) {
	var groceries []models.Grocery
	err := config.DB.Order("slug").Find(&groceries).Error
	return groceries, err
}

// PricesFor fetches current unit prices for the given slugs in one query.
// Slugs missing from the catalog are simply absent from the result.
func (s *GroceryService) PricesFor(slugs []string) (map[string]int, error) {
	var groceries []models.Grocery
	err := config.DB.
		Select("slug", "unit_price_in_pence").
		Where("slug IN ?", slugs).
		Find(&groceries).Error
	if err != nil {
		return nil, err
	}

	prices := make(map[string]int, len(groceries))
	for _, g := range groceries {
		prices[g.Slug] = g.UnitPriceInPence
	}
	return prices, nil
}

// CountBySlugs reports how many of the given slugs exist in the catalog.
func (s *GroceryService) CountBySlugs(slugs []string) (int64, error) {
	var count int64
	err := config.DB.Model(&models.Grocery{}).Where("slug IN ?", slugs).Count(&count).Error
	return count, err
}
