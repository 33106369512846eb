// services/shopping_list_service.go
package services

import (
	"time"

	"github.com/lcainswebdeveloper/shopping-list-challenge/config"
	"github.com/lcainswebdeveloper/shopping-list-challenge/models"
	"github.com/lcainswebdeveloper/shopping-list-challenge/utils"
)

type ShoppingListService struct {
	money utils.MoneyFormatter
}

func NewShoppingListService(money utils.MoneyFormatter) *ShoppingListService {
	return &ShoppingListService{money: money}
}

func (s *ShoppingListService) Create(userID uint) (*models.ShoppingList, error) {
	list := &models.ShoppingList{UserID: userID}
	if err := config.DB.Create(list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ShoppingListService) ListForUser(userID uint) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&lists).Error
	return lists, err
}

func (s *ShoppingListService) Find(id string) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := config.DB.First(&list, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// Assemble builds the response shape for one list: its items plus a subtotal
// summed from the items' stored totals. The subtotal is always computed here
// rather than kept as a column, so it cannot go stale when items change.
func (s *ShoppingListService) Assemble(list *models.ShoppingList) (map[string]interface{}, error) {
	var items []models.ShoppingListItem
	err := config.DB.
		Where("shopping_list_id = ?", list.ID).
		Order("grocery_slug").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	subtotal := 0
	itemsOut := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		subtotal += item.TotalPriceInPence
		itemsOut = append(itemsOut, map[string]interface{}{
			"id":                   item.ID,
			"grocery_slug":         item.GrocerySlug,
			"quantity":             item.Quantity,
			"unit_price_in_pence":  item.UnitPriceInPence,
			"total_price_in_pence": item.TotalPriceInPence,
			"created_at":           item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return map[string]interface{}{
		"id":                 list.ID,
		"items":              itemsOut,
		"subtotal_in_pence":  subtotal,
		"formatted_subtotal": s.money.Format(subtotal),
		"currency":           s.money.CurrencyCode(),
		"created_at":         list.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}
