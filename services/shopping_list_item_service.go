// services/shopping_list_item_service.go
package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/lcainswebdeveloper/shopping-list-challenge/config"
	"github.com/lcainswebdeveloper/shopping-list-challenge/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShoppingListItemService struct {
	grocerySvc *GroceryService
}

func NewShoppingListItemService(gs *GroceryService) *ShoppingListItemService {
	return &ShoppingListItemService{grocerySvc: gs}
}

// ValidationResult carries field-keyed messages in the same shape the API
// returns them: a general message plus one entry per offending field.
type ValidationResult struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (v *ValidationResult) Failed() bool {
	return len(v.Errors) > 0
}

func (v *ValidationResult) add(field, message string) {
	if v.Errors == nil {
		v.Errors = map[string][]string{}
	}
	v.Errors[field] = append(v.Errors[field], message)
	if v.Message == "" {
		v.Message = message
	}
}

// ValidateItems checks the raw decoded "items" mapping and returns the
// validated slug → quantity map. An unknown slug fails the operation as a
// whole; quantity problems are reported per item, keyed "items.<slug>".
func (s *ShoppingListItemService) ValidateItems(items map[string]interface{}) (map[string]int, *ValidationResult, error) {
	result := &ValidationResult{}

	if len(items) == 0 {
		result.add("items", "The items field is required.")
		return nil, result, nil
	}

	slugs := make([]string, 0, len(items))
	for slug := range items {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	validCount, err := s.grocerySvc.CountBySlugs(slugs)
	if err != nil {
		return nil, nil, err
	}
	if validCount != int64(len(slugs)) {
		result.add("items", "Sorry, you are trying to add groceries that don't exist")
	}

	validated := make(map[string]int, len(items))
	for _, slug := range slugs {
		quantity, ok := asInt(items[slug])
		if !ok {
			result.add(
				fmt.Sprintf("items.%s", slug),
				fmt.Sprintf("You have added %s to your shopping list but it is not an integer.", slug),
			)
			continue
		}
		if quantity < 1 {
			result.add(
				fmt.Sprintf("items.%s", slug),
				fmt.Sprintf("You have added %s to your shopping list but the quantity must be at least 1.", slug),
			)
			continue
		}
		validated[slug] = quantity
	}

	if result.Failed() {
		return nil, result, nil
	}
	return validated, result, nil
}

// asInt accepts the numeric types encoding/json can hand us. A whole float64
// is an integer as far as JSON is concerned; anything else is not.
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// Upsert writes the requested quantities onto the list with one bulk
// insert-or-update keyed on the (shopping_list_id, grocery_slug) unique
// index, and returns the number of rows affected.
//
// An item keeps the unit price it had at first insertion: existing rows get
// their own stored price written back, so the price column in the update set
// is a no-op rather than a refresh from the catalog. Only brand new rows
// take the catalog's current price. The read-then-write sequence runs in a
// single transaction so two concurrent upserts cannot interleave their
// price reads with each other's writes.
func (s *ShoppingListItemService) Upsert(shoppingList *models.ShoppingList, items map[string]int) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	slugs := make([]string, 0, len(items))
	for slug := range items {
		slugs = append(slugs, slug)
	}

	var affected int64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var groceries []models.Grocery
		if err := tx.
			Select("slug", "unit_price_in_pence").
			Where("slug IN ?", slugs).
			Find(&groceries).Error; err != nil {
			return err
		}
		currentPrices := make(map[string]int, len(groceries))
		for _, g := range groceries {
			currentPrices[g.Slug] = g.UnitPriceInPence
		}

		// Existing items on this list keep their original unit prices.
		var existing []models.ShoppingListItem
		if err := tx.
			Select("grocery_slug", "unit_price_in_pence").
			Where("shopping_list_id = ? AND grocery_slug IN ?", shoppingList.ID, slugs).
			Find(&existing).Error; err != nil {
			return err
		}
		frozenPrices := make(map[string]int, len(existing))
		for _, item := range existing {
			frozenPrices[item.GrocerySlug] = item.UnitPriceInPence
		}

		rows := make([]models.ShoppingListItem, 0, len(items))
		for slug, quantity := range items {
			unitPrice, exists := frozenPrices[slug]
			if !exists {
				unitPrice = currentPrices[slug] // zero if the slug is somehow absent
			}
			rows = append(rows, models.ShoppingListItem{
				ShoppingListID:    shoppingList.ID,
				GrocerySlug:       slug,
				Quantity:          quantity,
				UnitPriceInPence:  unitPrice,
				TotalPriceInPence: unitPrice * quantity,
			})
		}

		res := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shopping_list_id"}, {Name: "grocery_slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "total_price_in_pence", "unit_price_in_pence", "updated_at"}),
		}).Create(&rows)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})

	return affected, err
}

// ItemsFor returns the items currently on the list.
func (s *ShoppingListItemService) ItemsFor(shoppingList *models.ShoppingList) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := config.DB.
		Where("shopping_list_id = ?", shoppingList.ID).
		Order("grocery_slug").
		Find(&items).Error
	return items, err
}

// Delete removes a single item from the list by grocery slug.
func (s *ShoppingListItemService) Delete(shoppingList *models.ShoppingList, slug string) error {
	return config.DB.
		Where("shopping_list_id = ? AND grocery_slug = ?", shoppingList.ID, slug).
		Delete(&models.ShoppingListItem{}).Error
}
