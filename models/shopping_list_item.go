package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// One priced line on a shopping list. UnitPriceInPence is the snapshot taken
// the first time the (list, slug) pair was inserted; later catalog price
// changes must not alter it. At most one row exists per (list, slug).
type ShoppingListItem struct {
    ID                string `gorm:"primaryKey;type:varchar(36)"`
    ShoppingListID    string `gorm:"type:varchar(36);not null;uniqueIndex:idx_list_grocery"`
    GrocerySlug       string `gorm:"type:varchar(255);not null;uniqueIndex:idx_list_grocery"`
    Quantity          int    `gorm:"not null;default:0"`
    UnitPriceInPence  int    `gorm:"not null;default:0"`
    TotalPriceInPence int    `gorm:"not null;default:0"`
    CreatedAt         time.Time
    UpdatedAt         time.Time

    Grocery Grocery `gorm:"foreignKey:GrocerySlug;references:Slug;constraint:OnDelete:RESTRICT" json:"-"`
}

func (i *ShoppingListItem) BeforeCreate(tx *gorm.DB) error {
    if i.ID == "" {
        i.ID = uuid.NewString()
    }
    return nil
}
