package models

import "time"

// A catalog entry. Slug is the stable human-readable key ("milk", "bread").
// Prices are stored in pence; changing a price here never touches items
// already on a shopping list.
type Grocery struct {
    Slug             string `gorm:"primaryKey;type:varchar(255)"`
    Name             string `gorm:"not null"`
    UnitPriceInPence int    `gorm:"not null;default:0"`
    CreatedAt        time.Time
    UpdatedAt        time.Time
}
