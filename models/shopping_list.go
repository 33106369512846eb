package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

type ShoppingList struct {
    ID        string `gorm:"primaryKey;type:varchar(36)"`
    UserID    uint   `gorm:"not null;index"` // FK → users.id, owner never changes
    Items     []ShoppingListItem `gorm:"constraint:OnDelete:CASCADE"`
    CreatedAt time.Time
    UpdatedAt time.Time
}

func (l *ShoppingList) BeforeCreate(tx *gorm.DB) error {
    if l.ID == "" {
        l.ID = uuid.NewString()
    }
    return nil
}
