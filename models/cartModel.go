package models

import "gorm.io/gorm"

// One line per (user, menu item) pair; adds for an existing pair merge into
// the same row via an atomic upsert keyed on this index.
type CartItem struct {
	gorm.Model
	UserID     uint     `json:"userId" gorm:"uniqueIndex:idx_user_menu_item"`
	MenuItemID uint     `json:"menuItemId" gorm:"uniqueIndex:idx_user_menu_item"`
	MenuItem   MenuItem `json:"menuItem"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unitPrice"`
	Price      float64  `json:"price"`
}
