package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID         uint        `json:"userId"`
	DeliveryCrewID *uint       `json:"deliveryCrewId"`
	Status         bool        `json:"status"`
	Total          float64     `json:"total"`
	Date           time.Time   `json:"date"`
	OrderItems     []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// Snapshot of a cart line at placement time; never recomputed from the
// current menu price.
type OrderItem struct {
	gorm.Model
	OrderID    uint    `json:"orderId"`
	MenuItemID uint    `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Price      float64 `json:"price"`
}
