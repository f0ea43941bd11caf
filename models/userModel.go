package models

import "gorm.io/gorm"

const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleDeliveryCrew = "delivery_crew"
	RoleCustomer     = "customer"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"not null;default:customer"`
}

type LoginData struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
