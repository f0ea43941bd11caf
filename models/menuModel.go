package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Slug  string `json:"slug" gorm:"uniqueIndex;not null"`
	Title string `json:"title"`
}

type MenuItem struct {
	gorm.Model
	Title      string         `json:"title"`
	Price      float64        `json:"price"`
	Featured   bool           `json:"featured"`
	CategoryID uint           `json:"categoryId"`
	Category   Category       `json:"category"`
	Tags       datatypes.JSON `json:"tags"`
	ImageUrl   string         `json:"imageUrl"`
}
