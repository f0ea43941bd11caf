package controllers

import (
	"errors"
	"log"
	"net/http"

	"bistro-api/initializers"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetCart returns the caller's cart lines with a running total.
func GetCart(ctx *gin.Context) {
	userId := ctx.GetUint("userId")

	var cartItems []models.CartItem
	result := initializers.DB.
		Where("user_id = ?", userId).
		Preload("MenuItem").
		Preload("MenuItem.Category").
		Find(&cartItems)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	var total float64
	for _, item := range cartItems {
		total += item.Price
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cart":  cartItems,
		"total": total,
	})
}

// AddToCart adds a menu item to the caller's cart. Repeat adds for the same
// item merge into the existing line: the insert and the quantity increment are
// a single upsert, so concurrent adds cannot lose updates. A merged line keeps
// its original unit price snapshot and recomputes price from the new quantity.
func AddToCart(ctx *gin.Context) {
	userId := ctx.GetUint("userId")

	var input struct {
		MenuItemId uint `json:"menuItemId" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var menuItem models.MenuItem
	if err := initializers.DB.First(&menuItem, input.MenuItemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Menu item not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch menu item")
		}
		return
	}

	cartItem := models.CartItem{
		UserID:     userId,
		MenuItemID: menuItem.ID,
		Quantity:   input.Quantity,
		UnitPrice:  menuItem.Price,
		Price:      float64(input.Quantity) * menuItem.Price,
	}

	// price is assigned before quantity (assignments are ordered by column
	// name), so both expressions read the stored row's old quantity.
	err := initializers.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"price":    gorm.Expr("(quantity + ?) * unit_price", input.Quantity),
			"quantity": gorm.Expr("quantity + ?", input.Quantity),
		}),
	}).Create(&cartItem).Error
	if err != nil {
		log.Println("Cart upsert error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": menuItem.Title + " added to cart",
	})
}

// ClearCart removes every cart line owned by the caller. Clearing an already
// empty cart succeeds. Lines are deleted for real: a tombstone would collide
// with the (user_id, menu_item_id) unique index when the item is re-added.
func ClearCart(ctx *gin.Context) {
	userId := ctx.GetUint("userId")

	if result := initializers.DB.Unscoped().Where("user_id = ?", userId).Delete(&models.CartItem{}); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared."})
}
