package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"bistro-api/initializers"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// scopeOrders narrows a query to the orders the caller may see: managers and
// admins see everything, delivery crew their assigned orders, customers their
// own. Out-of-scope orders behave exactly like missing ones.
func scopeOrders(query *gorm.DB, userId uint, role string) *gorm.DB {
	switch role {
	case models.RoleManager, models.RoleAdmin:
		return query
	case models.RoleDeliveryCrew:
		return query.Where("delivery_crew_id = ?", userId)
	default:
		return query.Where("user_id = ?", userId)
	}
}

func GetOrders(ctx *gin.Context) {
	userId := ctx.GetUint("userId")
	role := ctx.GetString("role")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := scopeOrders(initializers.DB.Preload("OrderItems"), userId, role).
		Order("created_at " + sortOrder)

	var orders []models.Order
	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	var count int64
	if err := scopeOrders(initializers.DB.Model(&models.Order{}), userId, role).Count(&count).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// PlaceOrder converts the caller's cart into an order. The order row, its
// items and the cart deletion commit together or not at all.
func PlaceOrder(ctx *gin.Context) {
	userId := ctx.GetUint("userId")

	var cartItems []models.CartItem
	if err := initializers.DB.Where("user_id = ?", userId).Find(&cartItems).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}
	if len(cartItems) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "empty cart")
		return
	}

	var total float64
	for _, item := range cartItems {
		total += item.Price
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	order := models.Order{
		UserID: userId,
		Status: false,
		Total:  total,
		Date:   time.Now(),
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Println("Order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	for _, item := range cartItems {
		orderItem := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Price:      item.Price,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			log.Println("Order item creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order items")
			return
		}
	}

	// Hard delete: a soft-deleted line would still occupy the
	// (user_id, menu_item_id) unique index and swallow the next re-add.
	if err := tx.Unscoped().Where("user_id = ?", userId).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		log.Println("Cart clear error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Commit error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save order")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order placed successfully.",
		"orderId": order.ID,
		"total":   order.Total,
	})
}

func GetOrder(ctx *gin.Context) {
	userId := ctx.GetUint("userId")
	role := ctx.GetString("role")

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var order models.Order
	result := scopeOrders(initializers.DB.Preload("OrderItems"), userId, role).
		First(&order, orderId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// AssignDeliveryCrew sets the order's delivery crew member (PUT).
func AssignDeliveryCrew(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var input struct {
		DeliveryCrewId uint `json:"deliveryCrewId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
		}
		return
	}

	var crew models.User
	if err := initializers.DB.First(&crew, input.DeliveryCrewId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}
	if crew.Role != models.RoleDeliveryCrew {
		sendErrorResponse(ctx, http.StatusBadRequest, "User is not a delivery crew member")
		return
	}

	if err := initializers.DB.Model(&order).Update("delivery_crew_id", crew.ID).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to assign delivery crew")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order assigned to " + crew.Username,
	})
}

// UpdateOrderStatus flips the delivered flag (PATCH). Delivery crew may only
// touch orders assigned to them.
func UpdateOrderStatus(ctx *gin.Context) {
	userId := ctx.GetUint("userId")
	role := ctx.GetString("role")

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	query := initializers.DB
	if role == models.RoleDeliveryCrew {
		query = query.Where("delivery_crew_id = ?", userId)
	}

	var order models.Order
	if err := query.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
		}
		return
	}

	newStatus := !order.Status
	if err := initializers.DB.Model(&order).Update("status", newStatus).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Status of order #" + strconv.Itoa(orderId) + " changed to " + strconv.FormatBool(newStatus),
		"status":  newStatus,
	})
}

// DeleteOrder removes the order together with its items.
func DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
		}
		return
	}

	tx := initializers.DB.Begin()
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order items")
		return
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	if err := tx.Commit().Error; err != nil {
		log.Println("Commit error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}
