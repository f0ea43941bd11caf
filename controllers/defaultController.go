package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Bistro API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account

MENU ITEMS
- GET "/menu-items" - List menu items
- POST "/menu-items" - Create menu item (manager)
- GET "/menu-items/{id}" - Get menu item by ID
- PUT "/menu-items/{id}" - Replace menu item (manager)
- PATCH "/menu-items/{id}" - Update menu item fields (manager)
- DELETE "/menu-items/{id}" - Delete menu item (manager)
- POST "/menu-items/{id}/image" - Upload menu item image (manager)

GROUPS
- GET "/groups/manager/users" - List managers
- POST "/groups/manager/users" - Add user to Manager group
- DELETE "/groups/manager/users/{id}" - Remove user from Manager group
- GET "/groups/delivery-crew/users" - List delivery crew
- POST "/groups/delivery-crew/users" - Add user to Delivery Crew group
- DELETE "/groups/delivery-crew/users/{id}" - Remove user from Delivery Crew group

CART
- GET "/cart/menu-items" - List your cart
- POST "/cart/menu-items" - Add item to your cart
- DELETE "/cart/menu-items" - Clear your cart

ORDERS
- GET "/orders" - List orders visible to you
- POST "/orders" - Place an order from your cart
- GET "/orders/{id}" - Get order by ID
- PUT "/orders/{id}" - Assign delivery crew (manager)
- PATCH "/orders/{id}" - Toggle delivery status (manager, delivery crew)
- DELETE "/orders/{id}" - Delete order (manager)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
