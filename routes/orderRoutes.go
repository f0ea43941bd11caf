package routes

import (
	"bistro-api/controllers"
	"bistro-api/middlewares"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.GET("", controllers.GetOrders)
		orders.POST("", controllers.PlaceOrder)
		orders.GET("/:id", controllers.GetOrder)

		orders.PUT("/:id",
			middlewares.RequireRoles(models.RoleManager, models.RoleAdmin),
			controllers.AssignDeliveryCrew)
		orders.PATCH("/:id",
			middlewares.RequireRoles(models.RoleManager, models.RoleDeliveryCrew, models.RoleAdmin),
			controllers.UpdateOrderStatus)
		orders.DELETE("/:id",
			middlewares.RequireRoles(models.RoleManager, models.RoleAdmin),
			controllers.DeleteOrder)
	}
}
