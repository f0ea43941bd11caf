package routes

import (
	"bistro-api/controllers"
	"bistro-api/middlewares"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
)

func MenuItemRoutes(server *gin.Engine) {
	menuItems := server.Group("/menu-items", middlewares.RequireAuth())
	{
		menuItems.GET("", controllers.GetMenuItems)
		menuItems.GET("/:id", controllers.GetMenuItem)
	}

	managerOnly := menuItems.Group("", middlewares.RequireRoles(models.RoleManager, models.RoleAdmin))
	{
		managerOnly.POST("", controllers.CreateMenuItem)
		managerOnly.PUT("/:id", controllers.UpdateMenuItem)
		managerOnly.PATCH("/:id", controllers.PatchMenuItem)
		managerOnly.DELETE("/:id", controllers.DeleteMenuItem)
		managerOnly.POST("/:id/image", controllers.UploadMenuItemImage)
	}
}
