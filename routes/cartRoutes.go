package routes

import (
	"bistro-api/controllers"
	"bistro-api/middlewares"

	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("/menu-items", controllers.GetCart)
		cart.POST("/menu-items", controllers.AddToCart)
		cart.DELETE("/menu-items", controllers.ClearCart)
	}
}
