package routes

import (
	"marketplace/internal/controllers"
	"marketplace/internal/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth())
	{
		orders.POST("", controllers.CreateOrder)
		orders.GET("", controllers.ListOrders)
		orders.GET("/:id", controllers.GetOrder)
		orders.PATCH("/:id", controllers.UpdateOrder)
	}
}
