package routes

import (
	"marketplace/internal/controllers"
	"marketplace/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ConsumerRoutes(r *gin.RouterGroup) {
	consumers := r.Group("/consumers")
	consumers.Use(middleware.RequireAuth())
	{
		consumers.POST("", controllers.CreateConsumer)
		consumers.GET("", controllers.ListConsumers)
		consumers.GET("/:id", controllers.GetConsumer)
		consumers.PATCH("/:id", controllers.UpdateConsumer)
		consumers.DELETE("/:id", controllers.DeleteConsumer)
		consumers.POST("/:id/staff", controllers.AddConsumerStaff)
		consumers.GET("/:id/staff", controllers.ListConsumerStaff)
	}
}
