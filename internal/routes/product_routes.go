package routes

import (
	"marketplace/internal/controllers"
	"marketplace/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ProductRoutes(r *gin.RouterGroup) {
	products := r.Group("/products")
	products.Use(middleware.RequireAuth())
	{
		products.POST("", controllers.CreateProduct)
		products.GET("", controllers.ListProducts)
		products.GET("/:id", controllers.GetProduct)
		products.PATCH("/:id", controllers.UpdateProduct)
	}
}
