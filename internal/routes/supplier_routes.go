package routes

import (
	"marketplace/internal/controllers"
	"marketplace/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SupplierRoutes(r *gin.RouterGroup) {
	suppliers := r.Group("/suppliers")
	suppliers.Use(middleware.RequireAuth())
	{
		suppliers.POST("", controllers.CreateSupplier)
		suppliers.GET("", controllers.ListSuppliers)
		suppliers.GET("/:id", controllers.GetSupplier)
		suppliers.PATCH("/:id", controllers.UpdateSupplier)
		suppliers.DELETE("/:id", controllers.DeleteSupplier)
		suppliers.POST("/:id/staff", controllers.AddSupplierStaff)
		suppliers.GET("/:id/staff", controllers.ListSupplierStaff)
	}
}
