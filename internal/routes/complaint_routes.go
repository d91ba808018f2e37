package routes

import (
	"marketplace/internal/controllers"
	"marketplace/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ComplaintRoutes(r *gin.RouterGroup) {
	complaints := r.Group("/complaints")
	complaints.Use(middleware.RequireAuth())
	{
		complaints.POST("", controllers.CreateComplaint)
		complaints.GET("", controllers.ListComplaints)
		complaints.GET("/:id", controllers.GetComplaint)
		complaints.PATCH("/:id", controllers.UpdateComplaint)
	}
}
