package routes

import (
	"marketplace/internal/controllers"
	"marketplace/internal/middleware"

	"github.com/gin-gonic/gin"
)

func LinkRoutes(r *gin.RouterGroup) {
	links := r.Group("/links")
	links.Use(middleware.RequireAuth())
	{
		links.POST("", controllers.CreateLink)
		links.GET("", controllers.ListLinks)
		links.GET("/:id", controllers.GetLink)
		links.PATCH("/:id", controllers.UpdateLink)
	}
}
