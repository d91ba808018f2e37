package routes

import (
	"marketplace/internal/controllers"
	"marketplace/internal/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.RequireAuth())
	{
		users.GET("", controllers.ListUsers)
		users.GET("/:id", controllers.GetUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}
}
