package routes

import (
	"marketplace/internal/controllers"
	"marketplace/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ChatRoutes(r *gin.RouterGroup) {
	chat := r.Group("/chat")
	chat.Use(middleware.RequireAuth())
	{
		chat.GET("/link/:link_id", controllers.GetOrCreateChat)
		chat.POST("/messages", controllers.PostMessage)
		chat.GET("/:chat_id/messages", controllers.ListMessages)
	}
}
