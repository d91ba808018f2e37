package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires all resource routes under the versioned prefix.
// Middleware must be attached before the routes are registered.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Supplier Consumer Platform API", "version": "1.0.0"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := r.Group("/api/v1")

	AuthRoutes(v1)
	UserRoutes(v1)
	SupplierRoutes(v1)
	ConsumerRoutes(v1)
	LinkRoutes(v1)
	ProductRoutes(v1)
	OrderRoutes(v1)
	ChatRoutes(v1)
	ComplaintRoutes(v1)

	return r
}
