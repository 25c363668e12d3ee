package handlers

import (
	"MenuPlus/controllers"
	"MenuPlus/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.RegisterUser)
		authGroup.POST("/login", authController.LoginUser)
		authGroup.POST("/refresh", middleware.AuthMiddleware(), authController.RefreshSession)
	}
}
