package handlers

import (
	"MenuPlus/controllers"
	"MenuPlus/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.RouterGroup, profileController *controllers.ProfileController) {
	profileGroup := router.Group("/profile")
	{
		profileGroup.GET("", middleware.AuthMiddleware(), profileController.GetProfile)
		profileGroup.POST("", middleware.AuthMiddleware(), profileController.CreateProfile)
		profileGroup.PUT("", middleware.AuthMiddleware(), profileController.UpdateProfile)
	}

	router.GET("/languages", profileController.GetAllLanguages)
}
