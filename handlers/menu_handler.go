package handlers

import (
	"MenuPlus/controllers"
	"MenuPlus/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMenuRoutes(router *gin.RouterGroup, menuController *controllers.MenuController) {
	menuGroup := router.Group("/menus")
	{
		menuGroup.GET("", middleware.AuthMiddleware(), menuController.GetAllMenus)
		menuGroup.GET("/:menuID", middleware.AuthMiddleware(), menuController.GetOneMenu)
		menuGroup.POST("", middleware.AuthMiddleware(), menuController.CreateMenu)
		menuGroup.DELETE("/:menuID", middleware.AuthMiddleware(), menuController.DeleteMenu)
	}
}
