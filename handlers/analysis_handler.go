package handlers

import (
	"MenuPlus/controllers"
	"MenuPlus/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAnalysisRoutes(router *gin.RouterGroup, analysisController *controllers.AnalysisController) {
	analysisGroup := router.Group("/analysis")
	{
		analysisGroup.POST("", middleware.AuthMiddleware(), analysisController.AnalyzeMenu)
		analysisGroup.POST("/image", middleware.AuthMiddleware(), analysisController.AnalyzeMenuImage)
		analysisGroup.POST("/classify", middleware.AuthMiddleware(), analysisController.ClassifyItem)
	}
}
