package handlers

import (
	"MenuPlus/controllers"
	"MenuPlus/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterOCRRoutes(router *gin.RouterGroup, ocrController *controllers.OCRController) {
	ocrGroup := router.Group("/ocr")
	{
		ocrGroup.POST("", middleware.AuthMiddleware(), ocrController.ExtractText)
	}
}
