package route

import (
	"MenuPlus/controllers"
	"MenuPlus/handlers"
	"MenuPlus/services"
	"context"
	"log"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	visionService, err := services.NewVisionService(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize Vision service: %v", err)
	}

	authController := controllers.NewAuthController()
	profileController := controllers.NewProfileController()
	ocrController := controllers.NewOCRController(visionService)
	analysisController := controllers.NewAnalysisController(visionService)
	menuController := controllers.NewMenuController()
	productController := controllers.NewProductController()

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterAuthRoutes(v1Routes, authController)
		handlers.RegisterProfileRoutes(v1Routes, profileController)
		handlers.RegisterOCRRoutes(v1Routes, ocrController)
		handlers.RegisterAnalysisRoutes(v1Routes, analysisController)
		handlers.RegisterMenuRoutes(v1Routes, menuController)
		handlers.RegisterProductRoutes(v1Routes, productController)
	}
}
