package handlers

import (
	"MenuPlus/controllers"
	"MenuPlus/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterProductRoutes(router *gin.RouterGroup, productController *controllers.ProductController) {
	productGroup := router.Group("/products")
	{
		productGroup.GET("/:barcode", middleware.AuthMiddleware(), productController.CheckProduct)
	}
}
