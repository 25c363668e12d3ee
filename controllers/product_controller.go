package controllers

import (
	"MenuPlus/services"
	"MenuPlus/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	ProductService *services.ProductService
	ProfileService *services.ProfileService
}

// NewProductController initializes ProductController
func NewProductController() *ProductController {
	return &ProductController{
		ProductService: services.NewProductService(),
		ProfileService: services.NewProfileService(),
	}
}

// CheckProduct looks up a packaged product by barcode and classifies it
// against the caller's dietary profile.
func (p *ProductController) CheckProduct(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	barcode := c.Param("barcode")
	if barcode == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Barcode is required")
		return
	}

	profile, err := p.ProfileService.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		c.Error(err)
		return
	}
	if profile == nil {
		utils.ErrorResponse(c, http.StatusPreconditionFailed, "Dietary profile not found, complete onboarding first")
		return
	}

	check, err := p.ProductService.CheckProduct(barcode, profile)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product checked successfully", check)
}
