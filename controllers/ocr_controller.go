package controllers

import (
	"MenuPlus/services"
	"MenuPlus/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type OCRController struct {
	VisionService *services.VisionService
}

// NewOCRController initializes OCRController
func NewOCRController(visionService *services.VisionService) *OCRController {
	return &OCRController{
		VisionService: visionService,
	}
}

type ExtractRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

// ExtractText runs OCR over an uploaded menu photo and returns the detected
// lines plus their newline join. An image with no text is a valid response,
// not an error.
func (o *OCRController) ExtractText(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format or missing imageBase64")
		return
	}

	lines, err := o.VisionService.ExtractLines(c.Request.Context(), req.ImageBase64)
	if err != nil {
		c.Error(utils.NewCustomError(http.StatusServiceUnavailable, "Text extraction failed: "+err.Error()))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Text extracted successfully", gin.H{
		"lines":    lines,
		"menuText": strings.Join(lines, "\n"),
	})
}
