package controllers

import (
	"MenuPlus/models"
	"MenuPlus/services"
	"MenuPlus/utils"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	AnalysisService *services.AnalysisService
	ProfileService  *services.ProfileService
	VisionService   *services.VisionService
	MenuService     *services.MenuService
}

// NewAnalysisController wires the analysis pipeline: OCR, profile lookup,
// generative analysis and persistence.
func NewAnalysisController(visionService *services.VisionService) *AnalysisController {
	return &AnalysisController{
		AnalysisService: services.NewAnalysisService(services.NewOpenAIService()),
		ProfileService:  services.NewProfileService(),
		VisionService:   visionService,
		MenuService:     services.NewMenuService(),
	}
}

type AnalyzeRequest struct {
	MenuText string `json:"menuText" binding:"required"`
}

type AnalyzeImageRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

type ClassifyRequest struct {
	Name        string   `json:"name" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required"`
}

// AnalyzeMenu analyzes already-extracted menu text against the caller's
// stored dietary profile.
func (a *AnalysisController) AnalyzeMenu(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format or missing menuText")
		return
	}

	profile, err := a.loadProfile(c.Request.Context(), userID.(string))
	if err != nil {
		c.Error(err)
		return
	}

	result, err := a.AnalysisService.Analyze(c.Request.Context(), req.MenuText, profile)
	if err != nil {
		c.Error(toCustomError(err))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu analyzed successfully", result)
}

// AnalyzeMenuImage runs the full workflow: OCR the image, then analyze the
// extracted text. The two calls are sequential because the second depends on
// the first's output.
func (a *AnalysisController) AnalyzeMenuImage(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req AnalyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format or missing imageBase64")
		return
	}

	lines, err := a.VisionService.ExtractLines(c.Request.Context(), req.ImageBase64)
	if err != nil {
		c.Error(utils.NewCustomError(http.StatusServiceUnavailable, "Text extraction failed: "+err.Error()))
		return
	}
	if len(lines) == 0 {
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "No text detected in the image")
		return
	}

	profile, err := a.loadProfile(c.Request.Context(), userID.(string))
	if err != nil {
		c.Error(err)
		return
	}

	menuText := strings.Join(lines, "\n")
	result, err := a.AnalysisService.Analyze(c.Request.Context(), menuText, profile)
	if err != nil {
		c.Error(toCustomError(err))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu analyzed successfully", gin.H{
		"menuText": menuText,
		"result":   result,
	})
}

// ClassifyItem classifies a single item locally against the caller's profile,
// without the generative model.
func (a *AnalysisController) ClassifyItem(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := a.loadProfile(c.Request.Context(), userID.(string))
	if err != nil {
		c.Error(err)
		return
	}

	classification := services.ClassifyIngredients(req.Ingredients, profile)
	utils.SuccessResponse(c, http.StatusOK, "Item classified successfully", gin.H{
		"name":           req.Name,
		"classification": classification,
	})
}

func (a *AnalysisController) loadProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := a.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NewCustomError(http.StatusPreconditionFailed, "Dietary profile not found, complete onboarding first")
	}
	return profile, nil
}

// toCustomError maps the analysis error taxonomy to distinct HTTP statuses so
// clients can tell "try again" from "nothing detected" from "unexpected
// response".
func toCustomError(err error) error {
	var analysisErr *services.AnalysisError
	if !errors.As(err, &analysisErr) {
		return utils.NewCustomError(http.StatusInternalServerError, "Menu analysis failed")
	}

	switch analysisErr.Kind {
	case services.AnalysisInvalidInput:
		return utils.NewCustomError(http.StatusBadRequest, "Menu text is empty")
	case services.AnalysisEmptyResult:
		return utils.NewCustomError(http.StatusUnprocessableEntity, "No menu items found in the analysis")
	case services.AnalysisSchemaViolation:
		return utils.NewCustomError(http.StatusBadGateway, "Analysis returned an unexpected response: "+analysisErr.Message)
	case services.AnalysisUpstreamFailure:
		return utils.NewCustomError(http.StatusServiceUnavailable, "Analysis service unavailable, try again")
	default:
		return utils.NewCustomError(http.StatusInternalServerError, "Menu analysis failed")
	}
}
