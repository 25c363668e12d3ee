package controllers

import (
	"MenuPlus/models"
	"MenuPlus/services"
	"MenuPlus/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *services.ProfileService
}

// NewProfileController initializes ProfileController
func NewProfileController() *ProfileController {
	return &ProfileController{
		ProfileService: services.NewProfileService(),
	}
}

type ProfileRequest struct {
	PreferredLanguage   string   `json:"preferredLanguage"`
	Allergies           []string `json:"allergies"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Dislikes            []string `json:"dislikes"`
	Preferences         []string `json:"preferences"`
}

func (p *ProfileController) GetProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	profile, err := p.ProfileService.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		c.Error(err)
		return
	}
	if profile == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Profile not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile fetched successfully", profile)
}

func (p *ProfileController) CreateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := p.ProfileService.CreateProfile(c.Request.Context(), requestToProfile(userID.(string), req))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Profile created successfully", profile)
}

func (p *ProfileController) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := p.ProfileService.UpdateProfile(c.Request.Context(), requestToProfile(userID.(string), req))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", profile)
}

func (p *ProfileController) GetAllLanguages(c *gin.Context) {
	languages, err := p.ProfileService.GetAllLanguages(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Languages fetched successfully", languages)
}

func requestToProfile(userID string, req ProfileRequest) *models.Profile {
	return &models.Profile{
		UserID:              userID,
		PreferredLanguage:   req.PreferredLanguage,
		Allergies:           models.DedupeFold(req.Allergies),
		DietaryRestrictions: req.DietaryRestrictions,
		Dislikes:            req.Dislikes,
		Preferences:         req.Preferences,
	}
}
