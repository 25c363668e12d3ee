package controllers

import (
	"MenuPlus/models"
	"MenuPlus/services"
	"MenuPlus/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	MenuService *services.MenuService
}

// NewMenuController initializes MenuController
func NewMenuController() *MenuController {
	return &MenuController{
		MenuService: services.NewMenuService(),
	}
}

type SaveMenuRequest struct {
	OriginalMenuText string                 `json:"originalMenuText" binding:"required"`
	AnalysisResult   *models.AnalysisResult `json:"analysisResult" binding:"required"`
	ImageReference   string                 `json:"imageReference"`
}

func (m *MenuController) GetAllMenus(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	menus, err := m.MenuService.GetAllMenus(c.Request.Context(), userID.(string))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menus fetched successfully", menus)
}

func (m *MenuController) GetOneMenu(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	menuID := c.Param("menuID")
	if menuID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	menu, err := m.MenuService.GetMenuByID(c.Request.Context(), userID.(string), menuID)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu fetched successfully", menu)
}

func (m *MenuController) CreateMenu(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req SaveMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	menu, err := m.MenuService.SaveMenu(c.Request.Context(), userID.(string), req.OriginalMenuText, req.AnalysisResult, req.ImageReference)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Menu saved successfully", menu)
}

func (m *MenuController) DeleteMenu(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	menuID := c.Param("menuID")
	if menuID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := m.MenuService.DeleteMenu(c.Request.Context(), userID.(string), menuID)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu deleted successfully", nil)
}
