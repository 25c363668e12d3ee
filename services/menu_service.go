package services

import (
	"MenuPlus/config/database"
	"MenuPlus/models"
	"MenuPlus/utils"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MenuService persists analyzed menus under users/{uid}/menus.
type MenuService struct {
	FirestoreClient *firestore.Client
}

// NewMenuService initializes a new MenuService
func NewMenuService() *MenuService {
	return &MenuService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

func (s *MenuService) menus(userID string) *firestore.CollectionRef {
	return s.FirestoreClient.Collection("users").Doc(userID).Collection("menus")
}

// SaveMenu serializes the analysis result and stores it with the original
// menu text. The result is stored as an opaque JSON blob; array order is rank
// order, so the stored shape round-trips deterministically.
func (s *MenuService) SaveMenu(ctx context.Context, userID, menuText string, result *models.AnalysisResult, imageReference string) (*models.SavedMenu, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to serialize analysis result")
	}

	menu := &models.SavedMenu{
		ID:                 uuid.NewString(),
		UserID:             userID,
		OriginalMenuText:   menuText,
		AnalysisResultJSON: string(resultJSON),
		ImageReference:     imageReference,
		CreatedAt:          time.Now(),
	}

	if _, err := s.menus(userID).Doc(menu.ID).Set(ctx, menu); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to save menu")
	}
	return menu, nil
}

// GetAllMenus retrieves every saved menu for a user, newest first.
func (s *MenuService) GetAllMenus(ctx context.Context, userID string) ([]models.SavedMenu, error) {
	iter := s.menus(userID).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	menus := []models.SavedMenu{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch menus")
		}

		var menu models.SavedMenu
		if err := doc.DataTo(&menu); err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse menu data")
		}
		menu.ID = doc.Ref.ID
		menus = append(menus, menu)
	}
	return menus, nil
}

// GetMenuByID retrieves a single saved menu.
func (s *MenuService) GetMenuByID(ctx context.Context, userID, menuID string) (*models.SavedMenu, error) {
	doc, err := s.menus(userID).Doc(menuID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, utils.NewCustomError(http.StatusNotFound, "Menu not found")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch menu")
	}

	var menu models.SavedMenu
	if err := doc.DataTo(&menu); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse menu data")
	}
	menu.ID = doc.Ref.ID
	return &menu, nil
}

// DeleteMenu removes a saved menu.
func (s *MenuService) DeleteMenu(ctx context.Context, userID, menuID string) error {
	docRef := s.menus(userID).Doc(menuID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return utils.NewCustomError(http.StatusNotFound, "Menu not found")
		}
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch menu")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to delete menu")
	}
	return nil
}
