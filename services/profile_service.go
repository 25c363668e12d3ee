package services

import (
	"MenuPlus/config/database"
	"MenuPlus/models"
	"MenuPlus/utils"
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ProfileService manages dietary profiles and the language list in Firestore.
type ProfileService struct {
	FirestoreClient *firestore.Client
}

// NewProfileService initializes ProfileService with the shared Firestore client.
func NewProfileService() *ProfileService {
	return &ProfileService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// GetProfile fetches the dietary profile for a user. Returns nil without an
// error when the user has not completed onboarding yet.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	doc, err := s.FirestoreClient.Collection("userProfile").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch profile")
	}

	var document models.ProfileDocument
	if err := doc.DataTo(&document); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse profile data")
	}
	document.UserID = doc.Ref.ID
	return document.ToProfile(), nil
}

// CreateProfile stores a new dietary profile and marks onboarding complete on
// the user document. Callers refresh the session afterwards so the claim
// catches up.
func (s *ProfileService) CreateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	docRef := s.FirestoreClient.Collection("userProfile").Doc(profile.UserID)

	if _, err := docRef.Get(ctx); err == nil {
		return nil, utils.NewCustomError(http.StatusConflict, "Profile already exists")
	} else if status.Code(err) != codes.NotFound {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to check existing profile")
	}

	if _, err := docRef.Set(ctx, profile.ToDocument()); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create profile")
	}

	_, err := s.FirestoreClient.Collection("users").Doc(profile.UserID).Set(ctx, map[string]interface{}{
		"onboardingComplete": true,
	}, firestore.MergeAll)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to mark onboarding complete")
	}

	return profile, nil
}

// UpdateProfile overwrites the stored profile for a user.
func (s *ProfileService) UpdateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	docRef := s.FirestoreClient.Collection("userProfile").Doc(profile.UserID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, utils.NewCustomError(http.StatusNotFound, "Profile not found")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to check existing profile")
	}

	if _, err := docRef.Set(ctx, profile.ToDocument()); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update profile")
	}
	return profile, nil
}

// GetAllLanguages lists the selectable translation languages.
func (s *ProfileService) GetAllLanguages(ctx context.Context) ([]models.Language, error) {
	iter := s.FirestoreClient.Collection("languages").Documents(ctx)
	defer iter.Stop()

	languages := []models.Language{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch languages")
		}

		var language models.Language
		if err := doc.DataTo(&language); err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse language data")
		}
		languages = append(languages, language)
	}
	return languages, nil
}
