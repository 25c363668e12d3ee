package services

import (
	"MenuPlus/config/database"
	"MenuPlus/config/environment"
	"MenuPlus/models"
	"MenuPlus/utils"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/auth"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const sessionTokenTTL = 24 * time.Hour

// SessionClaims is what rides inside the app session token. The onboarding
// flag lets clients gate the profile setup flow without an extra round trip.
type SessionClaims struct {
	UserID             string
	Email              string
	OnboardingComplete bool
}

// AuthService handles account creation via the Firebase Admin SDK,
// email/password sign-in via the Identity Toolkit REST API, and the app's own
// session tokens.
type AuthService struct {
	AuthClient      *auth.Client
	FirestoreClient *firestore.Client
	WebAPIKey       string
	HTTPClient      *http.Client
}

// NewAuthService initializes AuthService with the shared Firebase clients.
func NewAuthService() *AuthService {
	return &AuthService{
		AuthClient:      database.GetFirebaseAuthClient(),
		FirestoreClient: database.GetFirestoreClient(),
		WebAPIKey:       environment.GetFirebaseWebAPIKey(),
		HTTPClient:      &http.Client{Timeout: 30 * time.Second},
	}
}

// Register creates the Firebase account, stores the user document, and mints
// a session token. New users always start with onboarding incomplete.
func (s *AuthService) Register(ctx context.Context, email, password, username string) (*models.User, string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(username)

	record, err := s.AuthClient.CreateUser(ctx, params)
	if err != nil {
		return nil, "", utils.NewCustomError(http.StatusConflict, "Failed to create account: "+err.Error())
	}

	user := &models.User{
		ID:        record.UID,
		Email:     email,
		Username:  username,
		CreatedAt: time.Now(),
	}

	_, err = s.FirestoreClient.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to save user profile")
	}

	token, err := GenerateSessionToken(user.ID, user.Email, user.OnboardingComplete)
	if err != nil {
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to create session")
	}
	return user, token, nil
}

// Login verifies the password through the Identity Toolkit REST API (the
// Admin SDK cannot check passwords) and mints a session token carrying the
// current onboarding state.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	payload, _ := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})

	url := "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword?key=" + s.WebAPIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to build sign-in request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, "", utils.NewCustomError(http.StatusServiceUnavailable, "Sign-in service unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("sign-in rejected with status %d: %s", resp.StatusCode, string(body))
		return nil, "", utils.NewCustomError(http.StatusUnauthorized, "Invalid email or password")
	}

	var signIn struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&signIn); err != nil {
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to parse sign-in response")
	}

	user, err := s.GetUser(ctx, signIn.LocalID)
	if err != nil {
		return nil, "", err
	}

	token, err := GenerateSessionToken(user.ID, user.Email, user.OnboardingComplete)
	if err != nil {
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to create session")
	}
	return user, token, nil
}

// RefreshSession re-issues the session token from the user's current state.
// Called after profile creation so the onboarding claim catches up.
func (s *AuthService) RefreshSession(ctx context.Context, userID string) (string, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	token, err := GenerateSessionToken(user.ID, user.Email, user.OnboardingComplete)
	if err != nil {
		return "", utils.NewCustomError(http.StatusInternalServerError, "Failed to create session")
	}
	return token, nil
}

// GetUser loads the user document from Firestore.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	doc, err := s.FirestoreClient.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, utils.NewCustomError(http.StatusNotFound, "User not found")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch user")
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse user data")
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

// GenerateSessionToken mints an HS256 session token for the user.
func GenerateSessionToken(userID, email string, onboardingComplete bool) (string, error) {
	if userID == "" {
		return "", errors.New("empty userID passed to GenerateSessionToken")
	}
	secret := environment.GetJWTSecret()
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"userID":             userID,
		"email":              email,
		"onboardingComplete": onboardingComplete,
		"exp":                time.Now().Add(sessionTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken parses and verifies a session token.
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	secret := environment.GetJWTSecret()
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, _ := claims["userID"].(string)
	if userID == "" {
		return nil, errors.New("token missing userID")
	}
	email, _ := claims["email"].(string)
	onboardingComplete, _ := claims["onboardingComplete"].(bool)

	return &SessionClaims{
		UserID:             userID,
		Email:              email,
		OnboardingComplete: onboardingComplete,
	}, nil
}
