package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SafetyRating classifies a menu item against a dietary profile.
type SafetyRating string

const (
	SafetyRed    SafetyRating = "RED"    // contains allergies/restrictions - avoid
	SafetyYellow SafetyRating = "YELLOW" // contains dislikes - caution
	SafetyGreen  SafetyRating = "GREEN"  // safe to eat
)

// ParseSafetyRating matches a rating token case-insensitively. Anything
// outside RED/YELLOW/GREEN is an error, never a silent default.
func ParseSafetyRating(value string) (SafetyRating, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "RED":
		return SafetyRed, nil
	case "YELLOW":
		return SafetyYellow, nil
	case "GREEN":
		return SafetyGreen, nil
	default:
		return "", fmt.Errorf("invalid safety rating %q", value)
	}
}

func (r *SafetyRating) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	rating, err := ParseSafetyRating(value)
	if err != nil {
		return err
	}
	*r = rating
	return nil
}

// MenuItem is one analyzed dish. The four list fields hold the subset of the
// profile's lists that this item triggers; they are empty slices, not nil,
// when nothing applies.
type MenuItem struct {
	Name                string       `json:"name"`
	Description         string       `json:"description"`
	Price               *string      `json:"price,omitempty"`
	SafetyRating        SafetyRating `json:"safetyRating"`
	Allergies           []string     `json:"allergies"`
	DietaryRestrictions []string     `json:"dietaryRestrictions"`
	Dislikes            []string     `json:"dislikes"`
	Preferences         []string     `json:"preferences"`
	Recommendation      *string      `json:"recommendation,omitempty"`
	Rank                int          `json:"rank"` // 1 = best match for the user
}

// AnalysisResult is the validated output of a menu analysis, ordered by
// ascending rank. Array order is rank order when serialized.
type AnalysisResult struct {
	MenuItems []MenuItem `json:"menuItems"`
}

// SavedMenu is a persisted analysis record under users/{uid}/menus.
type SavedMenu struct {
	ID                 string    `json:"id" firestore:"id"`
	UserID             string    `json:"userId" firestore:"userId"`
	OriginalMenuText   string    `json:"originalMenuText" firestore:"originalMenuText"`
	AnalysisResultJSON string    `json:"analysisResultJson" firestore:"analysisResultJson"`
	ImageReference     string    `json:"imageReference,omitempty" firestore:"imageReference"`
	CreatedAt          time.Time `json:"createdAt" firestore:"createdAt"`
}
