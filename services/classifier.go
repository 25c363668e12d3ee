package services

import (
	"MenuPlus/models"
	"strings"
)

// Classification is the outcome of classifying a single item locally, without
// the generative model. The list fields hold the profile entries the item
// triggered.
type Classification struct {
	SafetyRating        models.SafetyRating `json:"safetyRating"`
	Allergies           []string            `json:"allergies"`
	DietaryRestrictions []string            `json:"dietaryRestrictions"`
	Dislikes            []string            `json:"dislikes"`
	Preferences         []string            `json:"preferences"`
}

// ClassifyIngredients applies the safety precedence to an item's ingredient
// set. Precedence is strict: RED (allergy or restriction hit) beats YELLOW
// (dislike hit) beats GREEN. An item that matches both an allergen and a
// preference is still RED.
func ClassifyIngredients(ingredients []string, profile *models.Profile) Classification {
	result := Classification{
		SafetyRating:        models.SafetyGreen,
		Allergies:           matchTerms(ingredients, profile.Allergies),
		DietaryRestrictions: matchTerms(ingredients, profile.DietaryRestrictions),
		Dislikes:            matchTerms(ingredients, profile.Dislikes),
		Preferences:         matchTerms(ingredients, profile.Preferences),
	}

	switch {
	case len(result.Allergies) > 0 || len(result.DietaryRestrictions) > 0:
		result.SafetyRating = models.SafetyRed
	case len(result.Dislikes) > 0:
		result.SafetyRating = models.SafetyYellow
	}
	return result
}

// matchTerms returns the profile terms that appear in the ingredient set,
// matched case-insensitively in either direction ("peanut" hits
// "peanut sauce" and vice versa). Profile order is preserved.
func matchTerms(ingredients []string, terms []string) []string {
	matched := []string{}
	for _, term := range terms {
		normalized := strings.ToLower(strings.TrimSpace(term))
		if normalized == "" {
			continue
		}
		for _, ingredient := range ingredients {
			candidate := strings.ToLower(strings.TrimSpace(ingredient))
			if candidate == "" {
				continue
			}
			if strings.Contains(candidate, normalized) || strings.Contains(normalized, candidate) {
				matched = append(matched, term)
				break
			}
		}
	}
	return matched
}
