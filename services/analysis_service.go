package services

import (
	"MenuPlus/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
)

// GenerativeClient is the generative-AI collaborator. It receives a prompt
// and returns raw text that is expected, but not guaranteed, to contain JSON.
type GenerativeClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnalysisService turns OCR menu text plus a dietary profile into a ranked,
// safety-classified list of menu items. It is stateless; concurrent calls for
// different requests are safe.
type AnalysisService struct {
	Generative GenerativeClient
}

// NewAnalysisService creates an AnalysisService with the given generative client.
func NewAnalysisService(generative GenerativeClient) *AnalysisService {
	return &AnalysisService{
		Generative: generative,
	}
}

// Analyze runs the full pipeline: prompt construction, one generative call,
// defensive decoding, and invariant validation. The returned error is always
// an *AnalysisError.
func (s *AnalysisService) Analyze(ctx context.Context, menuText string, profile *models.Profile) (*models.AnalysisResult, error) {
	if strings.TrimSpace(menuText) == "" {
		return nil, newAnalysisError(AnalysisInvalidInput, "menu text is empty", nil)
	}

	prompt := buildMenuAnalysisPrompt(menuText, profile)

	response, err := s.Generative.Generate(ctx, prompt)
	if err != nil {
		return nil, newAnalysisError(AnalysisUpstreamFailure, "failed during generation", err)
	}

	result, err := decodeAnalysisResponse(response)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// buildMenuAnalysisPrompt builds the single instruction sent to the model.
// Empty profile lists are stated as "None" so the model cannot confuse an
// empty list with a missing field. Allergies are de-duplicated
// case-insensitively before they reach the prompt.
func buildMenuAnalysisPrompt(menuText string, profile *models.Profile) string {
	language := strings.TrimSpace(profile.PreferredLanguage)
	languageLine := "keep the menu's original language"
	if language != "" {
		languageLine = language
	}

	return fmt.Sprintf(`You are MenuPlus AI, an expert food safety assistant. Analyze this restaurant menu based on the user's dietary profile.

USER PROFILE:
- Allergies (CRITICAL - these can cause serious health reactions): %s
- Dietary Restrictions (must avoid): %s
- Dislikes (prefers not to eat): %s
- Preferences (enjoys eating): %s
- Language: %s

MENU:
%s

INSTRUCTIONS:
1. Convert menu to user language if needed
2. Analyze each menu item and classify safety: RED (contains allergies/restrictions), YELLOW (contains dislikes), GREEN (safe)
3. Rank items by what's BEST for the user (considering preferences, safety, and match quality)
4. Return ONLY valid JSON in this exact format (no markdown, no code blocks):

{
  "menuItems": [
    {
      "name": "Item Name",
      "description": "Item description in user's language",
      "price": "Price if available (e.g., '$15.99' or null)",
      "safetyRating": "GREEN|YELLOW|RED",
      "allergies": ["allergy1", "allergy2"],
      "dietaryRestrictions": ["restriction1"],
      "dislikes": ["dislike1"],
      "preferences": ["preference1"],
      "recommendation": "Why this item is recommended or concerns",
      "rank": 1
    }
  ]
}

IMPORTANT:
- Return ONLY the JSON object, no other text
- Order items by rank (1 = best for user, higher numbers = less ideal)
- Include ALL menu items
- Extract price from menu text if available
- Be specific about which allergies/restrictions/dislikes/preferences apply to each item`,
		joinOrNone(models.DedupeFold(profile.Allergies)),
		joinOrNone(profile.DietaryRestrictions),
		joinOrNone(profile.Dislikes),
		joinOrNone(profile.Preferences),
		languageLine,
		menuText,
	)
}

func joinOrNone(list []string) string {
	if len(list) == 0 {
		return "None"
	}
	return strings.Join(list, ", ")
}

// menuItemDTO is the wire shape of one item as the model is asked to produce
// it. Everything is optional here; validation decides what survives.
type menuItemDTO struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Price               *string  `json:"price"`
	SafetyRating        string   `json:"safetyRating"`
	Allergies           []string `json:"allergies"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Dislikes            []string `json:"dislikes"`
	Preferences         []string `json:"preferences"`
	Recommendation      *string  `json:"recommendation"`
	Rank                *int     `json:"rank"`
}

type analysisResponseDTO struct {
	MenuItems []menuItemDTO `json:"menuItems"`
}

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?(.*?)```")

// cleanResponseText strips markdown code-fence markers the model sometimes
// wraps around the payload.
func cleanResponseText(response string) string {
	cleaned := codeFencePattern.ReplaceAllString(response, "$1")
	return strings.TrimSpace(cleaned)
}

// extractJSONObject locates the outermost {...} span so wrapper prose around
// the payload does not break parsing.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// decodeAnalysisResponse parses the raw generative response and enforces the
// result invariants:
//   - items without a name are dropped, not escalated, unless nothing is left
//   - a rank missing on any item invalidates all upstream ranks; 1..N ranks
//     are synthesized in decode order instead
//   - the final sequence is sorted ascending by rank, ties kept in decode order
func decodeAnalysisResponse(response string) (*models.AnalysisResult, error) {
	jsonText := extractJSONObject(cleanResponseText(response))
	if jsonText == "" {
		return nil, newAnalysisError(AnalysisSchemaViolation, "response contains no JSON object", nil)
	}

	var dto analysisResponseDTO
	if err := json.Unmarshal([]byte(jsonText), &dto); err != nil {
		return nil, newAnalysisError(AnalysisSchemaViolation, "menuItems: malformed JSON", err)
	}

	items := make([]models.MenuItem, 0, len(dto.MenuItems))
	ranksComplete := true
	dropped := 0

	for i, raw := range dto.MenuItems {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			dropped++
			continue
		}

		rating, err := models.ParseSafetyRating(raw.SafetyRating)
		if err != nil {
			return nil, newAnalysisError(AnalysisSchemaViolation,
				fmt.Sprintf("menuItems[%d].safetyRating", i), err)
		}

		rank := 0
		if raw.Rank == nil {
			ranksComplete = false
		} else if *raw.Rank < 1 {
			return nil, newAnalysisError(AnalysisSchemaViolation,
				fmt.Sprintf("menuItems[%d].rank must be a positive integer", i), nil)
		} else {
			rank = *raw.Rank
		}

		items = append(items, models.MenuItem{
			Name:                name,
			Description:         raw.Description,
			Price:               raw.Price,
			SafetyRating:        rating,
			Allergies:           orEmpty(raw.Allergies),
			DietaryRestrictions: orEmpty(raw.DietaryRestrictions),
			Dislikes:            orEmpty(raw.Dislikes),
			Preferences:         orEmpty(raw.Preferences),
			Recommendation:      raw.Recommendation,
			Rank:                rank,
		})
	}

	if dropped > 0 {
		log.Printf("menu analysis: dropped %d item(s) with empty names", dropped)
	}

	if len(items) == 0 {
		return nil, newAnalysisError(AnalysisEmptyResult, "no valid menu items in response", nil)
	}

	// Partial or inconsistent ranking from the model is not trusted: if any
	// item lacks a rank, every item is re-ranked by decode order.
	if !ranksComplete {
		for i := range items {
			items[i].Rank = i + 1
		}
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Rank < items[b].Rank
	})

	return &models.AnalysisResult{MenuItems: items}, nil
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
