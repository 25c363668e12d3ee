package services

import (
	"MenuPlus/models"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerativeClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeGenerativeClient) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func testProfile() *models.Profile {
	return &models.Profile{
		UserID:              "user-1",
		PreferredLanguage:   "English",
		Allergies:           []string{"peanut"},
		DietaryRestrictions: []string{},
		Dislikes:            []string{"cilantro"},
		Preferences:         []string{"spicy"},
	}
}

func analysisKind(t *testing.T, err error) AnalysisErrorKind {
	t.Helper()
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	return analysisErr.Kind
}

func TestAnalyzeEmptyMenuTextFailsFast(t *testing.T) {
	fake := &fakeGenerativeClient{response: "{}"}
	service := NewAnalysisService(fake)

	for _, menuText := range []string{"", "   \n\t  "} {
		_, err := service.Analyze(context.Background(), menuText, testProfile())
		require.Error(t, err)
		assert.Equal(t, AnalysisInvalidInput, analysisKind(t, err))
	}
	assert.Equal(t, 0, fake.calls, "generative client must not be invoked for empty input")
}

func TestAnalyzeUpstreamFailureWrapsCause(t *testing.T) {
	cause := errors.New("quota exceeded")
	fake := &fakeGenerativeClient{err: cause}
	service := NewAnalysisService(fake)

	_, err := service.Analyze(context.Background(), "Pad Thai $12", testProfile())
	require.Error(t, err)
	assert.Equal(t, AnalysisUpstreamFailure, analysisKind(t, err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, fake.calls)
}

func TestAnalyzeParsesCodeFencedResponse(t *testing.T) {
	fake := &fakeGenerativeClient{response: "```json\n" + `{
		"menuItems": [
			{"name": "Green Curry", "description": "Spicy coconut curry", "safetyRating": "GREEN", "rank": 1}
		]
	}` + "\n```"}
	service := NewAnalysisService(fake)

	result, err := service.Analyze(context.Background(), "Green Curry $10", testProfile())
	require.NoError(t, err)
	require.Len(t, result.MenuItems, 1)
	assert.Equal(t, "Green Curry", result.MenuItems[0].Name)
	assert.Equal(t, models.SafetyGreen, result.MenuItems[0].SafetyRating)
}

func TestAnalyzeExtractsObjectFromWrapperText(t *testing.T) {
	fake := &fakeGenerativeClient{response: `Here is your analysis:
{"menuItems": [{"name": "Tom Yum", "description": "", "safetyRating": "yellow", "rank": 1}]}
Hope this helps!`}
	service := NewAnalysisService(fake)

	result, err := service.Analyze(context.Background(), "Tom Yum $9", testProfile())
	require.NoError(t, err)
	require.Len(t, result.MenuItems, 1)
	assert.Equal(t, models.SafetyYellow, result.MenuItems[0].SafetyRating)
}

func TestAnalyzeResponseWithoutJSONIsSchemaViolation(t *testing.T) {
	fake := &fakeGenerativeClient{response: "Sorry, I cannot analyze this menu."}
	service := NewAnalysisService(fake)

	_, err := service.Analyze(context.Background(), "Pad Thai $12", testProfile())
	require.Error(t, err)
	assert.Equal(t, AnalysisSchemaViolation, analysisKind(t, err))
}

func TestAnalyzeInvalidSafetyRatingIsSchemaViolation(t *testing.T) {
	fake := &fakeGenerativeClient{response: `{"menuItems": [
		{"name": "Mystery Dish", "description": "", "safetyRating": "BLUE", "rank": 1}
	]}`}
	service := NewAnalysisService(fake)

	_, err := service.Analyze(context.Background(), "Mystery Dish $5", testProfile())
	require.Error(t, err)
	assert.Equal(t, AnalysisSchemaViolation, analysisKind(t, err))
	assert.Contains(t, err.Error(), "safetyRating")
}

func TestAnalyzeNonPositiveRankIsSchemaViolation(t *testing.T) {
	fake := &fakeGenerativeClient{response: `{"menuItems": [
		{"name": "Soup", "description": "", "safetyRating": "GREEN", "rank": 0}
	]}`}
	service := NewAnalysisService(fake)

	_, err := service.Analyze(context.Background(), "Soup $4", testProfile())
	require.Error(t, err)
	assert.Equal(t, AnalysisSchemaViolation, analysisKind(t, err))
	assert.Contains(t, err.Error(), "rank")
}

func TestAnalyzeMissingRanksSynthesizedInDecodeOrder(t *testing.T) {
	fake := &fakeGenerativeClient{response: `{"menuItems": [
		{"name": "First", "description": "", "safetyRating": "GREEN"},
		{"name": "Second", "description": "", "safetyRating": "GREEN"},
		{"name": "Third", "description": "", "safetyRating": "GREEN"}
	]}`}
	service := NewAnalysisService(fake)

	result, err := service.Analyze(context.Background(), "menu", testProfile())
	require.NoError(t, err)
	require.Len(t, result.MenuItems, 3)
	for i, name := range []string{"First", "Second", "Third"} {
		assert.Equal(t, name, result.MenuItems[i].Name)
		assert.Equal(t, i+1, result.MenuItems[i].Rank)
	}
}

func TestAnalyzePartialRanksNotTrusted(t *testing.T) {
	// One item without a rank invalidates the upstream ranking entirely.
	fake := &fakeGenerativeClient{response: `{"menuItems": [
		{"name": "First", "description": "", "safetyRating": "GREEN", "rank": 5},
		{"name": "Second", "description": "", "safetyRating": "GREEN"},
		{"name": "Third", "description": "", "safetyRating": "GREEN", "rank": 1}
	]}`}
	service := NewAnalysisService(fake)

	result, err := service.Analyze(context.Background(), "menu", testProfile())
	require.NoError(t, err)
	require.Len(t, result.MenuItems, 3)
	for i, name := range []string{"First", "Second", "Third"} {
		assert.Equal(t, name, result.MenuItems[i].Name)
		assert.Equal(t, i+1, result.MenuItems[i].Rank)
	}
}

func TestAnalyzeSortsByRankWithStableTies(t *testing.T) {
	fake := &fakeGenerativeClient{response: `{"menuItems": [
		{"name": "TiedA", "description": "", "safetyRating": "GREEN", "rank": 2},
		{"name": "Best", "description": "", "safetyRating": "GREEN", "rank": 1},
		{"name": "TiedB", "description": "", "safetyRating": "GREEN", "rank": 2}
	]}`}
	service := NewAnalysisService(fake)

	result, err := service.Analyze(context.Background(), "menu", testProfile())
	require.NoError(t, err)
	require.Len(t, result.MenuItems, 3)
	assert.Equal(t, "Best", result.MenuItems[0].Name)
	assert.Equal(t, "TiedA", result.MenuItems[1].Name, "ties must keep decode order")
	assert.Equal(t, "TiedB", result.MenuItems[2].Name)
}

func TestAnalyzeDropsItemsWithEmptyNames(t *testing.T) {
	fake := &fakeGenerativeClient{response: `{"menuItems": [
		{"name": "   ", "description": "ghost item", "safetyRating": "GREEN", "rank": 1},
		{"name": "Real Dish", "description": "", "safetyRating": "GREEN", "rank": 2}
	]}`}
	service := NewAnalysisService(fake)

	result, err := service.Analyze(context.Background(), "menu", testProfile())
	require.NoError(t, err)
	require.Len(t, result.MenuItems, 1)
	assert.Equal(t, "Real Dish", result.MenuItems[0].Name)
}

func TestAnalyzeOnlyEmptyNameItemIsEmptyResult(t *testing.T) {
	fake := &fakeGenerativeClient{response: `{"menuItems": [
		{"name": "", "description": "nameless", "safetyRating": "GREEN", "rank": 1}
	]}`}
	service := NewAnalysisService(fake)

	_, err := service.Analyze(context.Background(), "menu", testProfile())
	require.Error(t, err)
	assert.Equal(t, AnalysisEmptyResult, analysisKind(t, err))
}

func TestAnalyzeZeroItemsIsEmptyResult(t *testing.T) {
	fake := &fakeGenerativeClient{response: `{"menuItems": []}`}
	service := NewAnalysisService(fake)

	_, err := service.Analyze(context.Background(), "menu", testProfile())
	require.Error(t, err)
	assert.Equal(t, AnalysisEmptyResult, analysisKind(t, err))
}

func TestAnalyzeDefaultsForAbsentFields(t *testing.T) {
	fake := &fakeGenerativeClient{response: `{"menuItems": [
		{"name": "Plain Rice", "safetyRating": "GREEN", "rank": 1}
	]}`}
	service := NewAnalysisService(fake)

	result, err := service.Analyze(context.Background(), "menu", testProfile())
	require.NoError(t, err)
	require.Len(t, result.MenuItems, 1)

	item := result.MenuItems[0]
	assert.Equal(t, "", item.Description)
	assert.Nil(t, item.Price)
	assert.Nil(t, item.Recommendation)
	assert.NotNil(t, item.Allergies)
	assert.Empty(t, item.Allergies)
	assert.NotNil(t, item.DietaryRestrictions)
	assert.Empty(t, item.DietaryRestrictions)
	assert.NotNil(t, item.Dislikes)
	assert.NotNil(t, item.Preferences)
}

func TestAnalyzePromptStatesProfileWithSentinels(t *testing.T) {
	fake := &fakeGenerativeClient{response: `{"menuItems": [
		{"name": "Dish", "description": "", "safetyRating": "GREEN", "rank": 1}
	]}`}
	service := NewAnalysisService(fake)

	profile := &models.Profile{
		UserID:              "user-1",
		PreferredLanguage:   "French",
		Allergies:           []string{"Peanut", "peanut", "shellfish"},
		DietaryRestrictions: []string{},
		Dislikes:            []string{"cilantro"},
		Preferences:         []string{},
	}

	menuText := "Pad Thai .... $12\nGreen Curry .... $10"
	_, err := service.Analyze(context.Background(), menuText, profile)
	require.NoError(t, err)
	require.Len(t, fake.prompts, 1)

	prompt := fake.prompts[0]
	assert.Contains(t, prompt, menuText, "menu text must appear verbatim")
	assert.Contains(t, prompt, "Peanut, shellfish", "allergies must be de-duplicated case-insensitively")
	assert.Equal(t, 1, strings.Count(prompt, "Peanut"))
	assert.Contains(t, prompt, "Dietary Restrictions (must avoid): None")
	assert.Contains(t, prompt, "Preferences (enjoys eating): None")
	assert.Contains(t, prompt, "Language: French")
}

func TestAnalyzeScenarioAllergenAndPreference(t *testing.T) {
	// Pad Thai hits the peanut allergy, Green Curry hits only the spicy
	// preference. Allergen safety dominates; order follows the model's ranks.
	fake := &fakeGenerativeClient{response: `{"menuItems": [
		{
			"name": "Green Curry",
			"description": "Spicy coconut curry",
			"price": "$10.50",
			"safetyRating": "GREEN",
			"allergies": [],
			"dietaryRestrictions": [],
			"dislikes": [],
			"preferences": ["spicy"],
			"recommendation": "Great match for spicy preference",
			"rank": 1
		},
		{
			"name": "Pad Thai",
			"description": "Rice noodles with crushed peanuts",
			"price": "$12.00",
			"safetyRating": "RED",
			"allergies": ["peanut"],
			"dietaryRestrictions": [],
			"dislikes": [],
			"preferences": ["spicy"],
			"recommendation": "Contains peanuts, avoid",
			"rank": 2
		}
	]}`}
	service := NewAnalysisService(fake)

	result, err := service.Analyze(context.Background(), "Pad Thai $12\nGreen Curry $10.50", testProfile())
	require.NoError(t, err)
	require.Len(t, result.MenuItems, 2)

	best := result.MenuItems[0]
	assert.Equal(t, "Green Curry", best.Name)
	assert.Equal(t, models.SafetyGreen, best.SafetyRating)
	assert.Equal(t, []string{"spicy"}, best.Preferences)
	require.NotNil(t, best.Price)
	assert.Equal(t, "$10.50", *best.Price)

	worst := result.MenuItems[1]
	assert.Equal(t, "Pad Thai", worst.Name)
	assert.Equal(t, models.SafetyRed, worst.SafetyRating, "allergen match must be RED even with a preference match")
	assert.Equal(t, []string{"peanut"}, worst.Allergies)
}
