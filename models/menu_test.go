package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSafetyRating(t *testing.T) {
	cases := map[string]SafetyRating{
		"RED":     SafetyRed,
		"red":     SafetyRed,
		"Yellow":  SafetyYellow,
		" GREEN ": SafetyGreen,
	}
	for input, want := range cases {
		got, err := ParseSafetyRating(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{"", "BLUE", "SAFE", "0"} {
		_, err := ParseSafetyRating(input)
		assert.Error(t, err, input)
	}
}

func TestSafetyRatingUnmarshalRejectsUnknownTokens(t *testing.T) {
	var rating SafetyRating
	require.NoError(t, json.Unmarshal([]byte(`"green"`), &rating))
	assert.Equal(t, SafetyGreen, rating)

	assert.Error(t, json.Unmarshal([]byte(`"ORANGE"`), &rating))
	assert.Error(t, json.Unmarshal([]byte(`42`), &rating))
}

func TestAnalysisResultRoundTrip(t *testing.T) {
	price := "$15.99"
	recommendation := "Ask for no peanuts"
	original := AnalysisResult{
		MenuItems: []MenuItem{
			{
				Name:                "Green Curry",
				Description:         "Coconut curry",
				Price:               &price,
				SafetyRating:        SafetyGreen,
				Allergies:           []string{},
				DietaryRestrictions: []string{},
				Dislikes:            []string{},
				Preferences:         []string{"spicy"},
				Rank:                1,
			},
			{
				Name:                "Pad Thai",
				Description:         "",
				SafetyRating:        SafetyRed,
				Allergies:           []string{"peanut"},
				DietaryRestrictions: []string{},
				Dislikes:            []string{},
				Preferences:         []string{},
				Recommendation:      &recommendation,
				Rank:                2,
			},
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded AnalysisResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded, "serialization must preserve order and fields")
}

func TestMenuItemOmitsAbsentOptionalFields(t *testing.T) {
	item := MenuItem{
		Name:                "Rice",
		SafetyRating:        SafetyGreen,
		Allergies:           []string{},
		DietaryRestrictions: []string{},
		Dislikes:            []string{},
		Preferences:         []string{},
		Rank:                1,
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	assert.NotContains(t, string(data), `"price"`)
	assert.NotContains(t, string(data), `"recommendation"`)
	assert.Contains(t, string(data), `"allergies":[]`)
}
