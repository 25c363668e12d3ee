package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"peanut", "shellfish", "soy"}, SplitList(" peanut , shellfish ,, soy "))
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{}, SplitList("  ,  , "))
}

func TestDedupeFold(t *testing.T) {
	assert.Equal(t, []string{"Peanut", "shrimp"}, DedupeFold([]string{"Peanut", "peanut", "PEANUT", "shrimp"}))
	assert.Equal(t, []string{}, DedupeFold(nil))
	assert.Equal(t, []string{"a"}, DedupeFold([]string{"a", " A "}))
}

func TestProfileDocumentRoundTrip(t *testing.T) {
	profile := &Profile{
		UserID:              "user-1",
		PreferredLanguage:   "French",
		Allergies:           []string{"peanut", "shellfish"},
		DietaryRestrictions: []string{"halal"},
		Dislikes:            []string{},
		Preferences:         []string{"spicy"},
	}

	doc := profile.ToDocument()
	assert.Equal(t, "peanut,shellfish", doc.Allergies)
	assert.Equal(t, "", doc.Dislikes)

	assert.Equal(t, profile, doc.ToProfile())
}

func TestEmptyProfileIsValid(t *testing.T) {
	doc := &ProfileDocument{UserID: "user-1", PreferredLanguage: ""}
	profile := doc.ToProfile()

	assert.Empty(t, profile.Allergies)
	assert.Empty(t, profile.DietaryRestrictions)
	assert.Empty(t, profile.Dislikes)
	assert.Empty(t, profile.Preferences)
}
