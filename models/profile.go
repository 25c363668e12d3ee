package models

import "strings"

// Profile holds a user's dietary constraints. All four lists may be empty at
// the same time; that is a valid profile, not an error.
type Profile struct {
	UserID              string   `json:"userId"`
	PreferredLanguage   string   `json:"preferredLanguage"`
	Allergies           []string `json:"allergies"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Dislikes            []string `json:"dislikes"`
	Preferences         []string `json:"preferences"`
}

// ProfileDocument is the Firestore shape of a profile. The list fields are
// stored as comma-separated strings, matching the original database columns.
type ProfileDocument struct {
	UserID              string `firestore:"userId"`
	PreferredLanguage   string `firestore:"preferredLanguage"`
	Allergies           string `firestore:"userAllergies"`
	DietaryRestrictions string `firestore:"userDietaryRestrictions"`
	Dislikes            string `firestore:"userDislikes"`
	Preferences         string `firestore:"userPreferences"`
}

// Language is a selectable translation language.
type Language struct {
	ID   string `json:"id" firestore:"languageId"`
	Name string `json:"name" firestore:"languageName"`
}

// SplitList turns a stored comma-separated value into a clean list:
// entries trimmed, blanks dropped, insertion order preserved.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	var list []string
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			list = append(list, entry)
		}
	}
	if list == nil {
		return []string{}
	}
	return list
}

// JoinList is the inverse of SplitList for writes back to Firestore.
func JoinList(list []string) string {
	return strings.Join(list, ",")
}

// DedupeFold removes case-insensitive duplicates, keeping the first
// occurrence so display order is stable.
func DedupeFold(list []string) []string {
	seen := make(map[string]bool, len(list))
	var out []string
	for _, entry := range list {
		key := strings.ToLower(strings.TrimSpace(entry))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, entry)
	}
	if out == nil {
		return []string{}
	}
	return out
}

// ToProfile converts the stored document to the domain model.
func (d *ProfileDocument) ToProfile() *Profile {
	return &Profile{
		UserID:              d.UserID,
		PreferredLanguage:   d.PreferredLanguage,
		Allergies:           SplitList(d.Allergies),
		DietaryRestrictions: SplitList(d.DietaryRestrictions),
		Dislikes:            SplitList(d.Dislikes),
		Preferences:         SplitList(d.Preferences),
	}
}

// ToDocument converts the domain model to its stored shape.
func (p *Profile) ToDocument() *ProfileDocument {
	return &ProfileDocument{
		UserID:              p.UserID,
		PreferredLanguage:   p.PreferredLanguage,
		Allergies:           JoinList(p.Allergies),
		DietaryRestrictions: JoinList(p.DietaryRestrictions),
		Dislikes:            JoinList(p.Dislikes),
		Preferences:         JoinList(p.Preferences),
	}
}
