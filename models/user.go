package models

import "time"

type User struct {
	ID                 string    `json:"id" firestore:"id"`
	Email              string    `json:"email" firestore:"email"`
	Username           string    `json:"username" firestore:"username"`
	OnboardingComplete bool      `json:"onboardingComplete" firestore:"onboardingComplete"`
	CreatedAt          time.Time `json:"createdAt" firestore:"createdAt"`
}
