package environment

import "os"

func GetOpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func GetOpenAIModel() string {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o"
	}
	return model
}

func GetVisionAPIKey() string {
	return os.Getenv("VISION_API_KEY")
}

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}

func GetFirebaseWebAPIKey() string {
	return os.Getenv("FIREBASE_WEB_API_KEY")
}

func GetJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}
