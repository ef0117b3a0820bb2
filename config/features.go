package config

import "os"

type Features struct {
	AIAnalysis    bool
	Notifications bool
	Database      bool
	Admin         bool
}

// LoadFeatures derives the feature flags from the environment. A feature is
// on when the credentials it needs are present.
func LoadFeatures() Features {
	return Features{
		AIAnalysis:    GeminiAPIKey() != "",
		Notifications: os.Getenv("SENDGRID_API_KEY") != "" || os.Getenv("SLACK_WEBHOOK_URL") != "",
		Database:      os.Getenv("DATABASE_URL") != "",
		Admin:         os.Getenv("JWT_SECRET") != "" && os.Getenv("ADMIN_PASSWORD_HASH") != "",
	}
}

// GeminiAPIKey accepts either of the two names the Gemini tooling uses.
func GeminiAPIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}
