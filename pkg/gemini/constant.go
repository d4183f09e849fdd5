package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second
)

const (
	// generateContentPath is formatted with the API URL and the model name.
	generateContentPath = "%s/models/%s:generateContent"
	headerAPIKey        = "x-goog-api-key"
	mimeTypeJSON        = "application/json"
)
