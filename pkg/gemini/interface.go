package gemini

import "context"

// IClient is a client for the Gemini generateContent API.
// Implementations are safe for concurrent use.
type IClient interface {
	// GenerateContent sends a single-turn or multi-turn generation request.
	// With Request.JSONResponse set, the model is asked for a JSON document.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New validates cfg, fills its defaults and returns a client.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
