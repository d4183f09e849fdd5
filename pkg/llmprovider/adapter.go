package llmprovider

import (
	"context"

	"task-intake/pkg/gemini"
	"task-intake/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface. The same client
// serves OpenAI, DeepSeek and Qwen endpoints, name tells them apart.
type OpenAIAdapter struct {
	name   string
	client openai.IClient
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter
func NewOpenAIAdapter(name string, client openai.IClient) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openai.Request{
		Messages:     make([]openai.Content, len(req.Messages)),
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
		JSONResponse: req.JSONResponse,
	}
	if req.SystemInstruction != nil {
		sys := toOpenAIContent(*req.SystemInstruction)
		oaReq.SystemInstruction = &sys
	}
	for i, msg := range req.Messages {
		oaReq.Messages[i] = toOpenAIContent(msg)
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	return &Response{
		Content:      Message{Role: resp.Content.Role, Parts: parts},
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage:        (*Usage)(resp.Usage),
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func toOpenAIContent(msg Message) openai.Content {
	parts := make([]openai.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = openai.Part{Text: p.Text}
	}
	return openai.Content{Role: msg.Role, Parts: parts}
}

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client gemini.IClient
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IClient) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	gReq := &gemini.Request{
		Messages:     make([]gemini.Content, len(req.Messages)),
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
		JSONResponse: req.JSONResponse,
	}
	if req.SystemInstruction != nil {
		sys := toGeminiContent(*req.SystemInstruction)
		gReq.SystemInstruction = &sys
	}
	for i, msg := range req.Messages {
		gReq.Messages[i] = toGeminiContent(msg)
	}

	resp, err := a.client.GenerateContent(ctx, gReq)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	return &Response{
		Content:      Message{Role: resp.Content.Role, Parts: parts},
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        (*Usage)(resp.Usage),
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiContent(msg Message) gemini.Content {
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return gemini.Content{Role: msg.Role, Parts: parts}
}
