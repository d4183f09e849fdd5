package extraction

import (
	"context"

	"task-intake/internal/model"
	"task-intake/pkg/llmprovider"
	"task-intake/pkg/log"
)

type implExtractor struct {
	l   log.Logger
	gen llmprovider.Generator
}

// Extract sends text to the extraction service exactly once.
func (e *implExtractor) Extract(ctx context.Context, text string) (model.ExtractionResult, error) {
	if e.gen == nil {
		return model.ExtractionResult{}, unavailable(llmprovider.ErrNoProvidersConfigured)
	}

	resp, err := e.gen.GenerateContent(ctx, buildRequest(text))
	if err != nil {
		e.l.Warnf(ctx, "extraction.Extract.GenerateContent: %v", err)
		return model.ExtractionResult{}, unavailable(err)
	}

	content := resp.Text()
	result, err := decodeResult(content)
	if err != nil {
		e.l.Warnf(ctx, "extraction.Extract.decodeResult: %v raw=%q", err, content)
		return model.ExtractionResult{}, err
	}

	e.l.Debugf(ctx, "extraction.Extract: provider=%s result=%+v", resp.ProviderName, result)
	return result, nil
}

func buildRequest(text string) *llmprovider.Request {
	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: systemPrompt}},
		},
		Messages: []llmprovider.Message{
			{Role: roleUser, Parts: []llmprovider.Part{{Text: text}}},
		},
		Temperature:  temperature,
		MaxTokens:    maxTokens,
		JSONResponse: true,
	}
}
