package extraction

import (
	"context"

	"task-intake/internal/model"
	"task-intake/pkg/llmprovider"
	"task-intake/pkg/log"
)

// Extractor turns free-text task descriptions into structured fields.
type Extractor interface {
	// Extract returns a validated result or an *ExtractionError.
	Extract(ctx context.Context, text string) (model.ExtractionResult, error)
}

// New creates an Extractor backed by gen. A nil gen is allowed: every call
// then fails with KindServiceUnavailable.
func New(l log.Logger, gen llmprovider.Generator) Extractor {
	return &implExtractor{
		l:   l,
		gen: gen,
	}
}
