package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"task-intake/pkg/log"
)

// Manager selects providers in priority order and bounds every call with a
// timeout. Requests are never retried against the same provider.
type Manager struct {
	providers []Provider
	config    Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	// FallbackEnabled lets a failed call move on to the next provider.
	FallbackEnabled bool
	// Timeout bounds one GenerateContent call, fallbacks included.
	Timeout time.Duration
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		if ctx.Err() != nil {
			lastErr = m.wrap(provider, ctx.Err())
			break
		}

		started := time.Now()
		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			m.logger.Infof(ctx, "llmprovider.Manager: provider=%s model=%s input_tokens=%d output_tokens=%d took=%s",
				provider.Name(), provider.Model(), inputTokens(resp), outputTokens(resp), time.Since(started))
			return resp, nil
		}

		lastErr = m.wrap(provider, err)
		m.logger.Warnf(ctx, "llmprovider.Manager: provider=%s model=%s failed: %v", provider.Name(), provider.Model(), err)

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

func (m *Manager) wrap(provider Provider, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}
	return &ProviderError{Provider: provider.Name(), Model: provider.Model(), Err: err}
}

func inputTokens(resp *Response) int {
	if resp == nil || resp.Usage == nil {
		return 0
	}
	return resp.Usage.InputTokens
}

func outputTokens(resp *Response) int {
	if resp == nil || resp.Usage == nil {
		return 0
	}
	return resp.Usage.OutputTokens
}
