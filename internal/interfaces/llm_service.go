package interfaces

import (
	"context"
)

// LLMService defines text generation against a hosted model.
type LLMService interface {
	// Complete submits a single prompt and returns the model's text response.
	//
	// The credential is supplied per call and is never retained by the
	// implementation, so concurrent requests may use different keys.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout control
	//   - prompt: Fully rendered prompt text
	//   - credential: API key used for this call only
	//   - model: Model name, empty for the configured default
	//
	// Returns:
	//   - string: Raw model response text
	//   - error: Authentication, quota, network or empty-response failures
	Complete(ctx context.Context, prompt, credential, model string) (string, error)

	// DefaultModel returns the model used when Complete is called with an empty model name
	DefaultModel() string
}
