package llm

import "context"

// disabledClient stands in when no model backend is configured. Every
// Generate call reports ErrUnavailable, which routes callers onto their
// deterministic fallbacks.
type disabledClient struct{}

// NewDisabledClient creates a Client that is never available.
func NewDisabledClient() Client {
	return disabledClient{}
}

func (disabledClient) Generate(context.Context, GenerateRequest) (*GenerateResponse, error) {
	return nil, ErrUnavailable
}

func (disabledClient) Available(context.Context) bool { return false }
