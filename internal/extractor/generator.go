package extractor

import (
	"context"

	"github.com/google/generative-ai-go/genai"
)

// MIME types understood by the generative-model service.
const (
	MIMETypeJSON      = "application/json"
	MIMETypePlainText = "text/plain"
)

// GenerateRequest is a single prompt sent to the generative-model service.
type GenerateRequest struct {
	Prompt string
	// MIMEType constrains the response format. Empty leaves the service default.
	MIMEType string
	// Schema, when set, constrains a JSON response to the given shape.
	Schema *genai.Schema
}

// Generator is the generative-model capability. It is constructed once from
// configuration and injected, so tests can substitute a fake.
//
// Implementations issue exactly one outbound call per Generate and apply no
// timeout or retry of their own; deadlines come from ctx.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req GenerateRequest) (string, error)

// Generate implements Generator.
func (f GeneratorFunc) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	return f(ctx, req)
}
