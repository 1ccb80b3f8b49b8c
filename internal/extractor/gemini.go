package extractor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fjacquet/smart-benefit/internal/benefiterror"
	"fjacquet/smart-benefit/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// GeminiGenerator implements Generator with the Google Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	logger logging.Logger
}

// NewGeminiGenerator creates a Gemini-backed Generator.
// It returns benefiterror.ErrNotConfigured when apiKey is empty.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, logger logging.Logger) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, benefiterror.ErrNotConfigured
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Model returns the configured model name.
func (g *GeminiGenerator) Model() string {
	return g.model
}

// Generate sends req to Gemini and returns the text of the first candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	// Response settings live on the model, so concurrent calls each get their own.
	model := g.client.GenerativeModel(g.model)
	if req.MIMEType != "" {
		model.ResponseMIMEType = req.MIMEType
	}
	if req.Schema != nil {
		model.ResponseSchema = req.Schema
	}

	start := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	g.logger.Debug("Gemini response received",
		logging.Field{Key: logging.FieldModel, Value: g.model},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	return responseText(resp), nil
}

// Close releases the underlying client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
