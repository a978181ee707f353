package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"device-compare/internal/model"
	"device-compare/internal/schema"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.5-flash"

// GeminiConfig holds the settings needed to build a GeminiProvider.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	// Timeout bounds a single backend call. Zero means no extra bound.
	Timeout time.Duration
	// ClientOptions are appended after the API key (e.g. a custom endpoint).
	ClientOptions []option.ClientOption
}

// GeminiProvider talks to Google's Gemini API through the generative-ai-go SDK.
// A single provider (and its underlying client) is shared by the whole process.
type GeminiProvider struct {
	client      *genai.Client
	modelName   string
	temperature float32
	timeout     time.Duration
}

// NewGeminiProvider creates the process-wide Gemini client.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini API key is not set")
	}
	opts := append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, cfg.ClientOptions...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultModel
	}

	return &GeminiProvider{
		client:      client,
		modelName:   modelName,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}, nil
}

// Close releases the underlying client.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// newModel returns a fresh model handle. Handles are cheap and not shared
// between calls, so concurrent requests never see each other's settings.
func (p *GeminiProvider) newModel() *genai.GenerativeModel {
	m := p.client.GenerativeModel(p.modelName)
	if p.temperature > 0 {
		m.SetTemperature(p.temperature)
	}
	return m
}

func (p *GeminiProvider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.timeout)
}

func (p *GeminiProvider) GenerateJSON(ctx context.Context, prompt string, outputSchema *schema.Node) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	m := p.newModel()
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = outputSchema.ToGenai()

	start := time.Now()
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate request failed: %w", err)
	}
	slog.Debug("Gemini structured generation finished", "model", p.modelName, "duration", time.Since(start))

	return extractText(resp), nil
}

func (p *GeminiProvider) Chat(ctx context.Context, systemInstruction string, history []model.ChatMessage, message string) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	m := p.newModel()
	if systemInstruction != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	}

	cs := m.StartChat()
	cs.History = toContents(history)

	start := time.Now()
	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini chat request failed: %w", err)
	}
	slog.Debug("Gemini chat turn finished", "model", p.modelName, "history_len", len(history), "duration", time.Since(start))

	return extractText(resp), nil
}

// toContents converts chat messages into SDK contents, one text part each.
func toContents(messages []model.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		contents = append(contents, &genai.Content{
			Role:  string(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

// extractText concatenates the text parts of the first candidate that has content.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	if len(resp.Candidates) == 0 && resp.PromptFeedback != nil {
		slog.Warn("Gemini returned no candidates", "block_reason", resp.PromptFeedback.BlockReason.String())
		return ""
	}

	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		if cand.FinishReason != genai.FinishReasonStop && cand.FinishReason != genai.FinishReasonUnspecified {
			slog.Warn("Gemini stopped early", "finish_reason", cand.FinishReason.String())
		}
		var text strings.Builder
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
		return text.String()
	}
	return ""
}
