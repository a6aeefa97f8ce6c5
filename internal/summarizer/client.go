package summarizer

import (
	"context"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
)

const (
	defaultModel           = "gemini-1.5-pro"
	defaultMaxOutputTokens = int32(8192)
	defaultTemperature     = float32(0.7)
)

// Options configures the summarizer model. Zero values fall back to the
// defaults, so tests can inject only what they need.
type Options struct {
	// Model is the Gemini model name
	Model string

	// Prompt is the instruction text sent with the recording
	Prompt string

	// MaxOutputTokens bounds the generated summary length
	MaxOutputTokens int32

	// Temperature is the fixed sampling temperature
	Temperature float32
}

func (o *Options) withDefaults() Options {
	opts := Options{
		Model:           defaultModel,
		Prompt:          DefaultPrompt,
		MaxOutputTokens: defaultMaxOutputTokens,
		Temperature:     defaultTemperature,
	}
	if o == nil {
		return opts
	}
	if o.Model != "" {
		opts.Model = o.Model
	}
	if o.Prompt != "" {
		opts.Prompt = o.Prompt
	}
	if o.MaxOutputTokens > 0 {
		opts.MaxOutputTokens = o.MaxOutputTokens
	}
	if o.Temperature > 0 {
		opts.Temperature = o.Temperature
	}
	return opts
}

// Client holds the pre-configured generative model for summarization
type Client struct {
	model      *genai.GenerativeModel
	prompt     string
	baseClient *genai.Client
}

// NewClient creates a summarizer backed by Vertex AI in the given project
// and region
func NewClient(ctx context.Context, projectID, region string, options *Options) (*Client, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("projectID and region cannot be empty")
	}

	opts := options.withDefaults()

	baseClient, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	model := baseClient.GenerativeModel(opts.Model)
	model.GenerationConfig = genai.GenerationConfig{
		MaxOutputTokens: genai.Ptr(opts.MaxOutputTokens),
		Temperature:     genai.Ptr(opts.Temperature),
	}

	return &Client{
		model:      model,
		prompt:     opts.Prompt,
		baseClient: baseClient,
	}, nil
}

// Summarize sends the recording payload inline with the instruction prompt
// and returns the first candidate's first text part. The call is attempted
// exactly once; any failure surfaces as an error for the caller to handle.
func (c *Client) Summarize(ctx context.Context, data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("recording payload is empty")
	}
	if mimeType == "" {
		return "", fmt.Errorf("mimeType is required")
	}

	resp, err := c.model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(c.prompt),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	text, err := firstText(resp)
	if err != nil {
		return "", err
	}

	return text, nil
}

// Close releases the underlying Vertex AI client
func (c *Client) Close() error {
	if c.baseClient != nil {
		return c.baseClient.Close()
	}
	return nil
}

// firstText extracts the first text part of the first candidate
func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("model candidate has no content parts")
	}

	if text, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return string(text), nil
	}

	return "", fmt.Errorf("model candidate's first part is not text")
}
