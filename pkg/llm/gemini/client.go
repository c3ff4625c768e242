package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/artem13815/skillpath/pkg/llm"
)

const DefaultModel = "gemini-2.0-flash"

// Client generates text through the Gemini API.
type Client struct {
	Model  string
	models *genai.Models
}

// Config holds what New needs to build the underlying genai client.
// BaseURL is only set when talking to a proxy or a test server.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// New creates the genai client once; it is safe for concurrent use.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{Model: model, models: client.Models}, nil
}

var _ llm.TextGenerator = (*Client)(nil)

// Generate returns the text of the first part of the first candidate.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return firstCandidateText(resp)
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", llm.ErrNoCandidates
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil || content.Parts[0].Text == "" {
		return "", llm.ErrNoCandidates
	}
	return content.Parts[0].Text, nil
}
