package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fitfocus/fitfocus/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-3-flash-preview"

	// One coach sentence, the same sampling the hosted UI used.
	temperature = 0.7
)

var (
	ErrNoAPIKey      = errors.New("coach: api key not configured")
	ErrEmptyResponse = errors.New("coach: empty response")
)

// Client is a stateless wrapper around the hosted generateContent API.
// Requests are single-shot: no retry, no timeout of its own.
type Client struct {
	apiKey  string
	modelID string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		modelID: DefaultModel,
		baseURL: defaultBaseURL,
		client:  &http.Client{},
	}
}

// WithModel overrides the model identifier.
func (c *Client) WithModel(modelID string) *Client {
	if modelID != "" {
		c.modelID = modelID
	}
	return c
}

// WithBaseURL points the client at a different API host.
func (c *Client) WithBaseURL(baseURL string) *Client {
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return c
}

// Turn is one entry of the ephemeral chat transcript.
type Turn struct {
	Text   string
	IsUser bool
}

// FeedbackRequest carries everything the daily feedback prompt needs.
type FeedbackRequest struct {
	CurrentWeight float64
	History       []model.WeightRecord
	Profile       model.UserProfile
	Language      model.Language
	Persona       model.Persona
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateRequest struct {
	SystemInstruction *generateContent  `json:"system_instruction,omitempty"`
	Contents          []generateContent `json:"contents"`
	GenerationConfig  generationConfig  `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// DailyFeedback asks the coach for one sentence about today's weigh-in.
// The previous recorded weight is the last history entry before today's
// value, or "N/A" when the history is empty. Callers substitute
// Fallback(lang) whenever an error is returned.
func (c *Client) DailyFeedback(ctx context.Context, req FeedbackRequest) (string, error) {
	previous := "N/A"
	if len(req.History) > 0 {
		previous = fmt.Sprintf("%v", req.History[len(req.History)-1].Weight)
	}
	prompt := fmt.Sprintf(
		"Context: Initial %vkg, Target %vkg, Yesterday %skg, Today %vkg.\n"+
			"Task: Give ONE short response based on your persona. NO Markdown, NO stars, NO bolding. "+
			"Strictly ONE sentence. For strict coach: be encouraging and proud if the weight dropped or stayed same.",
		req.Profile.InitialWeight, req.Profile.TargetWeight, previous, req.CurrentWeight,
	)
	contents := []generateContent{{Role: "user", Parts: []generatePart{{Text: prompt}}}}
	text, err := c.generate(ctx, Instruction(req.Persona, req.Language), contents)
	if err != nil {
		return "", err
	}
	if text == "" {
		return EmptyFeedback(req.Language), nil
	}
	return text, nil
}

// Chat forwards the transcript plus the new message to the coach. Callers
// substitute ChatFallback(lang) whenever an error is returned.
func (c *Client) Chat(ctx context.Context, message string, turns []Turn, lang model.Language, persona model.Persona) (string, error) {
	contents := make([]generateContent, 0, len(turns)+1)
	for _, turn := range turns {
		role := "model"
		if turn.IsUser {
			role = "user"
		}
		contents = append(contents, generateContent{Role: role, Parts: []generatePart{{Text: turn.Text}}})
	}
	contents = append(contents, generateContent{Role: "user", Parts: []generatePart{{Text: message}}})

	text, err := c.generate(ctx, Instruction(persona, lang), contents)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (c *Client) generate(ctx context.Context, instruction string, contents []generateContent) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(generateRequest{
		SystemInstruction: &generateContent{Parts: []generatePart{{Text: instruction}}},
		Contents:          contents,
		GenerationConfig:  generationConfig{Temperature: temperature},
	})
	if err != nil {
		return "", fmt.Errorf("coach: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.modelID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("coach: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("coach: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("coach: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("coach: api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("coach: api error (%d): %s", resp.StatusCode, string(respBody))
	}

	var out generateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("coach: decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return StripMarkdown(out.Candidates[0].Content.Parts[0].Text), nil
}
