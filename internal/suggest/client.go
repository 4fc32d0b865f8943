// Package suggest is the boundary to the AI suggestion service. Suggestions
// are a non-essential enhancement: every failure here (missing key, network,
// bad payload) degrades to an empty result, never an error the caller must
// handle. Results only feed into later AddBehavior/AddReward calls made
// explicitly by the user.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const defaultModel = "gemini-2.5-flash"

// BehaviorSuggestion is a proposed behavior with a point value
type BehaviorSuggestion struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// RewardSuggestion is a proposed reward with a point cost
type RewardSuggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
}

// Client calls the Gemini generateContent API with structured-output schemas
type Client struct {
	client *resty.Client
	apiKey string
	model  string
	log    zerolog.Logger
}

// NewClient creates a suggestion client. An empty API key disables the
// service; every query then returns empty results.
func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)

	return &Client{
		client: c,
		apiKey: apiKey,
		model:  defaultModel,
		log:    log,
	}
}

// Enabled reports whether an API key is configured
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// BehaviorSuggestions proposes behaviors for the given category, "good"
// habits or household "chore" tasks
func (c *Client) BehaviorSuggestions(ctx context.Context, category string) []BehaviorSuggestion {
	prompt := "Suggest 5 positive habits and behaviors for children. For each, give a name and a suggested point value between 5 and 25."
	if category == "chore" {
		prompt = "Suggest 5 household chores suitable for children. For each, give a name and a suggested point value between 10 and 30."
	}

	schema := map[string]interface{}{
		"type": "ARRAY",
		"items": map[string]interface{}{
			"type": "OBJECT",
			"properties": map[string]interface{}{
				"name":   map[string]interface{}{"type": "STRING"},
				"points": map[string]interface{}{"type": "INTEGER"},
			},
			"required": []string{"name", "points"},
		},
	}

	var suggestions []BehaviorSuggestion
	if !c.generate(ctx, prompt, schema, &suggestions) {
		return nil
	}
	return suggestions
}

// RewardSuggestions proposes rewards, optionally personalised with the
// family's kid names
func (c *Client) RewardSuggestions(ctx context.Context, kidNames string) []RewardSuggestion {
	prompt := "Suggest 5 fun rewards suitable for children. "
	if kidNames != "" {
		prompt += fmt.Sprintf("The children are named %s. ", kidNames)
	}
	prompt += "The suggestions should be varied. For each reward, give a name, a short description, and a suggested cost in points between 50 and 500."

	schema := map[string]interface{}{
		"type": "ARRAY",
		"items": map[string]interface{}{
			"type": "OBJECT",
			"properties": map[string]interface{}{
				"name":        map[string]interface{}{"type": "STRING"},
				"description": map[string]interface{}{"type": "STRING"},
				"cost":        map[string]interface{}{"type": "INTEGER"},
			},
			"required": []string{"name", "description", "cost"},
		},
	}

	var suggestions []RewardSuggestion
	if !c.generate(ctx, prompt, schema, &suggestions) {
		return nil
	}
	return suggestions
}

// IconSuggestions proposes up to 3 emoji for a label
func (c *Client) IconSuggestions(ctx context.Context, label string) []string {
	prompt := fmt.Sprintf("Suggest 3 emojis that fit the following: %q. Provide only the emojis.", label)

	schema := map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"emojis": map[string]interface{}{
				"type":  "ARRAY",
				"items": map[string]interface{}{"type": "STRING"},
			},
		},
		"required": []string{"emojis"},
	}

	var result struct {
		Emojis []string `json:"emojis"`
	}
	if !c.generate(ctx, prompt, schema, &result) {
		return nil
	}
	return result.Emojis
}

type generateRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type requestContent struct {
	Parts []textPart `json:"parts"`
}

type textPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string                 `json:"responseMimeType"`
	ResponseSchema   map[string]interface{} `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []textPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate runs one structured-output completion and unmarshals the model's
// JSON text into out. Returns false on any failure.
func (c *Client) generate(ctx context.Context, prompt string, schema map[string]interface{}, out interface{}) bool {
	if !c.Enabled() {
		return false
	}

	reqBody := generateRequest{
		Contents: []requestContent{{Parts: []textPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(&reqBody).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		c.log.Warn().Err(err).Msg("suggestion request failed")
		return false
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode()).Msg("suggestion request rejected")
		return false
	}

	var gr generateResponse
	if err := json.Unmarshal(resp.Body(), &gr); err != nil {
		c.log.Warn().Err(err).Msg("failed to decode suggestion response")
		return false
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		c.log.Debug().Msg("suggestion response has no candidates")
		return false
	}

	if err := json.Unmarshal([]byte(gr.Candidates[0].Content.Parts[0].Text), out); err != nil {
		c.log.Warn().Err(err).Msg("failed to parse suggestion payload")
		return false
	}
	return true
}
