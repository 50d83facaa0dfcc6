package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Hugging Face hosted inference endpoint.
	DefaultBaseURL = "https://api-inference.huggingface.co"
	// DefaultModel is a multilingual MNLI model with usable Hebrew support.
	DefaultModel = "valhalla/distilbart-mnli-12-3"
)

// Config holds settings for the Hugging Face client.
type Config struct {
	BaseURL string
	Model   string
	Token   string
	Timeout time.Duration
}

// HuggingFaceClient calls the zero-shot-classification inference API.
// It performs no caching, no retries, and no fallback.
type HuggingFaceClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	token      string
}

func NewHuggingFaceClient(cfg Config) *HuggingFaceClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &HuggingFaceClient{
		baseURL: baseURL,
		model:   model,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Classify returns the label the model judges most likely for the text.
// Labels come back ordered by descending score; the first one wins.
func (c *HuggingFaceClient) Classify(ctx context.Context, text string, labels []string) (string, error) {
	if len(labels) == 0 {
		return "", ErrNoLabels
	}

	body, err := json.Marshal(zeroShotRequest{
		Inputs:     text,
		Parameters: zeroShotParameters{CandidateLabels: labels},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/models/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result zeroShotResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(result.Labels) == 0 {
		return "", fmt.Errorf("no labels in response")
	}

	return result.Labels[0], nil
}
