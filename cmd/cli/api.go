package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	trimmed := strings.TrimRight(baseURL, "/")
	return &APIClient{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

// GenerateReply posts the email content and tone to the backend and returns
// the reply body as-is. The server already extracted plain text, so there is
// nothing to parse on this side.
func (c *APIClient) GenerateReply(ctx context.Context, emailContent, tone string) (string, error) {
	body, err := json.Marshal(generateRequest{EmailContent: emailContent, Tone: tone})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/email/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post generate: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("post generate: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return string(raw), nil
}
