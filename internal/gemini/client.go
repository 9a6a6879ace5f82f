package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrTransport marks network-level failures reaching the provider.
	ErrTransport = errors.New("gemini: request failed")
	// ErrProvider marks non-success responses from the provider.
	ErrProvider = errors.New("gemini: provider returned an error")
)

// Config carries the provider endpoint and credentials. It is injected at
// construction instead of being read from the environment ad hoc.
type Config struct {
	APIURL  string        `env:"GEMINI_API_URL,required"`
	APIKey  string        `env:"GEMINI_API_KEY,required"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"60s"`
}

// Client performs one-shot generation calls against the Gemini HTTP API.
// The underlying http.Client pools connections and is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	Content []content `json:"content"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate posts the prompt and returns the raw response body. It performs
// exactly one call: no retries. Failures are wrapped with ErrTransport or
// ErrProvider so callers can tell the two apart.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	body, err := json.Marshal(generateRequest{
		Content: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrProvider, providerDetail(resp.StatusCode, raw))
	}
	return raw, nil
}

// providerDetail prefers the message field of the provider's error body and
// falls back to the bare status code when the body is not the expected shape.
func providerDetail(status int, raw []byte) string {
	var er errorResponse
	if err := json.Unmarshal(raw, &er); err == nil {
		if msg := strings.TrimSpace(er.Error.Message); msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("status %d", status)
}
