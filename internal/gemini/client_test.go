package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emailwriter/internal/gemini"
)

func TestGeneratePostsPromptAndReturnsRawBody(t *testing.T) {
	t.Parallel()

	const responseBody = `{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-key", r.Header.Get("X-goog-api-key"))

		var payload struct {
			Content []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Content, 1)
		require.Len(t, payload.Content[0].Parts, 1)
		assert.Equal(t, "say hello", payload.Content[0].Parts[0].Text)

		_, _ = w.Write([]byte(responseBody))
	}))
	defer srv.Close()

	client := gemini.NewClient(gemini.Config{APIURL: srv.URL, APIKey: "test-key"})
	raw, err := client.Generate(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, responseBody, string(raw))
}

func TestGenerateProviderErrorWithMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	client := gemini.NewClient(gemini.Config{APIURL: srv.URL, APIKey: "bad-key"})
	_, err := client.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, gemini.ErrProvider)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGenerateProviderErrorWithoutParsableBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	client := gemini.NewClient(gemini.Config{APIURL: srv.URL, APIKey: "key"})
	_, err := client.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, gemini.ErrProvider)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGenerateTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // unreachable endpoint

	client := gemini.NewClient(gemini.Config{APIURL: srv.URL, APIKey: "key", Timeout: time.Second})
	_, err := client.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, gemini.ErrTransport)
}
