package generator_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emailwriter/internal/generator"
)

type stubProvider struct {
	lastPrompt string
	raw        []byte
	err        error
}

func (s *stubProvider) Generate(_ context.Context, prompt string) ([]byte, error) {
	s.lastPrompt = prompt
	return s.raw, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateReplyPipeline(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{raw: []byte(`{"candidates":[{"content":{"parts":[{"text":"Dear Sam, Thursday works."}]}}]}`)}
	svc := generator.NewService(provider, discardLogger())

	reply, err := svc.GenerateReply(context.Background(), generator.Request{
		EmailContent: "Can we move the sync to Thursday?",
		Tone:         "formal",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dear Sam, Thursday works.", reply)
	assert.Contains(t, provider.lastPrompt, "Keep the tone formal")
	assert.Contains(t, provider.lastPrompt, "Can we move the sync to Thursday?")
}

func TestGenerateReplyPropagatesProviderError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("connection refused")
	provider := &stubProvider{err: wantErr}
	svc := generator.NewService(provider, discardLogger())

	_, err := svc.GenerateReply(context.Background(), generator.Request{EmailContent: "hello"})
	require.ErrorIs(t, err, wantErr)
}

func TestGenerateReplyAbsorbsExtractionAnomalies(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{raw: []byte(`{"candidates":[]}`)}
	svc := generator.NewService(provider, discardLogger())

	reply, err := svc.GenerateReply(context.Background(), generator.Request{EmailContent: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "No response from Gemini.", reply)

	provider.raw = []byte("garbage")
	reply, err = svc.GenerateReply(context.Background(), generator.Request{EmailContent: "hello"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply, "Error Processing message : "), "got %q", reply)
}
