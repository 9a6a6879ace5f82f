package generator

import (
	"context"
	"log/slog"

	"emailwriter/internal/gemini"
)

// Request carries one reply-generation order. Tone is optional.
type Request struct {
	EmailContent string `json:"emailContent"`
	Tone         string `json:"tone"`
}

// Provider is the outbound port to the generative API.
type Provider interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// Service runs the generation pipeline. It holds no per-request state and is
// safe for concurrent reuse.
type Service struct {
	provider Provider
	log      *slog.Logger
}

func NewService(provider Provider, log *slog.Logger) *Service {
	return &Service{provider: provider, log: log}
}

// GenerateReply builds the prompt, calls the provider and extracts the reply
// text. Provider failures propagate unchanged; extraction anomalies are
// already absorbed into fallback text by the extractor.
func (s *Service) GenerateReply(ctx context.Context, req Request) (string, error) {
	prompt := BuildPrompt(req.EmailContent, req.Tone)
	s.log.DebugContext(ctx, "calling provider",
		slog.Int("prompt_len", len(prompt)),
		slog.String("tone", req.Tone),
	)

	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	reply := gemini.ExtractReply(raw)
	s.log.InfoContext(ctx, "reply generated", slog.Int("reply_len", len(reply)))
	return reply, nil
}
