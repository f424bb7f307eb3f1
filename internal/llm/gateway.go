package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vakeel-api/internal/domain"
)

// Request es un pedido ya armado para el gateway.
type Request struct {
	Prompt   string
	Language domain.Language
	Kind     domain.MessageKind
}

// Gateway envuelve al LLMClient y nunca devuelve error: sin cliente responde
// con textos simulados y ante fallas o timeout con un texto localizado.
// No reintenta; el llamador puede reenviar.
type Gateway struct {
	client  LLMClient
	timeout time.Duration
	logger  *zap.Logger
}

// NewGateway acepta client nil para el modo simulado (sin LLM_API_KEY).
func NewGateway(client LLMClient, timeout time.Duration, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Gateway{client: client, timeout: timeout, logger: logger}
}

// Mock indica si el gateway responde con textos simulados.
func (g *Gateway) Mock() bool {
	return g == nil || g.client == nil
}

func (g *Gateway) Respond(ctx context.Context, req Request) string {
	if g.Mock() {
		return MockResponse(req.Language, req.Kind)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	out, err := g.client.Generate(ctx, SystemPrompt(req.Language), req.Prompt)
	if err != nil {
		g.logger.Warn("llm call failed, using fallback response",
			zap.Error(err),
			zap.String("language", string(req.Language)),
			zap.String("kind", string(req.Kind)),
			zap.Duration("latency", time.Since(start)),
		)
		return FallbackResponse(req.Language)
	}
	return out
}
