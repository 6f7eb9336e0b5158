package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/domain"
)

// Verificar en tiempo de compilación que GeminiService implementa TextCompleter.
var _ ports.TextCompleter = (*GeminiService)(nil)

// DefaultGeminiModel modelo usado cuando GEMINI_MODEL no está definido.
const DefaultGeminiModel = "gemini-3-flash-preview"

// GeminiService adaptador que implementa TextCompleter con el SDK oficial de Google Gemini.
// El cliente se crea una sola vez y se reutiliza entre llamadas; cerrar con Close.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiService construye el adaptador. Sin apiKey devuelve ErrAIUnavailable.
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: GEMINI_API_KEY no configurado: %w", domain.ErrAIUnavailable)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: crear cliente: %w", err)
	}
	return &GeminiService{client: client, model: client.GenerativeModel(model)}, nil
}

// Complete envía el prompt como un único turno de usuario y concatena las partes de texto
// del primer candidato.
func (s *GeminiService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("gemini: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return candidateText(resp), nil
}

// Close libera la conexión gRPC del cliente.
func (s *GeminiService) Close() error {
	return s.client.Close()
}

func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(b.String())
}
