package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/domain"
)

// Verificar en tiempo de compilación que AnthropicService implementa TextCompleter.
var _ ports.TextCompleter = (*AnthropicService)(nil)

const (
	anthropicBaseURL  = "https://api.anthropic.com"
	anthropicVersion  = "2023-06-01"
	anthropicMaxToken = 1024
)

// AnthropicService adaptador que implementa TextCompleter usando la API REST de Anthropic (Claude).
type AnthropicService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// AnthropicOption personaliza el adaptador (URL base en pruebas, cliente HTTP propio).
type AnthropicOption func(*AnthropicService)

// WithBaseURL cambia el host de la API.
func WithBaseURL(u string) AnthropicOption {
	return func(s *AnthropicService) { s.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient reemplaza el cliente HTTP.
func WithHTTPClient(c *http.Client) AnthropicOption {
	return func(s *AnthropicService) { s.httpClient = c }
}

// NewAnthropicService construye el adaptador.
// Si apiKey está vacío las llamadas devuelven ErrAIUnavailable en lugar de ir a la red.
func NewAnthropicService(apiKey, model string, opts ...AnthropicOption) *AnthropicService {
	s := &AnthropicService{
		apiKey:  apiKey,
		model:   model,
		baseURL: anthropicBaseURL,
		httpClient: &http.Client{
			// Timeout de red; el use case impone además su propio context.WithTimeout.
			Timeout: 25 * time.Second,
		},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Complete envía el prompt como mensaje de usuario y devuelve los bloques de texto concatenados.
func (s *AnthropicService) Complete(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("anthropic: ANTHROPIC_API_KEY no configurado: %w", domain.ErrAIUnavailable)
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     s.model,
		MaxTokens: anthropicMaxToken,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("anthropic: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("anthropic: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("anthropic: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("anthropic: leer respuesta: %w", err)
	}

	var parsed anthropicResponse
	jsonErr := json.Unmarshal(rawBody, &parsed)
	if resp.StatusCode != http.StatusOK {
		if jsonErr == nil && parsed.Error != nil {
			return "", fmt.Errorf("anthropic: error (%s): %s", parsed.Error.Type, parsed.Error.Message)
		}
		return "", fmt.Errorf("anthropic: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	if jsonErr != nil {
		return "", fmt.Errorf("anthropic: deserializar respuesta: %w", jsonErr)
	}

	var b strings.Builder
	for _, c := range parsed.Content {
		if c.Type == "text" {
			b.WriteString(c.Text)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
