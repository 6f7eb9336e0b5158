package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	"github.com/jhoicas/subguard-api/pkg/logger"
)

// DefaultAITimeout tiempo máximo de una llamada al modelo si no se configura otro.
const DefaultAITimeout = 15 * time.Second

// AIProfileRiskScore puntaje asignado a las fichas generadas por IA.
const AIProfileRiskScore = 50

const fallbackReply = "I couldn't process that data."

// AIUseCase asistente financiero y generación de fichas de activos.
// Cada llamada al modelo se acota con un timeout para no bloquear el servidor.
type AIUseCase struct {
	llm     ports.TextCompleter
	assets  repository.AssetRepository
	timeout time.Duration
	log     *logger.Logger
}

// NewAIUseCase construye el caso de uso. llm puede ser nil si no hay proveedor configurado.
func NewAIUseCase(llm ports.TextCompleter, assets repository.AssetRepository, timeout time.Duration, log *logger.Logger) *AIUseCase {
	if timeout <= 0 {
		timeout = DefaultAITimeout
	}
	return &AIUseCase{llm: llm, assets: assets, timeout: timeout, log: log}
}

// assetContext campos del registro que recibe el modelo.
type assetContext struct {
	Name        string      `json:"name"`
	Amount      json.Number `json:"amount"`
	Type        string      `json:"type"`
	Department  string      `json:"department"`
	Utilization int         `json:"utilization"`
	Vendor      string      `json:"vendor"`
	Renewal     string      `json:"renewal"`
}

// Chat responde una pregunta sobre el registro completo.
func (uc *AIUseCase) Chat(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("message es obligatorio: %w", domain.ErrInvalidInput)
	}
	assets, err := uc.assets.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("cargar activos: %w", err)
	}
	rows := make([]assetContext, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, assetContext{
			Name:        a.Name,
			Amount:      json.Number(a.Amount.String()),
			Type:        string(a.Type),
			Department:  a.Department,
			Utilization: a.Utilization,
			Vendor:      a.Vendor,
			Renewal:     a.NextRenewal,
		})
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("serializar contexto: %w", err)
	}

	prompt := fmt.Sprintf("You are SubGuard's AI CFO Assistant. Answer the user's question based on this asset data: %s.\n"+
		"User Question: %q\n"+
		"Keep the answer concise (max 3 sentences), financial, and actionable. If calculating totals, be precise.",
		data, question)

	reply, err := uc.complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	if reply == "" {
		return fallbackReply, nil
	}
	return reply, nil
}

// GenerateAssetProfile pide descripción y 3 factores de riesgo con el formato
// "Descripción|Riesgo1, Riesgo2, Riesgo3".
func (uc *AIUseCase) GenerateAssetProfile(ctx context.Context, in dto.AssetProfileRequest) (*dto.AssetProfileDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	}
	vendor := strings.TrimSpace(in.Vendor)
	if vendor == "" {
		vendor = "Unknown"
	}
	prompt := fmt.Sprintf("Generate a professional business description (max 2 sentences) and 3 potential risk factors "+
		"(comma separated) for a software/asset named %q from vendor %q.\nFormat: Description|Risk1, Risk2, Risk3", name, vendor)

	text, err := uc.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseAssetProfile(text), nil
}

// ParseAssetProfile interpreta la respuesta "Descripción|R1, R2, R3". Las partes
// ausentes quedan vacías; el puntaje de riesgo es siempre el valor medio.
func ParseAssetProfile(text string) *dto.AssetProfileDTO {
	out := &dto.AssetProfileDTO{RiskFactors: []string{}, RiskScore: AIProfileRiskScore}
	desc, risks, found := strings.Cut(text, "|")
	out.Notes = strings.TrimSpace(desc)
	if !found {
		return out
	}
	if i := strings.Index(risks, "|"); i >= 0 {
		risks = risks[:i]
	}
	for _, r := range strings.Split(risks, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out.RiskFactors = append(out.RiskFactors, r)
		}
	}
	return out
}

func (uc *AIUseCase) complete(ctx context.Context, prompt string) (string, error) {
	if uc.llm == nil {
		return "", domain.ErrAIUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	text, err := uc.llm.Complete(ctx, prompt)
	if err != nil {
		uc.log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("llamada IA fallida")
		if errors.Is(err, domain.ErrAIUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", domain.ErrAIFailed, err)
	}
	uc.log.Debug().Dur("elapsed", time.Since(start)).Int("prompt_len", len(prompt)).Msg("llamada IA completada")
	return strings.TrimSpace(text), nil
}
