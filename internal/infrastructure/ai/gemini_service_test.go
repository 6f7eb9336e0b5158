package ai_test

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/subguard-api/internal/infrastructure/ai"
)

func TestCandidateText(t *testing.T) {
	content := func(parts ...genai.Part) *genai.Candidate {
		return &genai.Candidate{Content: &genai.Content{Role: "model", Parts: parts}}
	}
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"respuesta nil", nil, ""},
		{"sin candidatos", &genai.GenerateContentResponse{}, ""},
		{"candidato sin contenido", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, ""},
		{"concatena partes de texto", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
			content(genai.Text("Gasto "), genai.Text("estable.\n")),
		}}, "Gasto estable."},
		{"ignora partes que no son texto", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
			content(genai.Blob{MIMEType: "image/png", Data: []byte{1}}, genai.Text("Riesgo bajo")),
		}}, "Riesgo bajo"},
		{"solo el primer candidato", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
			content(genai.Text("primero")), content(genai.Text("segundo")),
		}}, "primero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ai.CandidateText(tt.resp))
		})
	}
}
