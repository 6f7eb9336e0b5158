package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/usecase"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/infrastructure/storage"
	"github.com/jhoicas/subguard-api/pkg/logger"
)

// fakeCompleter devuelve una respuesta fija y guarda el último prompt.
type fakeCompleter struct {
	reply  string
	err    error
	block  bool
	prompt string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func newAIUC(e *env, llm *fakeCompleter, timeout time.Duration) *usecase.AIUseCase {
	return usecase.NewAIUseCase(llm, storage.NewAssetRepository(e.store), timeout, logger.Nop())
}

func TestChat_IncluyeContextoDelRegistro(t *testing.T) {
	llm := &fakeCompleter{reply: "  Oracle concentra el 70% del gasto.  "}
	reply, err := newAIUC(newEnv(), llm, time.Second).Chat(context.Background(), "¿Dónde recorto?")
	require.NoError(t, err)
	assert.Equal(t, "Oracle concentra el 70% del gasto.", reply)

	assert.Contains(t, llm.prompt, "AI CFO Assistant")
	assert.Contains(t, llm.prompt, `"name":"AWS Production Env","amount":15400000`)
	assert.Contains(t, llm.prompt, `"renewal":"2025-12-12"`)
	assert.Contains(t, llm.prompt, "max 3 sentences")
}

func TestChat_RespuestaVacia(t *testing.T) {
	reply, err := newAIUC(newEnv(), &fakeCompleter{}, time.Second).Chat(context.Background(), "hola")
	require.NoError(t, err)
	assert.Equal(t, "I couldn't process that data.", reply)
}

func TestChat_Errores(t *testing.T) {
	ctx := context.Background()
	e := newEnv()

	_, err := newAIUC(e, &fakeCompleter{}, time.Second).Chat(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = usecase.NewAIUseCase(nil, storage.NewAssetRepository(e.store), time.Second, logger.Nop()).Chat(ctx, "hola")
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)

	_, err = newAIUC(e, &fakeCompleter{err: errors.New("quota")}, time.Second).Chat(ctx, "hola")
	assert.ErrorIs(t, err, domain.ErrAIFailed)
}

func TestChat_Timeout(t *testing.T) {
	_, err := newAIUC(newEnv(), &fakeCompleter{block: true}, 20*time.Millisecond).Chat(context.Background(), "hola")
	assert.ErrorIs(t, err, domain.ErrAIFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerateAssetProfile(t *testing.T) {
	llm := &fakeCompleter{reply: "Collaborative design platform.|Vendor lock-in, Seat sprawl , Price increases"}
	p, err := newAIUC(newEnv(), llm, time.Second).GenerateAssetProfile(context.Background(), dto.AssetProfileRequest{Name: "Figma"})
	require.NoError(t, err)
	assert.Equal(t, "Collaborative design platform.", p.Notes)
	assert.Equal(t, []string{"Vendor lock-in", "Seat sprawl", "Price increases"}, p.RiskFactors)
	assert.Equal(t, 50, p.RiskScore)
	assert.Contains(t, llm.prompt, `from vendor "Unknown"`)
}

func TestParseAssetProfile_SinSeparador(t *testing.T) {
	p := usecase.ParseAssetProfile("Solo descripción")
	assert.Equal(t, "Solo descripción", p.Notes)
	assert.Empty(t, p.RiskFactors)
	assert.Equal(t, usecase.AIProfileRiskScore, p.RiskScore)
}
