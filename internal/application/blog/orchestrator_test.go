package blog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z-blog-ai-api/internal/config"
	"z-blog-ai-api/internal/domain/entity"
	wfagent "z-blog-ai-api/internal/workflow/agent"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
	apperrors "z-blog-ai-api/pkg/errors"
)

// scriptedGenerator 按队列返回补全结果的生成器替身
type scriptedGenerator struct {
	mu            sync.Mutex
	replies       []string
	messages      [][]*schema.Message
	completeCalls int
	completeErrOn int
	completeErr   error
	searchCalls   int
	searchOut     string
}

func (f *scriptedGenerator) Complete(_ context.Context, msgs []*schema.Message, _ entity.GenerationParams) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completeCalls++
	f.messages = append(f.messages, msgs)
	if f.completeErr != nil && f.completeCalls == f.completeErrOn {
		return "", f.completeErr
	}
	if len(f.replies) == 0 {
		return "respuesta generada", nil
	}
	out := f.replies[0]
	f.replies = f.replies[1:]
	return out, nil
}

func (f *scriptedGenerator) CompleteWithWebSearch(_ context.Context, _ string, _ entity.GenerationParams) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	if f.searchOut == "" {
		return "hallazgos", nil
	}
	return f.searchOut, nil
}

func (f *scriptedGenerator) anyUserMessageContains(substr string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, msgs := range f.messages {
		for _, m := range msgs {
			if strings.Contains(m.Content, substr) {
				return true
			}
		}
	}
	return false
}

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			DefaultProvider: "default-provider",
			Providers: map[string]config.ProviderConfig{
				"default-provider": {Model: "test-model", Temperature: 0.7, MaxTokens: 4096},
			},
		},
		Blog: config.BlogConfig{
			MultiAgentConcurrency: 2,
			OutputMaxRunes:        20000,
			SummaryMaxChars:       250,
		},
	}
}

func newTestOrchestrator(gen wfagent.TextGenerator) *Orchestrator {
	return NewOrchestrator(testConfig(), gen, workflowprompt.NewRegistry(), wfagent.NewAgentRegistry())
}

const editedArticle = `# Modelos de precios

Un arranque directo sobre precios.

## Introducción
Contexto del mercado.

## Suscripciones
Contenido sobre suscripciones.

## Conclusión
Cierre con recomendaciones.
`

func TestGenerateEndToEndWithoutResearch(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{
		`{"title":"Modelos de precios","introduction":"i","sections":[{"heading":"Suscripciones"}],"conclusion":"c"}`,
		"# Modelos de precios\n\nborrador",
		editedArticle,
	}}
	orch := newTestOrchestrator(gen)

	result, err := orch.Generate(context.Background(), GenerateCommand{
		Topic:  "pricing models",
		Length: "short",
		Styles: []string{"informativo"},
	})
	require.NoError(t, err)

	// 规划、写作、编辑各一次调用，无 URL 时不进入调研
	assert.Equal(t, 3, gen.completeCalls)
	assert.Zero(t, gen.searchCalls)

	assert.Equal(t, "Modelos de precios", result.Document.Title)
	assert.Equal(t, "Contexto del mercado.", result.Document.Introduction)
	assert.Equal(t, "Cierre con recomendaciones.", result.Document.Conclusion)
	assert.NotEmpty(t, result.Document.Content)
	assert.Equal(t, "Un arranque directo sobre precios.", result.Summary)
}

func TestGenerateWithURLsRunsResearch(t *testing.T) {
	gen := &scriptedGenerator{
		searchOut: "dato externo relevante",
		replies: []string{
			"síntesis de la investigación",
			`{"title":"T","introduction":"i","sections":[{"heading":"H"}],"conclusion":"c"}`,
			"borrador",
			editedArticle,
		},
	}
	orch := newTestOrchestrator(gen)

	_, err := orch.Generate(context.Background(), GenerateCommand{
		Topic: "pricing models",
		URLs:  []string{"https://a.example", "https://b.example"},
	})
	require.NoError(t, err)

	// 一次摘要调用 per URL，综合 + 三阶段共四次补全
	assert.Equal(t, 2, gen.searchCalls)
	assert.Equal(t, 4, gen.completeCalls)

	// 综合结果以固定标记注入写作提示词
	assert.True(t, gen.anyUserMessageContains(wfagent.ReferenceBlockMarker))
	assert.True(t, gen.anyUserMessageContains("síntesis de la investigación"))
}

func TestGenerateSynthesisFailureStillInjectsReferenceBlock(t *testing.T) {
	gen := &scriptedGenerator{
		completeErrOn: 1,
		completeErr:   errors.New("provider down"),
		replies: []string{
			`{"title":"T","introduction":"i","sections":[{"heading":"H"}],"conclusion":"c"}`,
			"borrador",
			editedArticle,
		},
	}
	orch := newTestOrchestrator(gen)

	_, err := orch.Generate(context.Background(), GenerateCommand{
		Topic: "pricing models",
		URLs:  []string{"https://a.example"},
	})
	require.NoError(t, err)

	// 综合失败降级为错误文本，参考块照常注入写作提示词
	assert.True(t, gen.anyUserMessageContains(wfagent.ReferenceBlockMarker))
	assert.True(t, gen.anyUserMessageContains("Error al sintetizar la investigación"))
}

func TestGenerateValidationFailsBeforeProviderCalls(t *testing.T) {
	gen := &scriptedGenerator{}
	orch := newTestOrchestrator(gen)

	cases := []GenerateCommand{
		{Topic: "   "},
		{Topic: "t", Length: "enorme"},
		{Topic: "t", Styles: []string{"poetico"}},
	}
	for _, cmd := range cases {
		_, err := orch.Generate(context.Background(), cmd)
		require.Error(t, err)
		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	}
	assert.Zero(t, gen.completeCalls)
	assert.Zero(t, gen.searchCalls)
}

func TestGenerateMultiUnknownAgentFailsWithoutCalls(t *testing.T) {
	gen := &scriptedGenerator{}
	orch := newTestOrchestrator(gen)

	_, err := orch.GenerateMulti(context.Background(), GenerateMultiCommand{
		Topic:    "pricing models",
		AgentIDs: []string{"educational", "not_a_real_agent"},
	})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnknownAgent, appErr.Code)
	assert.Contains(t, appErr.Message, "case_study, educational, how_to, industry_news")
	assert.Zero(t, gen.completeCalls)
}

func TestGenerateMultiMergesAgentOutputs(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{
		"borrador educativo",
		"borrador de caso de estudio",
		editedArticle,
	}}
	orch := newTestOrchestrator(gen)

	result, err := orch.GenerateMulti(context.Background(), GenerateMultiCommand{
		Topic:    "pricing models",
		Comments: "enfocado a pymes",
		AgentIDs: []string{"educational", "case_study"},
	})
	require.NoError(t, err)

	// 两个写手 + 一次合稿
	assert.Equal(t, 3, gen.completeCalls)
	assert.Equal(t, "Modelos de precios", result.Document.Title)
	assert.NotEmpty(t, result.Document.Sections)
}

func TestResolveParamsMergesAndClamps(t *testing.T) {
	orch := newTestOrchestrator(&scriptedGenerator{})

	temp := float32(3.0)
	fp := float32(-9)
	params := orch.resolveParams(&entity.GenerationParams{
		Temperature:      &temp,
		FrequencyPenalty: &fp,
	})

	assert.Equal(t, "default-provider", params.Provider)
	assert.Equal(t, "test-model", params.Model)
	require.NotNil(t, params.Temperature)
	assert.Equal(t, float32(1), *params.Temperature)
	assert.Equal(t, float32(-2), *params.FrequencyPenalty)
	require.NotNil(t, params.MaxTokens)
	assert.Equal(t, 4096, *params.MaxTokens)
}
