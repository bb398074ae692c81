package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z-blog-ai-api/internal/application/blog"
	"z-blog-ai-api/internal/config"
	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/interfaces/http/dto"
	wfagent "z-blog-ai-api/internal/workflow/agent"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
	apperrors "z-blog-ai-api/pkg/errors"
)

// queueGenerator 按队列返回补全结果，供处理器测试驱动编排器
type queueGenerator struct {
	mu      sync.Mutex
	replies []string
}

func (q *queueGenerator) Complete(_ context.Context, _ []*schema.Message, _ entity.GenerationParams) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.replies) == 0 {
		return "respuesta generada", nil
	}
	out := q.replies[0]
	q.replies = q.replies[1:]
	return out, nil
}

func (q *queueGenerator) CompleteWithWebSearch(_ context.Context, _ string, _ entity.GenerationParams) (string, error) {
	return "hallazgos", nil
}

func newTestEngine(gen wfagent.TextGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
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
	agents := wfagent.NewAgentRegistry()
	orch := blog.NewOrchestrator(cfg, gen, workflowprompt.NewRegistry(), agents)
	blogHandler := NewBlogHandler(orch)
	catalogHandler := NewCatalogHandler(agents)

	r := gin.New()
	v1 := r.Group("/v1/blog")
	v1.POST("/generate", blogHandler.Generate)
	v1.POST("/generate-multi", blogHandler.GenerateMulti)
	v1.GET("/agents", catalogHandler.Agents)
	v1.GET("/styles", catalogHandler.Styles)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateRejectsInvalidBody(t *testing.T) {
	r := newTestEngine(&queueGenerator{})

	w := doRequest(t, r, http.MethodPost, "/v1/blog/generate", "{no es json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "invalid request body")
}

func TestGenerateRequiresTopic(t *testing.T) {
	r := newTestEngine(&queueGenerator{})

	w := doRequest(t, r, http.MethodPost, "/v1/blog/generate", `{"length":"short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateReturnsStructuredDocument(t *testing.T) {
	gen := &queueGenerator{replies: []string{
		`{"title":"Modelos de precios","introduction":"i","sections":[{"heading":"Suscripciones"}],"conclusion":"c"}`,
		"# Modelos de precios\n\nborrador",
		"# Modelos de precios\n\nUn arranque directo.\n\n## Introducción\nContexto.\n\n## Suscripciones\nDetalle.\n\n## Conclusión\nCierre.\n",
	}}
	r := newTestEngine(gen)

	w := doRequest(t, r, http.MethodPost, "/v1/blog/generate",
		`{"topic":"modelos de precios","length":"short","styles":["informativo"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response[dto.GenerateArticleResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "Modelos de precios", resp.Data.Document.Title)
	assert.Equal(t, "Contexto.", resp.Data.Document.Introduction)
	require.Len(t, resp.Data.Document.Sections, 1)
	assert.Equal(t, "Un arranque directo.", resp.Data.Summary)
}

func TestGenerateInvalidStyleReturnsErrorCode(t *testing.T) {
	r := newTestEngine(&queueGenerator{})

	w := doRequest(t, r, http.MethodPost, "/v1/blog/generate",
		`{"topic":"precios","styles":["poetico"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(apperrors.CodeValidationFailed), resp.Error.ErrorCode)
}

func TestGenerateMultiUnknownAgentReturnsErrorCode(t *testing.T) {
	r := newTestEngine(&queueGenerator{})

	w := doRequest(t, r, http.MethodPost, "/v1/blog/generate-multi",
		`{"topic":"precios","agents":["educational","inexistente"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(apperrors.CodeUnknownAgent), resp.Error.ErrorCode)
}

func TestAgentsCatalog(t *testing.T) {
	r := newTestEngine(&queueGenerator{})

	w := doRequest(t, r, http.MethodGet, "/v1/blog/agents", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response[dto.AgentsResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Agents, 4)
	assert.Equal(t, "case_study", resp.Data.Agents[0].ID)
	for _, a := range resp.Data.Agents {
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Description)
	}
}

func TestStylesCatalog(t *testing.T) {
	r := newTestEngine(&queueGenerator{})

	w := doRequest(t, r, http.MethodGet, "/v1/blog/styles", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response[dto.StylesResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Styles, 4)
	assert.Len(t, resp.Data.Lengths, 3)
}
