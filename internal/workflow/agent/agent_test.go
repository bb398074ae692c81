package agent

import (
	"context"
	"sync"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z-blog-ai-api/internal/domain/entity"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
	apperrors "z-blog-ai-api/pkg/errors"
)

// fakeGenerator 脚本化的生成器替身。
// Complete 按队列依次返回；队列耗尽时返回固定文本。
type fakeGenerator struct {
	mu            sync.Mutex
	replies       []string
	messages      [][]*schema.Message
	completeCalls int
	searchCalls   int
	searchFn      func(query string) (string, error)
	completeErr   error
}

func (f *fakeGenerator) Complete(_ context.Context, msgs []*schema.Message, _ entity.GenerationParams) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completeCalls++
	f.messages = append(f.messages, msgs)
	if f.completeErr != nil {
		return "", f.completeErr
	}
	if len(f.replies) == 0 {
		return "respuesta generada", nil
	}
	out := f.replies[0]
	f.replies = f.replies[1:]
	return out, nil
}

func (f *fakeGenerator) CompleteWithWebSearch(_ context.Context, query string, _ entity.GenerationParams) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	if f.searchFn != nil {
		return f.searchFn(query)
	}
	return "hallazgos de la web", nil
}

func TestRunPromptMissingVariableFails(t *testing.T) {
	gen := &fakeGenerator{}
	reg := workflowprompt.NewRegistry()

	// 模板要求 tema 与 comentarios_adicionales，这里故意缺失
	_, err := runPrompt(context.Background(), gen, reg, workflowprompt.PromptAgentEducationalV1,
		map[string]any{"tema": "precios"}, entity.GenerationParams{})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeTemplateFailed, appErr.Code)
	assert.Zero(t, gen.completeCalls)
}

func TestRunPromptFormatsSystemAndUserTurns(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"contenido"}}
	reg := workflowprompt.NewRegistry()

	out, err := runPrompt(context.Background(), gen, reg, workflowprompt.PromptAgentEducationalV1,
		map[string]any{"tema": "precios", "comentarios_adicionales": "ninguno"}, entity.GenerationParams{})
	require.NoError(t, err)
	assert.Equal(t, "contenido", out)

	require.Len(t, gen.messages, 1)
	msgs := gen.messages[0]
	require.Len(t, msgs, 2)
	assert.Equal(t, schema.System, msgs[0].Role)
	assert.Equal(t, schema.User, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "precios")
}
