package chain

import (
	"context"
	"sync"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z-blog-ai-api/internal/domain/entity"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
	"z-blog-ai-api/pkg/logger"
)

// stageRecordingGenerator 记录每次补全调用所处阶段的生成器替身
type stageRecordingGenerator struct {
	mu      sync.Mutex
	replies []string
	stages  []string
}

func (g *stageRecordingGenerator) Complete(ctx context.Context, _ []*schema.Message, _ entity.GenerationParams) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	stage, _ := ctx.Value(logger.StageKey).(string)
	g.stages = append(g.stages, stage)
	if len(g.replies) == 0 {
		return "respuesta generada", nil
	}
	out := g.replies[0]
	g.replies = g.replies[1:]
	return out, nil
}

func (g *stageRecordingGenerator) CompleteWithWebSearch(_ context.Context, _ string, _ entity.GenerationParams) (string, error) {
	return "hallazgos", nil
}

func TestArticleChainRunsStagesInOrder(t *testing.T) {
	gen := &stageRecordingGenerator{replies: []string{
		`{"title":"T","introduction":"i","sections":[{"heading":"H"}],"conclusion":"c"}`,
		"borrador",
		"# T\n\ntexto editado",
	}}
	c := NewArticleChain(gen, workflowprompt.NewRegistry())

	out, err := c.Invoke(context.Background(), &ArticleInput{
		Topic:  "modelos de precios",
		Length: entity.LengthShort,
		Styles: []entity.Style{entity.StyleInformative},
	})
	require.NoError(t, err)

	assert.Equal(t, "# T\n\ntexto editado", out.Content)
	assert.Equal(t, entity.OutlineTierClean, out.OutlineTier)
	assert.Equal(t, "T", out.Outline.Title)

	// 每个阶段的调用都携带各自的阶段标记
	assert.Equal(t, []string{"plan", "write", "edit"}, gen.stages)
}

func TestArticleChainNilInput(t *testing.T) {
	c := NewArticleChain(&stageRecordingGenerator{}, workflowprompt.NewRegistry())
	_, err := c.Invoke(context.Background(), nil)
	assert.Error(t, err)
}
