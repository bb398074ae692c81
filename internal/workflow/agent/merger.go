package agent

import (
	"context"
	"fmt"
	"strings"

	"z-blog-ai-api/internal/domain/entity"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
)

// AgentOutput 单个专项写手的产出
type AgentOutput struct {
	AgentID string
	Content string
}

// Merger 合稿智能体：把多个专项写手的产出整合为一篇文章
type Merger struct {
	gen TextGenerator
	reg *workflowprompt.Registry
}

func NewMerger(gen TextGenerator, reg *workflowprompt.Registry) *Merger {
	return &Merger{gen: gen, reg: reg}
}

func (m *Merger) Merge(ctx context.Context, topic, feedback string, outputs []AgentOutput, params entity.GenerationParams) (string, error) {
	var b strings.Builder
	for i, out := range outputs {
		fmt.Fprintf(&b, "--- Borrador %d (redactor: %s) ---\n%s\n\n", i+1, out.AgentID, strings.TrimSpace(out.Content))
	}

	vars := map[string]any{
		"tema":                    strings.TrimSpace(topic),
		"agent_outputs":           strings.TrimRight(b.String(), "\n"),
		"comentarios_adicionales": additionalComments(feedback),
	}
	return runPrompt(ctx, m.gen, m.reg, workflowprompt.PromptMergeArticleV1, vars, params)
}
