package agent

import (
	"context"
	"strings"

	"z-blog-ai-api/internal/domain/entity"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
)

// Editor 编辑阶段智能体：对草稿做风格化润色
type Editor struct {
	gen TextGenerator
	reg *workflowprompt.Registry
}

func NewEditor(gen TextGenerator, reg *workflowprompt.Registry) *Editor {
	return &Editor{gen: gen, reg: reg}
}

func (e *Editor) Edit(ctx context.Context, content string, styles []entity.Style, params entity.GenerationParams) (string, error) {
	vars := map[string]any{
		"content":              strings.TrimSpace(content),
		"instrucciones_estilo": StyleInstructions(styles),
	}
	return runPrompt(ctx, e.gen, e.reg, workflowprompt.PromptStyleEditV1, vars, params)
}
