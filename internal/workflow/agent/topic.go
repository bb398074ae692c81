package agent

import (
	"context"
	"strings"

	"z-blog-ai-api/internal/domain/entity"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
)

// TopicAgent 多智能体模式下的专项写手，每个 id 绑定一套提示词
type TopicAgent struct {
	id          string
	name        string
	description string
	promptID    workflowprompt.PromptID
}

func (a *TopicAgent) ID() string          { return a.id }
func (a *TopicAgent) Name() string        { return a.name }
func (a *TopicAgent) Description() string { return a.description }

// Generate 以指定主题生成该专项的博客内容
func (a *TopicAgent) Generate(
	ctx context.Context,
	gen TextGenerator,
	reg *workflowprompt.Registry,
	topic, feedback string,
	params entity.GenerationParams,
) (string, error) {
	vars := map[string]any{
		"tema":                    strings.TrimSpace(topic),
		"comentarios_adicionales": additionalComments(feedback),
	}
	return runPrompt(ctx, gen, reg, a.promptID, vars, params)
}

func additionalComments(feedback string) string {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return "ninguno"
	}
	return feedback
}
