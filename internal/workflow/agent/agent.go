package agent

import (
	"context"
	"strings"

	"z-blog-ai-api/internal/domain/entity"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
	apperrors "z-blog-ai-api/pkg/errors"
)

// runPrompt 用注册表里的模板格式化消息并发起一次补全。
// 模板缺少变量或格式化失败时返回 CodeTemplateFailed，
// 下游 LLM 错误由基础设施层包装后原样透传。
func runPrompt(
	ctx context.Context,
	gen TextGenerator,
	reg *workflowprompt.Registry,
	id workflowprompt.PromptID,
	vars map[string]any,
	params entity.GenerationParams,
) (string, error) {
	tpl, err := reg.ChatTemplate(id)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeTemplateFailed, "prompt template not available")
	}

	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeTemplateFailed, "prompt template formatting failed").
			WithDetail(string(id))
	}

	out, err := gen.Complete(ctx, msgs, params)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
