// Package agent 实现文章生成流水线的各阶段智能体
package agent

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"z-blog-ai-api/internal/domain/entity"
)

// TextGenerator 定义智能体层对 LLM 的最小依赖（port）。
type TextGenerator interface {
	// Complete 以给定消息发起一次补全，返回纯文本输出
	Complete(ctx context.Context, msgs []*schema.Message, params entity.GenerationParams) (string, error)
	// CompleteWithWebSearch 使用具备联网搜索能力的模型执行查询
	CompleteWithWebSearch(ctx context.Context, query string, params entity.GenerationParams) (string, error)
}
