//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"z-blog-ai-api/internal/application/blog"
	"z-blog-ai-api/internal/config"
	"z-blog-ai-api/internal/infrastructure/llm"
	"z-blog-ai-api/internal/interfaces/http/handler"
	"z-blog-ai-api/internal/interfaces/http/router"
	wfagent "z-blog-ai-api/internal/workflow/agent"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
)

// AppSet 应用提供者集合
var AppSet = wire.NewSet(
	llm.NewEinoFactory,
	llm.NewClient,
	wire.Bind(new(wfagent.TextGenerator), new(*llm.Client)),
	workflowprompt.NewRegistry,
	wfagent.NewAgentRegistry,
	blog.NewOrchestrator,
	ProvideRedisClientOptional,
	ProvideRateLimiter,
	handler.NewBlogHandler,
	handler.NewCatalogHandler,
	handler.NewHealthHandler,
	router.New,
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(AppSet)
	return nil, nil, nil
}
