// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"z-blog-ai-api/internal/config"
	"z-blog-ai-api/internal/infrastructure/persistence/redis"
	"z-blog-ai-api/internal/interfaces/http/middleware"
	"z-blog-ai-api/pkg/logger"
)

// ProvideRedisClientOptional 提供可选的 Redis 客户端。
// 限流未启用时不建连；Redis 不可达时降级为无限流，不阻塞启动。
func ProvideRedisClientOptional(ctx context.Context, cfg *config.Config) (*redis.Client, func(), error) {
	if !cfg.Security.RateLimit.Enabled {
		return nil, func() {}, nil
	}

	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		logger.Warn(ctx, "redis unavailable, rate limiting disabled", "error", err.Error())
		return nil, func() {}, nil
	}

	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideRateLimiter 提供限流器；无 Redis 时返回 nil，由中间件放行
func ProvideRateLimiter(client *redis.Client) middleware.RateLimiter {
	if client == nil {
		return nil
	}
	return redis.NewRateLimiter(client)
}
