// Package llm 封装对 Eino ChatModel 的访问
package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"z-blog-ai-api/internal/config"
	"z-blog-ai-api/internal/domain/entity"
)

// EinoFactory 管理多个 Eino ChatModel 客户端实例
type EinoFactory struct {
	config *config.LLMConfig
	models map[string]model.BaseChatModel
	mu     sync.RWMutex
}

// NewEinoFactory 创建 Eino LLM 工厂
func NewEinoFactory(cfg *config.Config) *EinoFactory {
	return &EinoFactory{
		config: &cfg.LLM,
		models: make(map[string]model.BaseChatModel),
	}
}

// Get 获取指定提供商的 ChatModel，未指定时回落到默认提供商
func (f *EinoFactory) Get(ctx context.Context, name string) (model.BaseChatModel, error) {
	return f.get(ctx, name, false)
}

// GetSearch 获取提供商的联网搜索模型。
// 未配置 search_model 的提供商不支持搜索能力。
func (f *EinoFactory) GetSearch(ctx context.Context, name string) (model.BaseChatModel, error) {
	return f.get(ctx, name, true)
}

func (f *EinoFactory) get(ctx context.Context, name string, search bool) (model.BaseChatModel, error) {
	if name == "" {
		name = f.config.DefaultProvider
	}
	key := name
	if search {
		key = name + "#search"
	}

	f.mu.RLock()
	m, ok := f.models[key]
	f.mu.RUnlock()
	if ok {
		return m, nil
	}

	// 惰性加载
	f.mu.Lock()
	defer f.mu.Unlock()

	// 再次检查防止竞态
	if m, ok = f.models[key]; ok {
		return m, nil
	}

	providerCfg, ok := f.config.Providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %s not found in LLM config", name)
	}

	modelName := providerCfg.Model
	if search {
		if providerCfg.SearchModel == "" {
			return nil, fmt.Errorf("provider %s has no search_model configured", name)
		}
		modelName = providerCfg.SearchModel
	}

	chatModel, err := newChatModel(ctx, providerCfg, modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model for %s: %w", name, err)
	}

	f.models[key] = chatModel
	return chatModel, nil
}

// GetOverride 用请求级凭据构建一次性 ChatModel，不进入缓存。
// 凭据属于调用方，缓存会把它泄漏给后续请求。
func (f *EinoFactory) GetOverride(ctx context.Context, name string, params entity.GenerationParams) (model.BaseChatModel, error) {
	if name == "" {
		name = f.config.DefaultProvider
	}
	providerCfg, ok := f.config.Providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %s not found in LLM config", name)
	}

	if strings.TrimSpace(params.APIKey) != "" {
		providerCfg.APIKey = strings.TrimSpace(params.APIKey)
	}
	if strings.TrimSpace(params.BaseURL) != "" {
		providerCfg.BaseURL = strings.TrimSpace(params.BaseURL)
	}

	chatModel, err := newChatModel(ctx, providerCfg, providerCfg.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model for %s: %w", name, err)
	}
	return chatModel, nil
}

// Default 返回默认 ChatModel
func (f *EinoFactory) Default(ctx context.Context) (model.BaseChatModel, error) {
	return f.Get(ctx, "")
}

// Timeout 返回提供商的单次调用超时，未配置时为零值
func (f *EinoFactory) Timeout(name string) time.Duration {
	if name == "" {
		name = f.config.DefaultProvider
	}
	if pc, ok := f.config.Providers[name]; ok {
		return pc.Timeout
	}
	return 0
}

func newChatModel(ctx context.Context, providerCfg config.ProviderConfig, modelName string) (model.BaseChatModel, error) {
	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      providerCfg.APIKey,
		BaseURL:     providerCfg.BaseURL,
		Model:       modelName,
		MaxTokens:   &providerCfg.MaxTokens,
		Temperature: ptrFloat32(float32(providerCfg.Temperature)),
		Timeout:     providerCfg.Timeout,
	})
}

func ptrFloat32(f float32) *float32 {
	return &f
}
