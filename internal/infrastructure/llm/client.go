package llm

import (
	"context"
	"strings"
	"time"

	openaiopts "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"z-blog-ai-api/internal/domain/entity"
	wfagent "z-blog-ai-api/internal/workflow/agent"
	apperrors "z-blog-ai-api/pkg/errors"
	"z-blog-ai-api/pkg/metrics"
)

// Client 生成客户端，实现智能体层的 TextGenerator port。
// 每次调用只发起一次提供商请求，不做重试。
type Client struct {
	factory *EinoFactory
}

func NewClient(factory *EinoFactory) *Client {
	return &Client{factory: factory}
}

// Complete 发起一次补全并返回纯文本输出
func (c *Client) Complete(ctx context.Context, msgs []*schema.Message, params entity.GenerationParams) (string, error) {
	chatModel, err := c.pickModel(ctx, params, false)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "llm model unavailable")
	}
	return c.generate(ctx, chatModel, msgs, params, buildModelOptions(params))
}

// CompleteWithWebSearch 用具备联网搜索能力的模型执行查询。
// 搜索能力通过提供商侧的 web_search_options 开关启用。
func (c *Client) CompleteWithWebSearch(ctx context.Context, query string, params entity.GenerationParams) (string, error) {
	chatModel, err := c.pickModel(ctx, params, true)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "llm search model unavailable")
	}

	msgs := []*schema.Message{schema.UserMessage(query)}
	searchParams, opts := searchOptions(params)
	return c.generate(ctx, chatModel, msgs, searchParams, opts)
}

// searchOptions 构造联网搜索调用的参数与模型选项。
// 先清空模型名再构造选项，保证提供商配置的搜索模型
// 不被请求里解析出的写作模型覆盖。
func searchOptions(params entity.GenerationParams) (entity.GenerationParams, []model.Option) {
	searchParams := params
	searchParams.Model = ""
	opts := buildModelOptions(searchParams)
	opts = append(opts, openaiopts.WithExtraFields(map[string]any{
		"web_search_options": map[string]any{},
	}))
	return searchParams, opts
}

func (c *Client) pickModel(ctx context.Context, params entity.GenerationParams, search bool) (model.BaseChatModel, error) {
	provider := strings.TrimSpace(params.Provider)
	if strings.TrimSpace(params.APIKey) != "" || strings.TrimSpace(params.BaseURL) != "" {
		return c.factory.GetOverride(ctx, provider, params)
	}
	if search {
		return c.factory.GetSearch(ctx, provider)
	}
	return c.factory.Get(ctx, provider)
}

func (c *Client) generate(
	ctx context.Context,
	chatModel model.BaseChatModel,
	msgs []*schema.Message,
	params entity.GenerationParams,
	opts []model.Option,
) (string, error) {
	provider := params.Provider
	modelName := params.Model

	if timeout := c.factory.Timeout(provider); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := chatModel.Generate(ctx, msgs, opts...)
	metrics.LLMCallDuration.WithLabelValues(provider, modelName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(provider, modelName, "error").Inc()
		return "", apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "llm call failed")
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		metrics.LLMCallTotal.WithLabelValues(provider, modelName, "error").Inc()
		return "", apperrors.New(apperrors.CodeLLMCallFailed, "empty llm response")
	}
	metrics.LLMCallTotal.WithLabelValues(provider, modelName, "success").Inc()
	return out.Content, nil
}

// buildModelOptions 把请求级参数转成 Eino 模型选项。
// 惩罚项与随机种子走 openai 适配器的扩展字段。
func buildModelOptions(params entity.GenerationParams) []model.Option {
	opts := make([]model.Option, 0, 6)

	if m := strings.TrimSpace(params.Model); m != "" {
		opts = append(opts, model.WithModel(m))
	}
	if params.Temperature != nil {
		opts = append(opts, model.WithTemperature(*params.Temperature))
	}
	if params.TopP != nil {
		opts = append(opts, model.WithTopP(*params.TopP))
	}
	if params.MaxTokens != nil {
		opts = append(opts, model.WithMaxTokens(*params.MaxTokens))
	}
	if len(params.Stop) > 0 {
		opts = append(opts, model.WithStop(params.Stop))
	}

	extra := make(map[string]any, 3)
	if params.FrequencyPenalty != nil {
		extra["frequency_penalty"] = *params.FrequencyPenalty
	}
	if params.PresencePenalty != nil {
		extra["presence_penalty"] = *params.PresencePenalty
	}
	if params.Seed != nil {
		extra["seed"] = *params.Seed
	}
	if len(extra) > 0 {
		opts = append(opts, openaiopts.WithExtraFields(extra))
	}

	return opts
}

var _ wfagent.TextGenerator = (*Client)(nil)
