package blog

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"z-blog-ai-api/internal/config"
	"z-blog-ai-api/internal/domain/entity"
	wfagent "z-blog-ai-api/internal/workflow/agent"
	wfchain "z-blog-ai-api/internal/workflow/chain"
	wfnode "z-blog-ai-api/internal/workflow/node"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
	apperrors "z-blog-ai-api/pkg/errors"
	"z-blog-ai-api/pkg/logger"
	"z-blog-ai-api/pkg/metrics"
)

// GenerateCommand 单主题流水线的请求参数
type GenerateCommand struct {
	Topic        string
	Length       string
	Styles       []string
	URLs         []string
	CustomPrompt string
	Config       *entity.GenerationParams
}

// GenerateMultiCommand 多智能体组合模式的请求参数
type GenerateMultiCommand struct {
	Topic    string
	Comments string
	AgentIDs []string
	Config   *entity.GenerationParams
}

// GenerateResult 两种模式共用的生成结果
type GenerateResult struct {
	Document *entity.StructuredDocument
	Summary  string
}

// Orchestrator 文章生成编排器。
// 单主题模式走 规划->写作->编辑 流水线，可选调研前置；
// 组合模式并发执行专项写手后合稿。两种模式共用解析与摘要提取。
type Orchestrator struct {
	cfg        *config.Config
	gen        wfagent.TextGenerator
	promptReg  *workflowprompt.Registry
	agents     *wfagent.Registry
	chain      *wfchain.ArticleChain
	researcher *wfagent.Researcher
	merger     *wfagent.Merger
}

func NewOrchestrator(
	cfg *config.Config,
	gen wfagent.TextGenerator,
	promptReg *workflowprompt.Registry,
	agents *wfagent.Registry,
) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		gen:        gen,
		promptReg:  promptReg,
		agents:     agents,
		chain:      wfchain.NewArticleChain(gen, promptReg),
		researcher: wfagent.NewResearcher(gen),
		merger:     wfagent.NewMerger(gen, promptReg),
	}
}

// Agents 暴露写手注册表，供能力目录接口使用
func (o *Orchestrator) Agents() *wfagent.Registry { return o.agents }

// Generate 执行单主题流水线
func (o *Orchestrator) Generate(ctx context.Context, cmd GenerateCommand) (*GenerateResult, error) {
	start := time.Now()

	topic := strings.TrimSpace(cmd.Topic)
	if topic == "" {
		return nil, apperrors.New(apperrors.CodeValidationFailed, "topic must not be empty")
	}
	length, err := entity.ParseLength(cmd.Length)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeValidationFailed, err.Error())
	}
	styles, err := entity.ParseStyles(cmd.Styles)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeValidationFailed, err.Error())
	}
	params := o.resolveParams(cmd.Config)

	ctx = logger.WithContext(ctx, logger.TopicKey, topic)
	logger.Info(ctx, "article generation started",
		"mode", "pipeline",
		"length", string(length),
		"styles", len(styles),
		"urls", len(cmd.URLs),
	)

	// 调研仅在提供参考链接时前置执行，失败不致命
	customPrompt := strings.TrimSpace(cmd.CustomPrompt)
	if len(cmd.URLs) > 0 {
		results := o.researcher.ResearchTopic(ctx, topic, cmd.URLs, params)
		if synthesis := o.researcher.Synthesize(ctx, topic, results, params); synthesis != "" {
			customPrompt = appendReference(customPrompt, synthesis)
		}
	}

	out, err := o.chain.Invoke(ctx, &wfchain.ArticleInput{
		Topic:        topic,
		Length:       length,
		Styles:       styles,
		CustomPrompt: customPrompt,
		URLs:         cmd.URLs,
		Params:       params,
	})
	if err != nil {
		metrics.ArticleGenerationTotal.WithLabelValues("pipeline", "error").Inc()
		logger.Error(ctx, "article generation failed", err)
		return nil, asGenerationError(err)
	}

	doc := ParseDocument(out.Content)
	summary := ExtractSummary(out.Content, o.cfg.Blog.SummaryMaxChars)

	metrics.ArticleGenerationTotal.WithLabelValues("pipeline", "success").Inc()
	metrics.ArticleGenerationDuration.WithLabelValues("pipeline").Observe(time.Since(start).Seconds())
	logger.Info(ctx, "article generation finished",
		"mode", "pipeline",
		"title", doc.Title,
		"sections", len(doc.Sections),
		"outline_tier", string(out.OutlineTier),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &GenerateResult{Document: doc, Summary: summary}, nil
}

// GenerateMulti 执行多智能体组合模式。
// 写手标识先整体校验，任何一个未知都在发起模型调用前失败。
func (o *Orchestrator) GenerateMulti(ctx context.Context, cmd GenerateMultiCommand) (*GenerateResult, error) {
	start := time.Now()

	topic := strings.TrimSpace(cmd.Topic)
	if topic == "" {
		return nil, apperrors.New(apperrors.CodeValidationFailed, "topic must not be empty")
	}
	if len(cmd.AgentIDs) == 0 {
		return nil, apperrors.New(apperrors.CodeValidationFailed, "at least one agent identifier is required")
	}
	selected := make([]*wfagent.TopicAgent, 0, len(cmd.AgentIDs))
	for _, id := range cmd.AgentIDs {
		a, err := o.agents.Get(id)
		if err != nil {
			return nil, err
		}
		selected = append(selected, a)
	}
	params := o.resolveParams(cmd.Config)

	ctx = logger.WithContext(ctx, logger.TopicKey, topic)
	logger.Info(ctx, "article generation started",
		"mode", "multi_agent",
		"agents", len(selected),
	)

	// 按调用方给定顺序归位，保证合稿提示词的可复现性
	outputs := make([]wfagent.AgentOutput, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.multiAgentConcurrency())
	for i, a := range selected {
		g.Go(func() error {
			content, err := a.Generate(gctx, o.gen, o.promptReg, topic, cmd.Comments, params)
			if err != nil {
				return err
			}
			outputs[i] = wfagent.AgentOutput{AgentID: a.ID(), Content: content}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.ArticleGenerationTotal.WithLabelValues("multi_agent", "error").Inc()
		logger.Error(ctx, "multi agent generation failed", err)
		return nil, asGenerationError(err)
	}

	merged, err := o.merger.Merge(ctx, topic, cmd.Comments, outputs, params)
	if err != nil {
		metrics.ArticleGenerationTotal.WithLabelValues("multi_agent", "error").Inc()
		logger.Error(ctx, "merge failed", err)
		return nil, asGenerationError(err)
	}
	merged = wfnode.TruncateByRunes(merged, o.cfg.Blog.OutputMaxRunes)

	doc := ParseDocument(merged)
	summary := ExtractSummary(merged, o.cfg.Blog.SummaryMaxChars)

	metrics.ArticleGenerationTotal.WithLabelValues("multi_agent", "success").Inc()
	metrics.ArticleGenerationDuration.WithLabelValues("multi_agent").Observe(time.Since(start).Seconds())
	logger.Info(ctx, "article generation finished",
		"mode", "multi_agent",
		"title", doc.Title,
		"sections", len(doc.Sections),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &GenerateResult{Document: doc, Summary: summary}, nil
}

// resolveParams 把请求覆盖项合并到提供商默认值之上并做边界收敛。
// 未设置的字段保持为空，由客户端在调用点应用最终默认。
func (o *Orchestrator) resolveParams(override *entity.GenerationParams) entity.GenerationParams {
	provider := o.cfg.LLM.DefaultProvider
	if override != nil && strings.TrimSpace(override.Provider) != "" {
		provider = strings.TrimSpace(override.Provider)
	}

	base := entity.GenerationParams{Provider: provider}
	if pc, ok := o.cfg.LLM.Providers[provider]; ok {
		base.Model = pc.Model
		if pc.Temperature > 0 {
			t := float32(pc.Temperature)
			base.Temperature = &t
		}
		if pc.MaxTokens > 0 {
			mt := pc.MaxTokens
			base.MaxTokens = &mt
		}
	}

	if override == nil {
		return base.Clamped()
	}
	return override.MergeOver(base).Clamped()
}

func (o *Orchestrator) multiAgentConcurrency() int {
	if n := o.cfg.Blog.MultiAgentConcurrency; n > 0 {
		return n
	}
	return 1
}

// appendReference 把调研综合文本以固定标记追加到自定义指令之后；
// 指令为空时标记块即为全部指令。
func appendReference(customPrompt, synthesis string) string {
	block := wfagent.ReferenceBlockMarker + ":\n" + synthesis
	if customPrompt == "" {
		return block
	}
	return customPrompt + "\n\n" + block
}

// asGenerationError 把流水线致命错误统一成对外安全的生成失败。
// 模板错误属于程序缺陷，保留原错误码便于定位。
func asGenerationError(err error) error {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Code {
		case apperrors.CodeTemplateFailed, apperrors.CodeValidationFailed, apperrors.CodeUnknownAgent:
			return appErr
		}
	}
	return apperrors.Wrap(err, apperrors.CodeGenerationFailed, "article generation failed, please try again")
}
