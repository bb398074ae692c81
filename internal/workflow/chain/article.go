// Package chain 用 Eino 编排文章生成流水线
package chain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cloudwego/eino/compose"

	"z-blog-ai-api/internal/domain/entity"
	wfagent "z-blog-ai-api/internal/workflow/agent"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
	"z-blog-ai-api/pkg/logger"
	"z-blog-ai-api/pkg/metrics"
)

// ArticleInput 流水线输入。CustomPrompt 已包含调研综合文本（若有）。
type ArticleInput struct {
	Topic        string
	Length       entity.Length
	Styles       []entity.Style
	CustomPrompt string
	URLs         []string
	Params       entity.GenerationParams
}

// ArticleOutput 流水线输出：润色后的 markdown 全文与规划阶段的大纲
type ArticleOutput struct {
	Content     string
	Outline     entity.Outline
	OutlineTier entity.OutlineTier
}

// ArticleChain 规划 -> 写作 -> 编辑 三阶段流水线
type ArticleChain struct {
	planner *wfagent.Planner
	writer  *wfagent.Writer
	editor  *wfagent.Editor

	chainOnce sync.Once
	chain     compose.Runnable[*ArticleInput, *ArticleOutput]
	chainErr  error
}

func NewArticleChain(gen wfagent.TextGenerator, reg *workflowprompt.Registry) *ArticleChain {
	return &ArticleChain{
		planner: wfagent.NewPlanner(gen, reg),
		writer:  wfagent.NewWriter(gen, reg),
		editor:  wfagent.NewEditor(gen, reg),
	}
}

func (c *ArticleChain) Invoke(ctx context.Context, in *ArticleInput) (*ArticleOutput, error) {
	if c == nil || c.planner == nil {
		return nil, fmt.Errorf("article chain not configured")
	}
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}

	chain, err := c.getChain()
	if err != nil {
		return nil, err
	}
	return chain.Invoke(ctx, in)
}

type articleChainState struct {
	In          *ArticleInput
	Outline     entity.Outline
	OutlineTier entity.OutlineTier
	Draft       string
	Edited      string
}

func (c *ArticleChain) getChain() (compose.Runnable[*ArticleInput, *ArticleOutput], error) {
	c.chainOnce.Do(func() {
		c.chain, c.chainErr = c.buildChain(context.Background())
	})
	return c.chain, c.chainErr
}

func (c *ArticleChain) buildChain(ctx context.Context) (compose.Runnable[*ArticleInput, *ArticleOutput], error) {
	chain := compose.NewChain[*ArticleInput, *ArticleOutput]()

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, in *ArticleInput) (*articleChainState, error) {
			if in == nil {
				return nil, fmt.Errorf("input is nil")
			}
			return &articleChainState{In: in}, nil
		}),
		compose.WithNodeName("article.init"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *articleChainState) (*articleChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			ctx = logger.WithContext(ctx, logger.StageKey, "plan")
			start := time.Now()
			outline, tier, err := c.planner.Plan(ctx, wfagent.PlanInput{
				Topic:        st.In.Topic,
				Length:       st.In.Length,
				Styles:       st.In.Styles,
				CustomPrompt: st.In.CustomPrompt,
			}, st.In.Params)
			metrics.ArticleStageDuration.WithLabelValues("plan").Observe(time.Since(start).Seconds())
			if err != nil {
				return nil, err
			}
			logger.Info(ctx, "outline planned",
				"title", outline.Title,
				"sections", len(outline.Sections),
				"tier", string(tier),
			)
			st.Outline = outline
			st.OutlineTier = tier
			return st, nil
		}),
		compose.WithNodeName("article.plan"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *articleChainState) (*articleChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			ctx = logger.WithContext(ctx, logger.StageKey, "write")
			start := time.Now()
			draft, err := c.writer.Write(ctx, wfagent.WriteInput{
				Topic:        st.In.Topic,
				Outline:      st.Outline,
				Length:       st.In.Length,
				Styles:       st.In.Styles,
				CustomPrompt: st.In.CustomPrompt,
				URLs:         st.In.URLs,
			}, st.In.Params)
			metrics.ArticleStageDuration.WithLabelValues("write").Observe(time.Since(start).Seconds())
			if err != nil {
				return nil, err
			}
			st.Draft = draft
			return st, nil
		}),
		compose.WithNodeName("article.write"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *articleChainState) (*articleChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			ctx = logger.WithContext(ctx, logger.StageKey, "edit")
			start := time.Now()
			edited, err := c.editor.Edit(ctx, st.Draft, st.In.Styles, st.In.Params)
			metrics.ArticleStageDuration.WithLabelValues("edit").Observe(time.Since(start).Seconds())
			if err != nil {
				return nil, err
			}
			st.Edited = edited
			return st, nil
		}),
		compose.WithNodeName("article.edit"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *articleChainState) (*ArticleOutput, error) {
			if st == nil {
				return nil, fmt.Errorf("state is nil")
			}
			return &ArticleOutput{
				Content:     st.Edited,
				Outline:     st.Outline,
				OutlineTier: st.OutlineTier,
			}, nil
		}),
		compose.WithNodeName("article.finalize"),
	)

	return chain.Compile(ctx)
}
