package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	"golang.org/x/sync/errgroup"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/pkg/logger"
	"z-blog-ai-api/pkg/metrics"
)

// urlResearchConcurrency 并发抓取 URL 摘要的上限
const urlResearchConcurrency = 4

// Researcher 调研智能体：通过联网搜索或给定 URL 收集参考信息。
// 调研是增强步骤而非硬依赖：单条失败与综合失败都记录为错误文本，
// 不中断流水线。
type Researcher struct {
	gen TextGenerator
}

func NewResearcher(gen TextGenerator) *Researcher {
	return &Researcher{gen: gen}
}

// ResearchTopic 收集调研结果。未提供 URL 时执行一次开放搜索，
// 提供 URL 时并发逐条摘要并保持入参顺序。
func (r *Researcher) ResearchTopic(ctx context.Context, topic string, urls []string, params entity.GenerationParams) []entity.ResearchResult {
	if len(urls) == 0 {
		return []entity.ResearchResult{r.searchWeb(ctx, topic, params)}
	}

	results := make([]entity.ResearchResult, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(urlResearchConcurrency)
	for i, u := range urls {
		g.Go(func() error {
			results[i] = r.summarizeURL(gctx, topic, u, params)
			return nil
		})
	}
	// worker 从不返回错误，Wait 仅用于同步
	_ = g.Wait()
	return results
}

func (r *Researcher) searchWeb(ctx context.Context, topic string, params entity.GenerationParams) entity.ResearchResult {
	query := fmt.Sprintf(
		"Busca información actualizada, datos y tendencias recientes sobre: %s. Resume los hallazgos más relevantes para un artículo de blog.",
		strings.TrimSpace(topic),
	)
	out, err := r.gen.CompleteWithWebSearch(ctx, query, params)
	if err != nil {
		logger.Warn(ctx, "web research failed, continuing without it", "topic", topic, "error", err.Error())
		metrics.ResearchCallTotal.WithLabelValues("web_search", "error").Inc()
		return entity.ResearchResult{
			Source:  entity.ResearchSourceWebSearch,
			Content: "Error al investigar el tema: " + err.Error(),
		}
	}
	metrics.ResearchCallTotal.WithLabelValues("web_search", "success").Inc()
	return entity.ResearchResult{Source: entity.ResearchSourceWebSearch, Content: strings.TrimSpace(out)}
}

func (r *Researcher) summarizeURL(ctx context.Context, topic, url string, params entity.GenerationParams) entity.ResearchResult {
	query := fmt.Sprintf(
		"Consulta el contenido de la siguiente URL y resume la información relevante para un artículo sobre %q: %s",
		strings.TrimSpace(topic), strings.TrimSpace(url),
	)
	out, err := r.gen.CompleteWithWebSearch(ctx, query, params)
	if err != nil {
		logger.Warn(ctx, "url research failed, continuing without it", "url", url, "error", err.Error())
		metrics.ResearchCallTotal.WithLabelValues("url", "error").Inc()
		return entity.ResearchResult{
			Source:  url,
			Content: "Error al consultar la fuente: " + err.Error(),
		}
	}
	metrics.ResearchCallTotal.WithLabelValues("url", "success").Inc()
	return entity.ResearchResult{Source: url, Content: strings.TrimSpace(out)}
}

// Synthesize 把零散调研结果综合为一段参考文本。
// 失败时返回错误文本，由写手在参考块中自行取舍。
func (r *Researcher) Synthesize(ctx context.Context, topic string, results []entity.ResearchResult, params entity.GenerationParams) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	for i, res := range results {
		fmt.Fprintf(&b, "Fuente %d (%s):\n%s\n\n", i+1, res.Source, strings.TrimSpace(res.Content))
	}

	msgs := []*schema.Message{
		schema.SystemMessage("Eres un asistente de investigación. Sintetiza la información proporcionada en un resumen coherente, destacando datos, cifras y hechos útiles para redactar un artículo de blog. Ignora las fuentes que contengan errores."),
		schema.UserMessage(fmt.Sprintf("Tema del artículo: %s\n\nResultados de la investigación:\n\n%s", strings.TrimSpace(topic), b.String())),
	}
	out, err := r.gen.Complete(ctx, msgs, params)
	if err != nil {
		logger.Warn(ctx, "research synthesis failed, continuing with error text", "topic", topic, "error", err.Error())
		return "Error al sintetizar la investigación: " + err.Error()
	}
	return strings.TrimSpace(out)
}
