package agent

import (
	"context"
	"encoding/json"
	"strings"

	"z-blog-ai-api/internal/domain/entity"
	wfnode "z-blog-ai-api/internal/workflow/node"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
	"z-blog-ai-api/pkg/logger"
	"z-blog-ai-api/pkg/metrics"
)

const placeholderTitleMaxRunes = 50

// PlanInput 规划阶段输入
type PlanInput struct {
	Topic        string
	Length       entity.Length
	Styles       []entity.Style
	CustomPrompt string
}

// Planner 规划阶段智能体：产出文章大纲。
// 模型输出不保证是合法 JSON，解析采取三级兜底：
// 严格解析 -> 截取修复 -> 占位大纲，任何一级成功都不算失败。
type Planner struct {
	gen TextGenerator
	reg *workflowprompt.Registry
}

func NewPlanner(gen TextGenerator, reg *workflowprompt.Registry) *Planner {
	return &Planner{gen: gen, reg: reg}
}

func (p *Planner) Plan(ctx context.Context, in PlanInput, params entity.GenerationParams) (entity.Outline, entity.OutlineTier, error) {
	vars := map[string]any{
		"tema":                   strings.TrimSpace(in.Topic),
		"instrucciones_longitud": LengthInstructions(in.Length),
		"instrucciones_estilo":   StyleInstructions(in.Styles),
		"prompt_personalizado":   CustomPromptBlock(in.CustomPrompt),
	}

	raw, err := runPrompt(ctx, p.gen, p.reg, workflowprompt.PromptOutlinePlanV1, vars, params)
	if err != nil {
		return entity.Outline{}, "", err
	}

	outline, tier := parseOutline(ctx, raw, in.Topic)
	metrics.OutlineParseTier.WithLabelValues(string(tier)).Inc()
	return outline, tier, nil
}

// parseOutline 三级解析。占位大纲的标题取原始输出的前若干字符，
// 保证后续写作阶段总有可用的结构。
func parseOutline(ctx context.Context, raw, topic string) (entity.Outline, entity.OutlineTier) {
	var outline entity.Outline
	if err := json.Unmarshal([]byte(raw), &outline); err == nil && outline.Title != "" {
		return outline, entity.OutlineTierClean
	}

	if extracted := wfnode.ExtractJSONObject(raw); extracted != "" {
		var salvaged entity.Outline
		if err := json.Unmarshal([]byte(extracted), &salvaged); err == nil {
			logger.Warn(ctx, "outline salvaged from noisy llm output",
				"topic", topic,
				"raw_len", len(raw),
			)
			return salvaged, entity.OutlineTierSalvaged
		}
	}

	logger.Warn(ctx, "outline parse failed, using placeholder structure",
		"topic", topic,
		"raw_len", len(raw),
	)
	title := strings.TrimSpace(wfnode.TruncateByRunes(strings.TrimSpace(raw), placeholderTitleMaxRunes))
	if title == "" {
		title = strings.TrimSpace(topic)
	}
	return entity.Outline{
		Title:        title,
		Introduction: "Introducción al tema y su relevancia",
		Sections: []entity.OutlineSection{
			{
				Heading:   "Desarrollo",
				KeyPoints: []string{"Desarrollar el tema principal"},
			},
		},
		Conclusion: "Conclusiones y reflexiones finales",
	}, entity.OutlineTierPlaceholder
}
