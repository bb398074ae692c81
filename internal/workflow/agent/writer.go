package agent

import (
	"context"
	"fmt"
	"strings"

	"z-blog-ai-api/internal/domain/entity"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
)

// ReferenceBlockMarker 调研综合文本的标记，追加进自定义指令时使用
const ReferenceBlockMarker = "INFORMACIÓN DE REFERENCIA"

// WriteInput 写作阶段输入
type WriteInput struct {
	Topic        string
	Outline      entity.Outline
	Length       entity.Length
	Styles       []entity.Style
	CustomPrompt string
	// URLs 用户提供的参考链接，仅用于在提示词中列出来源
	URLs []string
}

// Writer 写作阶段智能体：按大纲产出 markdown 草稿
type Writer struct {
	gen TextGenerator
	reg *workflowprompt.Registry
}

func NewWriter(gen TextGenerator, reg *workflowprompt.Registry) *Writer {
	return &Writer{gen: gen, reg: reg}
}

func (w *Writer) Write(ctx context.Context, in WriteInput, params entity.GenerationParams) (string, error) {
	vars := map[string]any{
		"tema":                   strings.TrimSpace(in.Topic),
		"instrucciones_longitud": LengthInstructions(in.Length),
		"instrucciones_estilo":   StyleInstructions(in.Styles),
		"urls_text":              urlsBlock(in.URLs),
		"title":                  strings.TrimSpace(in.Outline.Title),
		"introduction_points":    strings.TrimSpace(in.Outline.Introduction),
		"sections_info":          formatSections(in.Outline.Sections),
		"conclusion_points":      strings.TrimSpace(in.Outline.Conclusion),
		"prompt_personalizado":   CustomPromptBlock(in.CustomPrompt),
	}
	return runPrompt(ctx, w.gen, w.reg, workflowprompt.PromptContentWriteV1, vars, params)
}

func urlsBlock(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Fuentes de referencia consultadas:\n")
	for _, u := range urls {
		b.WriteString("- " + strings.TrimSpace(u) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatSections 把大纲章节序列化为编号列表，供模板插值
func formatSections(sections []entity.OutlineSection) string {
	if len(sections) == 0 {
		return "(sin secciones definidas)"
	}
	var b strings.Builder
	for i, s := range sections {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.TrimSpace(s.Heading))
		for _, sub := range s.Subheadings {
			fmt.Fprintf(&b, "   - Subtema: %s\n", strings.TrimSpace(sub))
		}
		for _, kp := range s.KeyPoints {
			fmt.Fprintf(&b, "   - Punto clave: %s\n", strings.TrimSpace(kp))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
