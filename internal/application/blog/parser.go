// Package blog 实现文章生成的应用编排与文档解析
package blog

import (
	"strings"

	"z-blog-ai-api/internal/domain/entity"
	wfnode "z-blog-ai-api/internal/workflow/node"
)

// 首节标题的引言同义词集合，小写精确匹配
var introHeadings = map[string]bool{
	"introducción":      true,
	"introduccion":      true,
	"introduction":      true,
	"resumen ejecutivo": true,
	"resumen":           true,
	"executive summary": true,
	"summary":           true,
}

// 末节标题的结论同义词集合
var conclusionHeadings = map[string]bool{
	"conclusión":           true,
	"conclusion":           true,
	"conclusiones":         true,
	"lecciones aprendidas": true,
	"lessons learned":      true,
}

// ParseDocument 把 markdown 全文解析为结构化文档。
// 解析是全函数：任何输入都能得到结果，Content 始终保存原文。
// 规则：
//   - 标题取第一个 "# " 行
//   - 章节按 "## " 行切分，结尾处内容为空的孤立标题被丢弃
//   - 首节标题命中引言同义词时提升为 Introduction
//   - 其余章节的末节标题命中结论同义词时提升为 Conclusion
func ParseDocument(raw string) *entity.StructuredDocument {
	doc := &entity.StructuredDocument{Content: raw}

	var (
		sections []entity.DocumentSection
		current  *entity.DocumentSection
		body     strings.Builder
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(body.String())
		sections = append(sections, *current)
		current = nil
		body.Reset()
	}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "## "):
			flush()
			current = &entity.DocumentSection{Title: strings.TrimSpace(strings.TrimPrefix(trimmed, "## "))}
		case strings.HasPrefix(trimmed, "# "):
			if doc.Title == "" {
				doc.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			}
		default:
			if current != nil {
				body.WriteString(line)
				body.WriteString("\n")
			}
		}
	}
	flush()

	// 丢弃结尾处无正文的孤立标题
	if n := len(sections); n > 0 && sections[n-1].Content == "" {
		sections = sections[:n-1]
	}

	if len(sections) > 0 && introHeadings[strings.ToLower(sections[0].Title)] {
		doc.Introduction = sections[0].Content
		sections = sections[1:]
	}
	if n := len(sections); n > 0 && conclusionHeadings[strings.ToLower(sections[n-1].Title)] {
		doc.Conclusion = sections[n-1].Content
		sections = sections[:n-1]
	}

	doc.Sections = sections
	return doc
}

// ExtractSummary 从全文提取摘要：取标题之后第一个非空段落，
// 去掉行内标记后按词边界截断。
func ExtractSummary(raw string, maxChars int) string {
	for _, block := range strings.Split(raw, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" || strings.HasPrefix(block, "#") {
			continue
		}
		return wfnode.TruncateAtWord(stripInlineMarkup(block), maxChars)
	}
	return ""
}

func stripInlineMarkup(s string) string {
	replacer := strings.NewReplacer("**", "", "__", "", "*", "", "_", "", "`", "")
	return strings.Join(strings.Fields(replacer.Replace(s)), " ")
}
