// Package entity 定义领域实体
package entity

import (
	"fmt"
	"strings"
)

// Length 文章长度档位
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// ParseLength 解析长度标识，空值回落到 medium
func ParseLength(s string) (Length, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return LengthMedium, nil
	case string(LengthShort):
		return LengthShort, nil
	case string(LengthMedium):
		return LengthMedium, nil
	case string(LengthLong):
		return LengthLong, nil
	default:
		return "", fmt.Errorf("invalid length %q (valid: short, medium, long)", s)
	}
}

// WordTarget 每档长度的目标字数
func (l Length) WordTarget() int {
	switch l {
	case LengthShort:
		return 500
	case LengthLong:
		return 2000
	default:
		return 1000
	}
}

// Style 文章风格
type Style string

const (
	StyleInformative Style = "informativo"
	StylePersuasive  Style = "persuasivo"
	StyleNarrative   Style = "narrativo"
	StyleTechnical   Style = "tecnico"
)

// ParseStyles 解析风格集合，空集回落到 {informativo}
// 接受带重音的变体（técnico）。
func ParseStyles(ss []string) ([]Style, error) {
	if len(ss) == 0 {
		return []Style{StyleInformative}, nil
	}
	out := make([]Style, 0, len(ss))
	seen := make(map[Style]bool, len(ss))
	for _, s := range ss {
		var st Style
		switch strings.ToLower(strings.TrimSpace(s)) {
		case string(StyleInformative):
			st = StyleInformative
		case string(StylePersuasive):
			st = StylePersuasive
		case string(StyleNarrative):
			st = StyleNarrative
		case string(StyleTechnical), "técnico":
			st = StyleTechnical
		default:
			return nil, fmt.Errorf("invalid style %q (valid: informativo, persuasivo, narrativo, tecnico)", s)
		}
		if !seen[st] {
			seen[st] = true
			out = append(out, st)
		}
	}
	return out, nil
}

// OutlineSection 大纲中的单个章节
type OutlineSection struct {
	Heading     string   `json:"heading"`
	Subheadings []string `json:"subheadings,omitempty"`
	KeyPoints   []string `json:"key_points,omitempty"`
}

// Outline 文章大纲，由规划阶段产出
type Outline struct {
	Title        string           `json:"title"`
	Introduction string           `json:"introduction"`
	Sections     []OutlineSection `json:"sections"`
	Conclusion   string           `json:"conclusion"`
}

// OutlineTier 大纲解析层级，用于区分干净解析、截取修复和占位兜底
type OutlineTier string

const (
	OutlineTierClean       OutlineTier = "clean"
	OutlineTierSalvaged    OutlineTier = "salvaged"
	OutlineTierPlaceholder OutlineTier = "placeholder"
)

// DocumentSection 结构化文档中的单个章节
type DocumentSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// StructuredDocument 流水线末端解析得到的结构化文档。
// Content 保存完整原文，是唯一保证非空的字段。
type StructuredDocument struct {
	Title        string            `json:"title"`
	Introduction string            `json:"introduction"`
	Sections     []DocumentSection `json:"sections"`
	Conclusion   string            `json:"conclusion"`
	Content      string            `json:"content"`
}

// ResearchSourceWebSearch 开放网络搜索的来源标记
const ResearchSourceWebSearch = "web_search"

// ResearchResult 单条调研结果；调用失败时 Content 保存错误文本
type ResearchResult struct {
	Source  string `json:"source"`
	Content string `json:"content"`
}
