package agent

import (
	"fmt"
	"sort"
	"strings"

	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
	apperrors "z-blog-ai-api/pkg/errors"
)

// 专项写手标识
const (
	AgentEducational  = "educational"
	AgentCaseStudy    = "case_study"
	AgentHowTo        = "how_to"
	AgentIndustryNews = "industry_news"
)

// Registry 专项写手注册表，id 到写手的只读映射
type Registry struct {
	agents map[string]*TopicAgent
}

// NewAgentRegistry 构建内置写手集合
func NewAgentRegistry() *Registry {
	agents := []*TopicAgent{
		{
			id:          AgentEducational,
			name:        "Agente Educativo",
			description: "Explica conceptos complejos de manera clara y accesible, con ejemplos prácticos y datos.",
			promptID:    workflowprompt.PromptAgentEducationalV1,
		},
		{
			id:          AgentCaseStudy,
			name:        "Agente de Casos de Estudio",
			description: "Analiza en profundidad un ejemplo real con contexto, solución, métricas y lecciones aprendidas.",
			promptID:    workflowprompt.PromptAgentCaseStudyV1,
		},
		{
			id:          AgentHowTo,
			name:        "Agente de Tutoriales",
			description: "Produce guías paso a paso accionables con requisitos previos y errores comunes.",
			promptID:    workflowprompt.PromptAgentHowToV1,
		},
		{
			id:          AgentIndustryNews,
			name:        "Agente de Actualidad",
			description: "Analiza noticias y tendencias del sector con contexto, implicaciones y perspectivas.",
			promptID:    workflowprompt.PromptAgentIndustryNewsV1,
		},
	}

	m := make(map[string]*TopicAgent, len(agents))
	for _, a := range agents {
		m[a.id] = a
	}
	return &Registry{agents: m}
}

// Get 按 id 取写手；未知 id 返回 CodeUnknownAgent 并列出合法集合
func (r *Registry) Get(id string) (*TopicAgent, error) {
	a, ok := r.agents[strings.TrimSpace(id)]
	if !ok {
		return nil, apperrors.New(apperrors.CodeUnknownAgent,
			fmt.Sprintf("unknown agent %q (valid: %s)", id, strings.Join(r.IDs(), ", ")))
	}
	return a, nil
}

// IDs 返回按字典序排序的写手 id 列表
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.agents))
	for id := range r.agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Available 返回按 id 排序的写手列表，用于能力目录接口
func (r *Registry) Available() []*TopicAgent {
	out := make([]*TopicAgent, 0, len(r.agents))
	for _, id := range r.IDs() {
		out = append(out, r.agents[id])
	}
	return out
}
