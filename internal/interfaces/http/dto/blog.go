package dto

import (
	"z-blog-ai-api/internal/application/blog"
	"z-blog-ai-api/internal/domain/entity"
	wfagent "z-blog-ai-api/internal/workflow/agent"
)

// GenerationConfig 请求级模型配置覆盖
type GenerationConfig struct {
	Provider         string   `json:"provider,omitempty"`
	Model            string   `json:"model,omitempty"`
	APIKey           string   `json:"api_key,omitempty"`
	BaseURL          string   `json:"base_url,omitempty"`
	Temperature      *float32 `json:"temperature,omitempty"`
	TopP             *float32 `json:"top_p,omitempty"`
	MaxTokens        *int     `json:"max_tokens,omitempty"`
	FrequencyPenalty *float32 `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float32 `json:"presence_penalty,omitempty"`
	Stop             []string `json:"stop,omitempty"`
	Seed             *int     `json:"seed,omitempty"`
}

// ToParams 转为领域参数对象
func (g *GenerationConfig) ToParams() *entity.GenerationParams {
	if g == nil {
		return nil
	}
	return &entity.GenerationParams{
		Provider:         g.Provider,
		Model:            g.Model,
		APIKey:           g.APIKey,
		BaseURL:          g.BaseURL,
		Temperature:      g.Temperature,
		TopP:             g.TopP,
		MaxTokens:        g.MaxTokens,
		FrequencyPenalty: g.FrequencyPenalty,
		PresencePenalty:  g.PresencePenalty,
		Stop:             g.Stop,
		Seed:             g.Seed,
	}
}

// GenerateArticleRequest 单主题生成请求
type GenerateArticleRequest struct {
	Topic        string            `json:"topic" binding:"required"`
	Length       string            `json:"length,omitempty"`
	Styles       []string          `json:"styles,omitempty"`
	URLs         []string          `json:"urls,omitempty"`
	CustomPrompt string            `json:"custom_prompt,omitempty"`
	Config       *GenerationConfig `json:"config,omitempty"`
}

// ToCommand 转为应用层命令
func (r *GenerateArticleRequest) ToCommand() blog.GenerateCommand {
	return blog.GenerateCommand{
		Topic:        r.Topic,
		Length:       r.Length,
		Styles:       r.Styles,
		URLs:         r.URLs,
		CustomPrompt: r.CustomPrompt,
		Config:       r.Config.ToParams(),
	}
}

// GenerateMultiRequest 多智能体组合生成请求
type GenerateMultiRequest struct {
	Topic    string            `json:"topic" binding:"required"`
	Comments string            `json:"comments,omitempty"`
	Agents   []string          `json:"agents" binding:"required"`
	Config   *GenerationConfig `json:"config,omitempty"`
}

// ToCommand 转为应用层命令
func (r *GenerateMultiRequest) ToCommand() blog.GenerateMultiCommand {
	return blog.GenerateMultiCommand{
		Topic:    r.Topic,
		Comments: r.Comments,
		AgentIDs: r.Agents,
		Config:   r.Config.ToParams(),
	}
}

// DocumentSectionResponse 结构化文档章节
type DocumentSectionResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// StructuredDocumentResponse 结构化文档
type StructuredDocumentResponse struct {
	Title        string                    `json:"title"`
	Introduction string                    `json:"introduction"`
	Sections     []DocumentSectionResponse `json:"sections"`
	Conclusion   string                    `json:"conclusion"`
	Content      string                    `json:"content"`
}

// GenerateArticleResponse 生成响应
type GenerateArticleResponse struct {
	Document StructuredDocumentResponse `json:"document"`
	Summary  string                     `json:"summary,omitempty"`
}

// ToGenerateArticleResponse 把生成结果转为响应体
func ToGenerateArticleResponse(result *blog.GenerateResult) GenerateArticleResponse {
	doc := result.Document
	sections := make([]DocumentSectionResponse, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		sections = append(sections, DocumentSectionResponse{Title: s.Title, Content: s.Content})
	}
	return GenerateArticleResponse{
		Document: StructuredDocumentResponse{
			Title:        doc.Title,
			Introduction: doc.Introduction,
			Sections:     sections,
			Conclusion:   doc.Conclusion,
			Content:      doc.Content,
		},
		Summary: result.Summary,
	}
}

// AgentInfo 专项写手目录条目
type AgentInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AgentsResponse 写手目录
type AgentsResponse struct {
	Agents []AgentInfo `json:"agents"`
}

// ToAgentsResponse 从注册表构建写手目录
func ToAgentsResponse(agents []*wfagent.TopicAgent) AgentsResponse {
	out := make([]AgentInfo, 0, len(agents))
	for _, a := range agents {
		out = append(out, AgentInfo{
			ID:          a.ID(),
			Name:        a.Name(),
			Description: a.Description(),
		})
	}
	return AgentsResponse{Agents: out}
}

// CatalogOption 风格与长度目录条目
type CatalogOption struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// StylesResponse 风格与长度目录
type StylesResponse struct {
	Styles  []CatalogOption `json:"styles"`
	Lengths []CatalogOption `json:"lengths"`
}
