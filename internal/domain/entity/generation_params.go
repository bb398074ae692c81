// Package entity 定义领域实体
package entity

// GenerationParams 单次生成调用的模型参数。
// 允许部分填充：未设置的字段由 LLM 客户端在调用点应用默认值。
type GenerationParams struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`

	// APIKey / BaseURL 允许按请求覆盖提供商凭据
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`

	Temperature      *float32 `json:"temperature,omitempty"`
	TopP             *float32 `json:"top_p,omitempty"`
	MaxTokens        *int     `json:"max_tokens,omitempty"`
	FrequencyPenalty *float32 `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float32 `json:"presence_penalty,omitempty"`
	Stop             []string `json:"stop,omitempty"`
	Seed             *int     `json:"seed,omitempty"`
}

// Clamped 返回边界收敛后的参数副本。
// temperature 与 top_p 收敛到 [0,1]，两种惩罚项统一收敛到 [-2,2]。
func (p GenerationParams) Clamped() GenerationParams {
	out := p
	out.Temperature = clamp(p.Temperature, 0, 1)
	out.TopP = clamp(p.TopP, 0, 1)
	out.FrequencyPenalty = clamp(p.FrequencyPenalty, -2, 2)
	out.PresencePenalty = clamp(p.PresencePenalty, -2, 2)
	if out.MaxTokens != nil && *out.MaxTokens <= 0 {
		out.MaxTokens = nil
	}
	return out
}

// MergeOver 以 p 为覆盖项合并到 base 之上，返回合并结果。
// 仅覆盖 p 中已设置的字段，未设置字段保持 base 的值。
func (p GenerationParams) MergeOver(base GenerationParams) GenerationParams {
	out := base
	if p.Provider != "" {
		out.Provider = p.Provider
	}
	if p.Model != "" {
		out.Model = p.Model
	}
	if p.APIKey != "" {
		out.APIKey = p.APIKey
	}
	if p.BaseURL != "" {
		out.BaseURL = p.BaseURL
	}
	if p.Temperature != nil {
		out.Temperature = p.Temperature
	}
	if p.TopP != nil {
		out.TopP = p.TopP
	}
	if p.MaxTokens != nil {
		out.MaxTokens = p.MaxTokens
	}
	if p.FrequencyPenalty != nil {
		out.FrequencyPenalty = p.FrequencyPenalty
	}
	if p.PresencePenalty != nil {
		out.PresencePenalty = p.PresencePenalty
	}
	if len(p.Stop) > 0 {
		out.Stop = p.Stop
	}
	if p.Seed != nil {
		out.Seed = p.Seed
	}
	return out
}

func clamp(v *float32, lo, hi float32) *float32 {
	if v == nil {
		return nil
	}
	x := *v
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	return &x
}
